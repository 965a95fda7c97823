package models

import "slices"

// Buffer holds the pending records per stream.
// The number of pending records always equals the sum of the per-stream lengths.
// A Buffer is not safe for concurrent use, it is owned by a single writer.
type Buffer struct {
	// streams keeps the order in which streams were first seen so flushes are deterministic.
	streams []string
	records map[string][]Record
	pending uint
}

func NewBuffer() *Buffer {
	return &Buffer{
		records: make(map[string][]Record),
	}
}

// Append adds the record to the stream and returns the new pending count.
func (b *Buffer) Append(stream string, record Record) uint {
	if _, ok := b.records[stream]; !ok {
		b.streams = append(b.streams, stream)
	}

	b.records[stream] = append(b.records[stream], record)
	b.pending++
	return b.pending
}

// Streams returns the streams that have pending records, in the order they were first appended.
func (b *Buffer) Streams() []string {
	return slices.Clone(b.streams)
}

// Records returns the pending records for [stream] in the order they were appended.
func (b *Buffer) Records(stream string) []Record {
	return b.records[stream]
}

// Clear removes every pending record for [stream].
func (b *Buffer) Clear(stream string) {
	records, ok := b.records[stream]
	if !ok {
		return
	}

	b.pending -= uint(len(records))
	delete(b.records, stream)
	b.streams = slices.DeleteFunc(b.streams, func(s string) bool { return s == stream })
}

func (b *Buffer) Pending() uint {
	return b.pending
}

func (b *Buffer) Empty() bool {
	return b.pending == 0
}
