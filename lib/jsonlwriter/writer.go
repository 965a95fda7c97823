package jsonlwriter

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Writer writes one JSON document per line to a file.
type Writer struct {
	file   *os.File
	buffer *bufio.Writer
	size   datasize.ByteSize
}

// NewWriter creates a new file in [dir] named after [pattern], see [os.CreateTemp].
func NewWriter(dir, pattern string) (*Writer, error) {
	file, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}

	return &Writer{
		file:   file,
		buffer: bufio.NewWriter(file),
	}, nil
}

func (w *Writer) FilePath() string {
	return w.file.Name()
}

// Size is the number of bytes written so far, including newlines.
func (w *Writer) Size() datasize.ByteSize {
	return w.size
}

func (w *Writer) Write(row any) error {
	bytes, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	n, err := w.buffer.Write(append(bytes, '\n'))
	if err != nil {
		return err
	}

	w.size += datasize.ByteSize(n)
	return nil
}

// Close flushes any buffered lines and closes the file. It does not delete it.
func (w *Writer) Close() error {
	if err := w.buffer.Flush(); err != nil {
		// If flushing fails, we should at least try to close the file
		return errors.Join(err, w.file.Close())
	}

	return w.file.Close()
}
