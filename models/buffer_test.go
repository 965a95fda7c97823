package models

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/assert"
)

func (m *ModelsTestSuite) sumOfRecords() uint {
	var total uint
	for _, stream := range m.buffer.Streams() {
		total += uint(len(m.buffer.Records(stream)))
	}
	return total
}

func (m *ModelsTestSuite) TestBuffer_Empty() {
	assert.True(m.T(), m.buffer.Empty())
	assert.Equal(m.T(), uint(0), m.buffer.Pending())
	assert.Empty(m.T(), m.buffer.Streams())
	assert.Empty(m.T(), m.buffer.Records("users"))

	// Clearing a stream that was never seen is a no-op.
	m.buffer.Clear("users")
	assert.True(m.T(), m.buffer.Empty())
}

func (m *ModelsTestSuite) TestBuffer_Append() {
	ts := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	for i := range 3 {
		pending := m.buffer.Append("users", NewRecord(fmt.Sprintf("u-%d", i), ts, fmt.Sprintf(`{"i": %d}`, i)))
		assert.Equal(m.T(), uint(i+1), pending)
	}

	assert.Equal(m.T(), uint(4), m.buffer.Append("orders", NewRecord("o-0", ts, `{}`)))
	assert.Equal(m.T(), uint(5), m.buffer.Append("users", NewRecord("u-3", ts, `{"i": 3}`)))

	assert.False(m.T(), m.buffer.Empty())
	assert.Equal(m.T(), []string{"users", "orders"}, m.buffer.Streams())
	assert.Equal(m.T(), m.buffer.Pending(), m.sumOfRecords())

	records := m.buffer.Records("users")
	assert.Len(m.T(), records, 4)
	for i, record := range records {
		assert.Equal(m.T(), fmt.Sprintf("u-%d", i), record.ID())
		assert.Equal(m.T(), ts, record.EmittedAt())
		assert.Equal(m.T(), fmt.Sprintf(`{"i": %d}`, i), record.Payload())
	}
}

func (m *ModelsTestSuite) TestBuffer_Clear() {
	ts := time.Now()
	m.buffer.Append("a", NewRecord("1", ts, "a1"))
	m.buffer.Append("b", NewRecord("2", ts, "b1"))
	m.buffer.Append("a", NewRecord("3", ts, "a2"))
	m.buffer.Append("c", NewRecord("4", ts, "c1"))

	m.buffer.Clear("a")
	assert.Equal(m.T(), uint(2), m.buffer.Pending())
	assert.Equal(m.T(), []string{"b", "c"}, m.buffer.Streams())
	assert.Empty(m.T(), m.buffer.Records("a"))
	assert.Equal(m.T(), m.buffer.Pending(), m.sumOfRecords())

	// Re-appending to a cleared stream puts it at the back.
	m.buffer.Append("a", NewRecord("5", ts, "a3"))
	assert.Equal(m.T(), []string{"b", "c", "a"}, m.buffer.Streams())

	for _, stream := range m.buffer.Streams() {
		m.buffer.Clear(stream)
	}
	assert.True(m.T(), m.buffer.Empty())
	assert.Empty(m.T(), m.buffer.Streams())
}

func (m *ModelsTestSuite) TestBuffer_StreamsIsACopy() {
	m.buffer.Append("a", NewRecord("1", time.Now(), "a1"))
	streams := m.buffer.Streams()
	streams[0] = "mutated"
	assert.Equal(m.T(), []string{"a"}, m.buffer.Streams())
}
