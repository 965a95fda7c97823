package databricks

import (
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/models"
)

func insertQuery(stream string, tuples ...string) string {
	query := fmt.Sprintf("INSERT INTO _airbyte_raw_%s (_airbyte_ab_id,_airbyte_emitted_at,_airbyte_data) VALUES ", stream)
	for i, tuple := range tuples {
		if i > 0 {
			query += ","
		}
		query += tuple
	}

	return query
}

func insertTuple(id string) string {
	return fmt.Sprintf(`('%s', '2024-01-02 03:04:05+00:00', '{"id": "%s"}')`, id, id)
}

func (d *DatabricksTestSuite) TestInsertFlusher_Empty() {
	flusher := NewInsertFlusher(d.sink)
	assert.Equal(d.T(), constants.Insert, flusher.Strategy())
	assert.NoError(d.T(), flusher.Flush(d.T().Context(), models.NewBuffer()))
	assert.Zero(d.T(), d.opened)
}

func (d *DatabricksTestSuite) TestInsertFlusher_Flush() {
	buffer := appendRecords(models.NewBuffer(), "users", "1", "2", "3")
	d.expectConnection(func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(exactQuery(insertQuery("users", insertTuple("1"), insertTuple("2"), insertTuple("3")))).
			WillReturnResult(sqlmock.NewResult(0, 3))
	})

	assert.NoError(d.T(), NewInsertFlusher(d.sink).Flush(d.T().Context(), buffer))
	assert.True(d.T(), buffer.Empty())
	assert.Empty(d.T(), buffer.Streams())
	assert.Equal(d.T(), 1, d.opened)
}

func (d *DatabricksTestSuite) TestInsertFlusher_MultipleStreams() {
	buffer := appendRecords(models.NewBuffer(), "a", "1", "2")
	appendRecords(buffer, "b", "3")

	d.expectConnection(func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(exactQuery(insertQuery("a", insertTuple("1"), insertTuple("2")))).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(exactQuery(insertQuery("b", insertTuple("3")))).WillReturnResult(sqlmock.NewResult(0, 1))
	})

	assert.NoError(d.T(), NewInsertFlusher(d.sink).Flush(d.T().Context(), buffer))
	assert.True(d.T(), buffer.Empty())
}

func (d *DatabricksTestSuite) TestInsertFlusher_Failure() {
	buffer := appendRecords(models.NewBuffer(), "a", "1")
	appendRecords(buffer, "b", "2", "3")

	d.expectConnection(func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(exactQuery(insertQuery("a", insertTuple("1")))).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(exactQuery(insertQuery("b", insertTuple("2"), insertTuple("3")))).WillReturnError(fmt.Errorf("[DELTA_CONCURRENT_APPEND]"))
	})

	err := NewInsertFlusher(d.sink).Flush(d.T().Context(), buffer)
	assert.ErrorContains(d.T(), err, `failed to insert into "_airbyte_raw_b": [DELTA_CONCURRENT_APPEND]`)

	// a was persisted, b is kept for the next attempt.
	assert.Equal(d.T(), []string{"b"}, buffer.Streams())
	assert.Equal(d.T(), uint(2), buffer.Pending())
}

func (d *DatabricksTestSuite) TestInsertFlusher_Quoting() {
	buffer := models.NewBuffer()
	buffer.Append("users", models.NewRecord("O'Brien", emittedAt, `{"name": "O'Brien"}`))

	d.expectConnection(func(mock sqlmock.Sqlmock) {
		mock.ExpectExec(exactQuery(insertQuery("users", `('O''Brien', '2024-01-02 03:04:05+00:00', '{"name": "O''Brien"}')`))).
			WillReturnResult(sqlmock.NewResult(0, 1))
	})

	assert.NoError(d.T(), NewInsertFlusher(d.sink).Flush(d.T().Context(), buffer))
}
