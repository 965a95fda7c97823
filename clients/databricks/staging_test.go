package databricks

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/c2h5oh/datasize"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/models"
)

const stagedPathPattern = `/Volumes/main/default/staging/_airbyte_raw_%s/\d{14}_[a-z0-9]{5}/data\.jsonl`

func (d *DatabricksTestSuite) stagedFlusher() StagedFlusher {
	flusher, err := NewStagedFlusher(d.sink, d.sink.StagingVolumePath(), d.sink.LocalStagingDir())
	d.Require().NoError(err)
	return flusher
}

func (d *DatabricksTestSuite) expectStagedLoad(mock sqlmock.Sqlmock, stream string) {
	stagedPath := fmt.Sprintf(stagedPathPattern, stream)
	localPath := regexp.QuoteMeta(d.cfg.LocalStagingDir) + fmt.Sprintf(`/_airbyte_raw_%s_\d+\.jsonl`, stream)

	mock.ExpectExec(fmt.Sprintf(`^PUT '%s' INTO '%s' OVERWRITE$`, localPath, stagedPath)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(fmt.Sprintf(`^COPY INTO _airbyte_raw_%s FROM '%s' FILEFORMAT = JSON$`, stream, stagedPath)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(fmt.Sprintf(`^REMOVE '%s'$`, stagedPath)).WillReturnResult(sqlmock.NewResult(0, 0))
}

func (d *DatabricksTestSuite) TestNewStagedFlusher() {
	{
		_, err := NewStagedFlusher(d.sink, "", d.cfg.LocalStagingDir)
		assert.ErrorContains(d.T(), err, `stagingVolumePath is required for the "staged" write strategy`)
	}
	{
		_, err := NewStagedFlusher(d.sink, d.cfg.StagingVolumePath, "")
		assert.ErrorContains(d.T(), err, `localStagingDir is required for the "staged" write strategy`)
	}
	{
		flusher, err := NewStagedFlusher(d.sink, d.cfg.StagingVolumePath, d.cfg.LocalStagingDir)
		assert.NoError(d.T(), err)
		assert.Equal(d.T(), constants.Staged, flusher.Strategy())
	}
}

func (d *DatabricksTestSuite) TestStagedFlusher_Empty() {
	assert.NoError(d.T(), d.stagedFlusher().Flush(d.T().Context(), models.NewBuffer()))
	assert.Zero(d.T(), d.opened)
}

func (d *DatabricksTestSuite) TestStagedFlusher_Flush() {
	buffer := appendRecords(models.NewBuffer(), "orders", "1", "2")
	d.expectConnection(func(mock sqlmock.Sqlmock) {
		d.expectStagedLoad(mock, "orders")
	})

	assert.NoError(d.T(), d.stagedFlusher().Flush(d.T().Context(), buffer))
	assert.True(d.T(), buffer.Empty())
	assert.Empty(d.T(), d.localFiles())
	assert.Equal(d.T(), 1, d.opened)
}

func (d *DatabricksTestSuite) TestStagedFlusher_BatchPath() {
	flusher := d.stagedFlusher()
	flusher.clock = clockwork.NewFakeClockAt(time.Date(2024, time.March, 4, 5, 6, 7, 0, time.UTC))

	buffer := appendRecords(models.NewBuffer(), "orders", "1")
	d.expectConnection(func(mock sqlmock.Sqlmock) {
		stagedPath := `/Volumes/main/default/staging/_airbyte_raw_orders/20240304050607_[a-z0-9]{5}/data\.jsonl`
		mock.ExpectExec(`^PUT '.+' INTO '` + stagedPath + `' OVERWRITE$`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`^COPY INTO _airbyte_raw_orders FROM '` + stagedPath + `' FILEFORMAT = JSON$`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`^REMOVE '` + stagedPath + `'$`).WillReturnResult(sqlmock.NewResult(0, 0))
	})

	assert.NoError(d.T(), flusher.Flush(d.T().Context(), buffer))
	assert.True(d.T(), buffer.Empty())
}

func (d *DatabricksTestSuite) TestStagedFlusher_MultipleStreams() {
	buffer := appendRecords(models.NewBuffer(), "a", "1")
	appendRecords(buffer, "b", "2", "3")

	// Both streams share a handle but each has its own file and staged path.
	d.expectConnection(func(mock sqlmock.Sqlmock) {
		d.expectStagedLoad(mock, "a")
		d.expectStagedLoad(mock, "b")
	})

	assert.NoError(d.T(), d.stagedFlusher().Flush(d.T().Context(), buffer))
	assert.True(d.T(), buffer.Empty())
	assert.Empty(d.T(), d.localFiles())
}

func (d *DatabricksTestSuite) TestStagedFlusher_Failure() {
	{
		// COPY INTO fails
		buffer := appendRecords(models.NewBuffer(), "a", "1")
		appendRecords(buffer, "orders", "2", "3")

		d.expectConnection(func(mock sqlmock.Sqlmock) {
			d.expectStagedLoad(mock, "a")
			stagedPath := fmt.Sprintf(stagedPathPattern, "orders")
			mock.ExpectExec(`^PUT '.+' INTO '` + stagedPath + `' OVERWRITE$`).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec(`^COPY INTO _airbyte_raw_orders FROM`).WillReturnError(fmt.Errorf("[COPY_INTO_SOURCE_SCHEMA_INFERENCE_FAILED]"))
		})

		err := d.stagedFlusher().Flush(d.T().Context(), buffer)
		assert.ErrorContains(d.T(), err, "[COPY_INTO_SOURCE_SCHEMA_INFERENCE_FAILED]")
		assert.ErrorContains(d.T(), err, `into "_airbyte_raw_orders"`)
		assert.Equal(d.T(), []string{"orders"}, buffer.Streams())
		assert.Equal(d.T(), uint(2), buffer.Pending())
		assert.Empty(d.T(), d.localFiles())
	}
	{
		// PUT fails
		buffer := appendRecords(models.NewBuffer(), "orders", "1")
		d.expectConnection(func(mock sqlmock.Sqlmock) {
			mock.ExpectExec(`^PUT `).WillReturnError(fmt.Errorf("local file not in the allowed staging paths"))
		})

		err := d.stagedFlusher().Flush(d.T().Context(), buffer)
		assert.ErrorContains(d.T(), err, "local file not in the allowed staging paths")
		assert.Equal(d.T(), uint(1), buffer.Pending())
		assert.Empty(d.T(), d.localFiles())
	}
}

func (d *DatabricksTestSuite) TestStagedFlusher_WriteStagingFile() {
	flusher := d.stagedFlusher()
	records := []models.Record{
		models.NewRecord("1", emittedAt, `{"id": "1"}`),
		models.NewRecord("2", emittedAt, `{"quote": "O'Brien"}`),
	}

	filePath, size, err := flusher.writeStagingFile("orders", records)
	d.Require().NoError(err)
	assert.True(d.T(), strings.HasPrefix(filePath, d.cfg.LocalStagingDir))

	bytes, err := os.ReadFile(filePath)
	d.Require().NoError(err)
	assert.Equal(d.T(), datasize.ByteSize(len(bytes)), size)
	assert.Equal(d.T(), strings.Join([]string{
		`{"_airbyte_ab_id":"1","_airbyte_emitted_at":"2024-01-02 03:04:05+00:00","_airbyte_data":"{\"id\": \"1\"}"}`,
		`{"_airbyte_ab_id":"2","_airbyte_emitted_at":"2024-01-02 03:04:05+00:00","_airbyte_data":"{\"quote\": \"O'Brien\"}"}`,
		"",
	}, "\n"), string(bytes))

	// A second stream gets its own file.
	otherPath, _, err := flusher.writeStagingFile("users", records[:1])
	d.Require().NoError(err)
	assert.NotEqual(d.T(), filePath, otherPath)
	assert.Len(d.T(), d.localFiles(), 2)

	{
		// Missing directory
		flusher.localDir = d.cfg.LocalStagingDir + "/missing"
		_, _, err = flusher.writeStagingFile("orders", records)
		assert.Error(d.T(), err)
	}
}
