package constants

import "slices"

const (
	// RawTablePrefix is prepended to a stream name to build its destination table.
	RawTablePrefix = "_airbyte_raw_"

	IDColumn        = "_airbyte_ab_id"
	EmittedAtColumn = "_airbyte_emitted_at"
	DataColumn      = "_airbyte_data"

	// StagedFileName is the name of the object uploaded for every staged batch.
	StagedFileName = "data.jsonl"

	// BatchIDLayout is the timestamp portion of a batch identifier.
	BatchIDLayout = "20060102150405"

	// TimestampLayout is the canonical textual form of a timezone-aware timestamp without sub-second precision, e.g. 2024-01-02 03:04:05+00:00
	TimestampLayout = "2006-01-02 15:04:05-07:00"
	// TimestampMicrosLayout always carries six fractional digits, e.g. 2024-01-02 03:04:05.123000+00:00
	TimestampMicrosLayout = "2006-01-02 15:04:05.000000-07:00"
)

const (
	// InsertFlushRows is the number of pending records that triggers a flush for the direct-insert strategy.
	InsertFlushRows uint = 1000
	// StagedFlushRows is the number of pending records that triggers a flush for the staged strategy.
	StagedFlushRows uint = 1000
)

const (
	ServerHostnameEnvVar = "DATABRICKS_SERVER_HOSTNAME"
	HTTPPathEnvVar       = "DATABRICKS_HTTP_PATH"
	AccessTokenEnvVar    = "DATABRICKS_TOKEN"
)

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

type WriteStrategy string

const (
	Insert WriteStrategy = "insert"
	Staged WriteStrategy = "staged"
)

var validWriteStrategies = []WriteStrategy{
	Insert,
	Staged,
}

func IsValidWriteStrategy(strategy WriteStrategy) bool {
	return slices.Contains(validWriteStrategies, strategy)
}

// DefaultFlushRows returns the flush threshold used when none is configured.
func (w WriteStrategy) DefaultFlushRows() uint {
	if w == Staged {
		return StagedFlushRows
	}

	return InsertFlushRows
}

type SyncMode string

const (
	Append      SyncMode = "append"
	AppendDedup SyncMode = "append_dedup"
	Overwrite   SyncMode = "overwrite"
)
