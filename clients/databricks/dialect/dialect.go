package dialect

import (
	"fmt"
	"strings"

	"github.com/artie-labs/brickbyte/lib/config/constants"
)

type DatabricksDialect struct{}

// RawTableName returns the destination table for a stream.
func (DatabricksDialect) RawTableName(stream string) string {
	return constants.RawTablePrefix + stream
}

func (DatabricksDialect) IsTableDoesNotExistErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "[TABLE_OR_VIEW_NOT_FOUND]")
}

func (d DatabricksDialect) BuildCreateRawTableQuery(stream string) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s STRING, %s TIMESTAMP, %s STRING)",
		d.RawTableName(stream), constants.IDColumn, constants.EmittedAtColumn, constants.DataColumn)
}

func (d DatabricksDialect) BuildDropRawTableQuery(stream string) string {
	return "DROP TABLE IF EXISTS " + d.RawTableName(stream)
}

// BuildInsertQuery expects every tuple to already be encoded with [QuoteValue].
func (d DatabricksDialect) BuildInsertQuery(stream string, tuples [][]string) string {
	values := make([]string, len(tuples))
	for i, tuple := range tuples {
		values[i] = fmt.Sprintf("(%s)", strings.Join(tuple, ", "))
	}

	return fmt.Sprintf("INSERT INTO %s (%s,%s,%s) VALUES %s",
		d.RawTableName(stream), constants.IDColumn, constants.EmittedAtColumn, constants.DataColumn, strings.Join(values, ","))
}

func (DatabricksDialect) BuildPutQuery(localPath, stagingPath string) string {
	return fmt.Sprintf("PUT %s INTO %s OVERWRITE", QuoteLiteral(localPath), QuoteLiteral(stagingPath))
}

func (d DatabricksDialect) BuildCopyIntoQuery(stream, stagingPath string) string {
	return fmt.Sprintf("COPY INTO %s FROM %s FILEFORMAT = JSON", d.RawTableName(stream), QuoteLiteral(stagingPath))
}

func (DatabricksDialect) BuildRemoveQuery(stagingPath string) string {
	return "REMOVE " + QuoteLiteral(stagingPath)
}
