package databricks

import (
	"fmt"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

const (
	createUsersQuery = "CREATE TABLE IF NOT EXISTS _airbyte_raw_users (_airbyte_ab_id STRING, _airbyte_emitted_at TIMESTAMP, _airbyte_data STRING)"
	dropUsersQuery   = "DROP TABLE IF EXISTS _airbyte_raw_users"
)

func (d *DatabricksTestSuite) TestTables_CreateTable() {
	tables := NewTables(d.sink)
	for range 2 {
		d.expectConnection(func(mock sqlmock.Sqlmock) {
			mock.ExpectExec(exactQuery(createUsersQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		})
	}

	// Creating twice is fine, each call uses its own handle.
	assert.NoError(d.T(), tables.CreateTable(d.T().Context(), "users"))
	assert.NoError(d.T(), tables.CreateTable(d.T().Context(), "users"))
	assert.Equal(d.T(), 2, d.opened)
}

func (d *DatabricksTestSuite) TestTables_DropTable() {
	tables := NewTables(d.sink)
	{
		// Table that does not exist
		d.expectConnection(func(mock sqlmock.Sqlmock) {
			mock.ExpectExec(exactQuery(dropUsersQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		})
		assert.NoError(d.T(), tables.DropTable(d.T().Context(), "users"))
	}
	{
		// The warehouse complains about a missing table
		d.expectConnection(func(mock sqlmock.Sqlmock) {
			mock.ExpectExec(exactQuery(dropUsersQuery)).WillReturnError(fmt.Errorf("[TABLE_OR_VIEW_NOT_FOUND] The table cannot be found"))
		})
		assert.NoError(d.T(), tables.DropTable(d.T().Context(), "users"))
	}
	{
		// Anything else is surfaced
		d.expectConnection(func(mock sqlmock.Sqlmock) {
			mock.ExpectExec(exactQuery(dropUsersQuery)).WillReturnError(fmt.Errorf("[PERMISSION_DENIED]"))
		})
		assert.ErrorContains(d.T(), tables.DropTable(d.T().Context(), "users"), `failed to drop table "_airbyte_raw_users": [PERMISSION_DENIED]`)
	}
}
