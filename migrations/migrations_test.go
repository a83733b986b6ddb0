package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableDDL(t *testing.T, table string) string {
	t.Helper()

	raw, err := FS.ReadFile("00001_init.sql")
	require.NoError(t, err)

	marker := "CREATE TABLE " + table + " ("
	start := strings.Index(string(raw), marker)
	require.NotEqual(t, -1, start, "table %s not found in migration", table)

	body := string(raw)[start+len(marker):]
	end := strings.Index(body, ");")
	require.NotEqual(t, -1, end, "unterminated DDL for table %s", table)
	return body[:end]
}

func requireColumns(t *testing.T, table string, columns []string) {
	t.Helper()

	ddl := tableDDL(t, table)
	for _, column := range columns {
		require.Contains(t, ddl, column, "table %s is missing column %s", table, column)
	}
}

// The repositories hard-code their column lists, so the schema the app
// migrates itself to must carry every column they read and write.
func TestMaintenanceRequestsColumnsMatchRepository(t *testing.T) {
	requireColumns(t, "maintenance_requests", []string{
		"id", "subject", "description", "equipment_id", "team_id",
		"assigned_to", "created_by", "type", "priority", "stage",
		"scheduled_date", "duration_hours", "created_at", "updated_at",
	})
}

func TestEquipmentColumnsMatchRepository(t *testing.T) {
	requireColumns(t, "equipment", []string{
		"id", "name", "serial_number", "category_id", "department",
		"location", "maintenance_team_id", "purchase_date",
		"warranty_expiry", "status", "created_at", "updated_at",
	})
}

func TestHistoryColumnsMatchRepository(t *testing.T) {
	requireColumns(t, "maintenance_request_history", []string{
		"id", "request_id", "old_stage", "new_stage", "changed_by", "changed_at",
	})
}
