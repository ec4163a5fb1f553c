package appointment

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
)

// The repository scans rows straight into domain types, so the column
// definitions in the migration have to stay in lockstep with them. lib/pq
// hands NUMERIC values to database/sql as strings, which do not convert to
// int64, and an explicit NULL bypasses a column DEFAULT.
func TestMigrationColumnsMatchScanTypes(t *testing.T) {
	schema := readMigration(t)

	total := columnLine(t, schema, "total")
	require.Contains(t, total, "BIGINT", "total is scanned into int64; NUMERIC arrives as a string")
	require.NotContains(t, total, "NUMERIC")

	notes := columnLine(t, schema, "notes")
	require.NotContains(t, notes, "NOT NULL", "notes is a *string; nil inserts NULL explicitly")
}

func TestMigrationStatusConstraintMatchesDomain(t *testing.T) {
	schema := readMigration(t)

	re := regexp.MustCompile(`status IN \(([^)]+)\)`)
	m := re.FindStringSubmatch(schema)
	require.NotNil(t, m, "status CHECK constraint missing")

	var inConstraint []string
	for _, s := range strings.Split(m[1], ",") {
		inConstraint = append(inConstraint, strings.Trim(strings.TrimSpace(s), "'"))
	}

	wantStatuses := []string{
		string(domain.StatusPending),
		string(domain.StatusConfirmed),
		string(domain.StatusCompleted),
		string(domain.StatusCancelled),
	}
	require.ElementsMatch(t, wantStatuses, inConstraint,
		"constraint must admit exactly the statuses the code can write")
}

func readMigration(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	return string(data)
}

func columnLine(t *testing.T, schema, column string) string {
	t.Helper()
	for _, line := range strings.Split(schema, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), column+" ") {
			return line
		}
	}
	t.Fatalf("column %s not found in migration", column)
	return ""
}
