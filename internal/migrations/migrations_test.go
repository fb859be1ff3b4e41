package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_FindsOrderedMigrations(t *testing.T) {
	migrations, err := Source().FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 4)

	ids := make([]string, 0, len(migrations))
	for _, m := range migrations {
		ids = append(ids, m.Id)
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}
	assert.Equal(t, []string{"0001_users.sql", "0002_bookings.sql", "0003_wallets.sql", "0004_claims.sql"}, ids)
}
