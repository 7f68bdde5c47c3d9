package db

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-ledger/db/migrations"
)

func TestCheckVersion(t *testing.T) {
	assert.NoError(t, checkVersion(0, false))
	assert.NoError(t, checkVersion(migrations.Version, false))
	assert.ErrorContains(t, checkVersion(1, true), "dirty")
	assert.ErrorContains(t, checkVersion(migrations.Version+1, false), "newer")
}

func TestMigrationResultApplied(t *testing.T) {
	assert.True(t, MigrationResult{From: 0, To: migrations.Version}.Applied())
	assert.False(t, MigrationResult{From: migrations.Version, To: migrations.Version}.Applied())
}

func TestMigrationFilesPaired(t *testing.T) {
	entries, err := migrations.FS.ReadDir(".")
	require.NoError(t, err)
	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		}
	}
	assert.Equal(t, int(migrations.Version), ups)
	assert.Equal(t, ups, downs)
}
