package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-ledger/internal/config/configs"
	"mesa-ledger/internal/core/domain"
)

const (
	ownerHex    = "0x00000000000000000000000000000000000000A1"
	treasuryHex = "0x00000000000000000000000000000000000000a2"
	feeHex      = "0x00000000000000000000000000000000000000a3"
	adminHex    = "0x00000000000000000000000000000000000000a4"
)

func setRequired(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("LEDGER_OWNER", ownerHex)
	t.Setenv("LEDGER_TREASURY", treasuryHex)
	t.Setenv("LEDGER_FEE_RECEIVER", feeHex)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, configs.DriverSQLite, cfg.Storage.Driver)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Ledger.ApprovalRequired)

	s, err := cfg.Ledger.Settings()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(mustAddress(t, feeHex)), s)
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("LEDGER_OWNER", ownerHex)
	t.Setenv("LEDGER_TREASURY", treasuryHex)
	_, err := LoadFiles()
	assert.Error(t, err)
}

func TestLoadDotenvAndLedgerSection(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	content := "STORAGE_DRIVER=memory\n" +
		"LEDGER_ADMINS=" + adminHex + "\n" +
		"LEDGER_GENESIS=" + adminHex + ":12.5\n" +
		"LEDGER_ADD_BALANCE_FEE=10\n" +
		"LEDGER_COST_PER_CLICK=0.1\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))
	t.Cleanup(func() {
		for _, k := range []string{"STORAGE_DRIVER", "LEDGER_ADMINS", "LEDGER_GENESIS", "LEDGER_COST_PER_CLICK"} {
			_ = os.Unsetenv(k)
		}
	})
	setRequired(t)
	// the environment wins over the file
	t.Setenv("LEDGER_ADD_BALANCE_FEE", "15")

	cfg, err := LoadFiles(file)
	require.NoError(t, err)
	assert.Equal(t, configs.DriverMemory, cfg.Storage.Driver)

	ids, err := cfg.Ledger.Identities()
	require.NoError(t, err)
	assert.Equal(t, mustAddress(t, ownerHex), ids.Owner)
	assert.Equal(t, []domain.Address{mustAddress(t, adminHex)}, ids.Admins)

	genesis, err := cfg.Ledger.GenesisBalances()
	require.NoError(t, err)
	assert.Equal(t, domain.Milli(12_500), genesis[mustAddress(t, adminHex)])

	s, err := cfg.Ledger.Settings()
	require.NoError(t, err)
	assert.Equal(t, uint64(15), s.AddBalanceFee)
	assert.Equal(t, domain.Milli(100), s.CostPerClick)
}

func TestLedgerSettingsRejectsOutOfRange(t *testing.T) {
	l := configs.Ledger{
		Treasury:          treasuryHex,
		FeeReceiver:       feeHex,
		CostPerClick:      "5",
		CostPerImpression: "0.005",
		VoteThreshold:     10,
	}
	_, err := l.Settings()
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestLedgerSettingsRejectsTreasuryAsFeeReceiver(t *testing.T) {
	l := configs.Ledger{
		Treasury:          treasuryHex,
		FeeReceiver:       "0x00000000000000000000000000000000000000A2",
		CostPerClick:      "0.05",
		CostPerImpression: "0.005",
		VoteThreshold:     10,
	}
	_, err := l.Settings()
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	l.FeeReceiver = ""
	_, err = l.Settings()
	assert.Error(t, err)
}

func mustAddress(t *testing.T, s string) domain.Address {
	t.Helper()
	a, err := domain.ParseAddress(s)
	require.NoError(t, err)
	return a
}
