package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	wallet := solana.NewWallet()

	tests := []struct {
		name    string
		content string
		want    *Config
		wantErr string
	}{
		{
			name:    "defaults",
			content: "",
			want: &Config{
				ProgramID: DefaultProgramID,
				DBPath:    DefaultDBPath,
				LogLevel:  DefaultLogLevel,
			},
		},
		{
			name: "from file",
			content: "TIMELOCK_DB_PATH=/tmp/t.db\n" +
				"SOLANA_RPC_URL=http://127.0.0.1:8899\n" +
				"TIMELOCK_LOG_LEVEL=debug\n" +
				"TIMELOCK_PRIVATE_KEY=" + wallet.PrivateKey.String() + "\n",
			want: &Config{
				ProgramID:  DefaultProgramID,
				DBPath:     "/tmp/t.db",
				RPCURL:     "http://127.0.0.1:8899",
				LogLevel:   "debug",
				PrivateKey: wallet.PrivateKey.String(),
			},
		},
		{
			name:    "invalid log level",
			content: "TIMELOCK_LOG_LEVEL=loud\n",
			wantErr: "invalid configuration",
		},
		{
			name:    "invalid rpc url",
			content: "SOLANA_RPC_URL=not a url\n",
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(writeEnv(t, tt.content))

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
}

func TestConfig_Accessors(t *testing.T) {
	t.Parallel()

	wallet := solana.NewWallet()
	cfg := &Config{ProgramID: DefaultProgramID, LogLevel: "warn", PrivateKey: wallet.PrivateKey.String()}

	program, err := cfg.Program()
	require.NoError(t, err)
	assert.Equal(t, solana.MustPublicKeyFromBase58(DefaultProgramID), program)

	signer, err := cfg.Signer()
	require.NoError(t, err)
	assert.Equal(t, wallet.PublicKey(), signer.PublicKey())

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = (&Config{}).Signer()
	require.ErrorIs(t, err, ErrNoPrivateKey)

	_, err = (&Config{ProgramID: "bad"}).Program()
	require.Error(t, err)
}
