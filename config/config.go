// Package config loads the settings of the timelock command line tool from
// .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvProgramID  = "TIMELOCK_PROGRAM_ID"
	EnvDBPath     = "TIMELOCK_DB_PATH"
	EnvRPCURL     = "SOLANA_RPC_URL"
	EnvLogLevel   = "TIMELOCK_LOG_LEVEL"
	EnvPrivateKey = "TIMELOCK_PRIVATE_KEY"

	DefaultProgramID = "7wTNNa26MRFt18kKPz6t3oD3RuKcfN3PjUjLG9tHbWH2"
	DefaultDBPath    = "timelock.db"
	DefaultLogLevel  = "info"
)

// ErrNoPrivateKey is returned by Signer when no private key is configured.
var ErrNoPrivateKey = errors.New(EnvPrivateKey + " is not set")

type Config struct {
	ProgramID string `validate:"required"`
	DBPath    string `validate:"required"`
	// RPCURL, when set, makes the slot clock follow a Solana cluster instead
	// of the counter persisted in the database.
	RPCURL     string `validate:"omitempty,url"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	PrivateKey string
}

// Load reads the given .env files (".env" when none is given) and applies
// environment variables on top. Missing files are skipped.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	values := make(map[string]string)
	for _, file := range files {
		fileValues, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", file, err)
		}
		maps.Copy(values, fileValues)
	}

	lookup := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		if v, ok := values[key]; ok {
			return v
		}

		return fallback
	}

	cfg := &Config{
		ProgramID:  lookup(EnvProgramID, DefaultProgramID),
		DBPath:     lookup(EnvDBPath, DefaultDBPath),
		RPCURL:     lookup(EnvRPCURL, ""),
		LogLevel:   lookup(EnvLogLevel, DefaultLogLevel),
		PrivateKey: lookup(EnvPrivateKey, ""),
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Program() (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(c.ProgramID)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("unable to parse %s: %w", EnvProgramID, err)
	}

	return key, nil
}

// Signer returns the configured private key.
func (c *Config) Signer() (solana.PrivateKey, error) {
	if c.PrivateKey == "" {
		return nil, ErrNoPrivateKey
	}

	key, err := solana.PrivateKeyFromBase58(c.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", EnvPrivateKey, err)
	}

	return key, nil
}

// Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
