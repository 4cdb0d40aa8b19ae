package main

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the file locations a session uses. Values come from the
// environment (a .env file is honored) and can be overridden per run
// with flags.
type Config struct {
	TransactionLog string
	LedgerDB       string
	SeedFile       string
}

func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		TransactionLog: withDefault("HW3_TRANSACTION_LOG", "transaction_log.txt"),
		LedgerDB:       withDefault("HW3_LEDGER_DB", "lending_history.db"),
		SeedFile:       os.Getenv("HW3_SEED_FILE"),
	}
}

func withDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
