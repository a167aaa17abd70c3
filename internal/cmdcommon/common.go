// Package cmdcommon provides shared functionality for the command-line
// tools: process exit codes and environment-based defaults.
package cmdcommon

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Environment variables supplying master-data defaults.
const (
	EnvCompany   = "GBU_COMPANY"
	EnvLocation  = "GBU_LOCATION"
	EnvCreatedBy = "GBU_CREATED_BY"
)

// LoadEnvFile loads variables from the given env file, or from ./.env when
// path is empty and the file exists. A missing default file is not an
// error.
func LoadEnvFile(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

// EnvDefault returns the environment variable's value, or fallback when
// unset or empty.
func EnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Today returns the current date in ISO form, the format used for the
// created_at and review fields.
func Today() string {
	return time.Now().Format(time.DateOnly)
}
