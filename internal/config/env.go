package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	LedgerDriverCSV   = "csv"
	LedgerDriverMySQL = "mysql"
)

type Env struct {
	AppAddr      string
	GinMode      string
	LedgerDriver string
	LedgerFile   string
	DBDSN        string
}

// LoadEnv reads configuration from the environment, with a .env file as
// fallback for local runs.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:      getenv("APP_ADDR", ":8080"),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		LedgerDriver: strings.ToLower(getenv("LEDGER_DRIVER", LedgerDriverCSV)),
		LedgerFile:   getenv("LEDGER_FILE", "bookings.csv"),
		DBDSN:        getenv("DB_DSN", "root:@tcp(127.0.0.1:3306)/voyago?parseTime=true&charset=utf8mb4&timeout=5s"),
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
