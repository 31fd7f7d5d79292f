package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS          = "" // e.g. "example.com,example2.com"
	MYSQL_DSN            = "" // MySQL will be used if this is set
	SQLITE_FILE          = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS         = "0.0.0.0:8080"
	JWT_SECRET           = "" // Required - the server refuses to start without it
	GOOGLE_CLIENT_ID     = "" // Required for Google sign-in only
	ACCESS_TOKEN_MINUTES = 5
	REFRESH_TOKEN_HOURS  = 24
	DEBUG_MODE           = true
)

func init() {
	Load()
}

// Load (re-)reads all configuration from the environment.
// Called again by tests after they change the environment.
func Load() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("JWT_SECRET", &JWT_SECRET)
	readEnvString("GOOGLE_CLIENT_ID", &GOOGLE_CLIENT_ID)
	readEnvInt("ACCESS_TOKEN_MINUTES", &ACCESS_TOKEN_MINUTES)
	readEnvInt("REFRESH_TOKEN_HOURS", &REFRESH_TOKEN_HOURS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
