package config

const defaultServerPort = 8080

// defaults is loaded first and also seeds the env-var key lookup.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.mode":             "debug",
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.shutdown_timeout": "15s",

		"database.driver":    DriverSQLite,
		"database.path":      "Vaults/todovault.db",
		"database.dsn":       "",
		"database.log_level": "warn",

		"log.level":  "info",
		"log.format": "json",

		"cors.allowed_origins": "http://localhost:5173",
	}
}
