package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Drill    DrillConfig    `mapstructure:"drill" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// Driver selects the storage backend: the embedded SQLite database for
// single-device use, or PostgreSQL for shared deployments.
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite postgres"`
	// URL is the connection string: a file path for sqlite, a
	// postgres:// URL for postgres.
	URL string `mapstructure:"url" validate:"required"`
}

// DrillConfig contains drill session settings.
type DrillConfig struct {
	// SessionSize is the default number of questions per practice
	// session when a request does not specify one.
	SessionSize int `mapstructure:"session_size" validate:"required,gt=0,lte=100"`
}
