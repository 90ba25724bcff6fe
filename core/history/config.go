package history

// Config holds configuration for the update journal.
type Config struct {
	// Enabled turns journaling on or off.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Driver is the database driver (sqlite, mysql).
	Driver string `mapstructure:"driver" default:"sqlite" validate:"oneof=sqlite mysql"`
	// Path is the sqlite database file.
	Path string `mapstructure:"path" default:"lynx-bridge.db"`
	// DSN is the mysql data source name, used when Driver is mysql.
	DSN string `mapstructure:"dsn" default:""`
	// TimeoutSeconds bounds the initial connection check.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30" validate:"gte=1"`
}
