package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding (console, json).
	Format string `mapstructure:"format" default:"console" validate:"oneof=console json"`
}
