package sqlite

// Config holds SQLite settings
type Config struct {
	// Path is the database file. ":memory:" keeps everything in process.
	Path string

	// BusyTimeoutMS is passed to the driver as _busy_timeout
	BusyTimeoutMS int
}

// DefaultConfig returns sensible defaults for SQLite configuration
func DefaultConfig() Config {
	return Config{
		Path:          "blockhive.db",
		BusyTimeoutMS: 5000,
	}
}
