package db

import "time"

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type SQLiteConfig struct {
	WAL           bool
	BusyTimeoutMs int
	ForeignKeys   bool
}

type Config struct {
	Driver      string
	DSN         string
	AutoMigrate bool
	Pool        PoolConfig
	SQLite      SQLiteConfig
}

func DefaultConfig() Config {
	return Config{
		Driver:      "sqlite",
		DSN:         "",
		AutoMigrate: true,
		Pool: PoolConfig{
			MaxOpenConns: 1,
			MaxIdleConns: 1,
		},
		SQLite: SQLiteConfig{
			WAL:           true,
			BusyTimeoutMs: 5000,
			ForeignKeys:   true,
		},
	}
}
