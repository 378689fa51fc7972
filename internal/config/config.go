package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "MAGAZINE"

type Configuration struct {
	// Listen is the address on which the HTTP server accepts connections.
	Listen string
	// DbUrl is the sqlite connection string. Foreign keys, a busy timeout and immediate transactions should be
	// enabled through its query parameters.
	DbUrl string
	// MigrationsFolder is the directory holding the golang-migrate sql files.
	MigrationsFolder string
	// Setup, if true, applies pending migrations at startup.
	Setup bool
	// FsRoot is the root of the directory on which files, such as the authors' profile photos, are stored.
	FsRoot string
	// SessionLifetime is the absolute lifetime of a login session.
	SessionLifetime time.Duration
	// SessionCleanup is the interval between two sweeps of expired sessions.
	SessionCleanup time.Duration
	// SecureCookies marks the session cookie as HTTPS only.
	SecureCookies bool
	// MaxUploadBytes bounds the size of uploaded profile photos.
	MaxUploadBytes int64
	// Debug, if true, will make the application log all HTTP requests.
	Debug    bool
	LogLevel string
}

// ReadConfig loads the configuration from an optional config.yaml in the working directory and from MAGAZINE_*
// environment variables, which take precedence. A .env file, if present, is loaded into the environment first.
func ReadConfig() (Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", ":3001")
	v.SetDefault("db_url", "file:magazine.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate&_journal_mode=WAL")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("setup", true)
	v.SetDefault("fs_root", "files")
	v.SetDefault("session_lifetime", 24*time.Hour)
	v.SetDefault("session_cleanup", 5*time.Minute)
	v.SetDefault("secure_cookies", false)
	v.SetDefault("max_upload_bytes", 5<<20)
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
}

func fromViper(v *viper.Viper) Configuration {
	return Configuration{
		Listen:           v.GetString("listen"),
		DbUrl:            v.GetString("db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		Setup:            v.GetBool("setup"),
		FsRoot:           v.GetString("fs_root"),
		SessionLifetime:  v.GetDuration("session_lifetime"),
		SessionCleanup:   v.GetDuration("session_cleanup"),
		SecureCookies:    v.GetBool("secure_cookies"),
		MaxUploadBytes:   v.GetInt64("max_upload_bytes"),
		Debug:            v.GetBool("debug"),
		LogLevel:         v.GetString("log_level"),
	}
}
