package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultLibraryPath = "~/.local/share/audioshelf/library.db"
	DefaultCoversDir   = "~/.local/share/audioshelf/covers"

	// DefaultMaxImageSize is the largest cover file the shelf will decode
	DefaultMaxImageSize = 5 * 1024 * 1024

	envPrefix = "AUDIOSHELF"
)

// Config holds all configuration for the shelf
type Config struct {
	Library LibraryConfig `mapstructure:"library"`
	Covers  CoversConfig  `mapstructure:"covers"`
	Log     LogConfig     `mapstructure:"log"`
}

// LibraryConfig locates the book database
type LibraryConfig struct {
	// Path is the SQLite database file
	Path string `mapstructure:"path" default:"~/.local/share/audioshelf/library.db"`
	// RefreshSeconds is how often the TUI re-reads the library, 0 disables it
	RefreshSeconds int `mapstructure:"refresh_seconds" default:"5"`
}

// CoversConfig controls where covers come from
type CoversConfig struct {
	// Dir is the local covers directory, also watched for changes
	Dir string `mapstructure:"dir" default:"~/.local/share/audioshelf/covers"`
	// MaxImageSize is the size in bytes from which a cover is replaced by a placeholder
	MaxImageSize int64 `mapstructure:"max_image_size" default:"5242880"`

	// Object storage, used instead of Dir when Bucket is set
	Bucket    string `mapstructure:"bucket" default:""`
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:""`
	SecretKey string `mapstructure:"secret_key" default:""`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	Region    string `mapstructure:"region" default:""`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level  string `mapstructure:"level" default:"info"`
	Format string `mapstructure:"format" default:"console"`
	// File receives the TUI log; the terminal belongs to the UI
	File string `mapstructure:"file" default:"~/.local/share/audioshelf/audioshelf.log"`
}

// Load reads configuration from an optional .env file in dir and from
// AUDIOSHELF_* environment variables (e.g. AUDIOSHELF_COVERS_DIR).
func Load(dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if dir == "" || dir == "." {
		envPath = ".env"
	}
	// A missing .env is the normal case
	_ = godotenv.Load(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.Library.Path = ExpandHome(cfg.Library.Path)
	cfg.Covers.Dir = ExpandHome(cfg.Covers.Dir)
	cfg.Log.File = ExpandHome(cfg.Log.File)
	if cfg.Covers.MaxImageSize <= 0 {
		cfg.Covers.MaxImageSize = DefaultMaxImageSize
	}

	return &cfg, nil
}

// bindValues walks the struct tags and registers every key with its
// default, so AutomaticEnv can see them during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		v.SetDefault(key, field.Tag.Get("default"))
	}
}

// OverrideLibraryPath replaces the configured database with path, as given
// by a --library flag. An empty path keeps the configured one.
func (c *Config) OverrideLibraryPath(path string) {
	if path != "" {
		c.Library.Path = ExpandHome(path)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
