package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "skies-seas.cfg.json"

// EnvPrefix prefixes environment overrides, e.g. SKIES_RECORD_ENABLED=true.
const EnvPrefix = "SKIES"

// RecordConfig holds match archive settings.
type RecordConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Driver  string `json:"driver" mapstructure:"driver"` // sqlite or postgres
	Path    string `json:"path" mapstructure:"path"`     // sqlite file
	DSN     string `json:"dsn" mapstructure:"dsn"`       // postgres connection string
}

// WindowConfig holds the initial window size of the desktop front-end.
type WindowConfig struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// Settings is the resolved configuration.
type Settings struct {
	LogLevel       string
	PlayerOne      string
	PlayerTwo      string
	Seed           int64 // 0 = seed from the clock
	ActionsPerTurn int   // 0 = unlimited
	Record         RecordConfig
	Window         WindowConfig
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("players.one", "Player 1")
	viper.SetDefault("players.two", "Player 2")
	viper.SetDefault("seed", 0)
	viper.SetDefault("rules.actionsPerTurn", 0)

	viper.SetDefault("record.enabled", false)
	viper.SetDefault("record.driver", "sqlite")
	viper.SetDefault("record.path", "./skies-seas.db")
	viper.SetDefault("record.dsn", "")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 760)
}

// Load reads configuration from the JSON file in configDir, applies
// environment overrides and fills in defaults. A missing file is not an
// error; a malformed one is.
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	s := Current()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Current builds Settings from whatever viper holds now.
func Current() Settings {
	return Settings{
		LogLevel:       viper.GetString("logLevel"),
		PlayerOne:      viper.GetString("players.one"),
		PlayerTwo:      viper.GetString("players.two"),
		Seed:           viper.GetInt64("seed"),
		ActionsPerTurn: viper.GetInt("rules.actionsPerTurn"),
		Record: RecordConfig{
			Enabled: viper.GetBool("record.enabled"),
			Driver:  strings.ToLower(viper.GetString("record.driver")),
			Path:    viper.GetString("record.path"),
			DSN:     viper.GetString("record.dsn"),
		},
		Window: WindowConfig{
			Width:  viper.GetInt("window.width"),
			Height: viper.GetInt("window.height"),
		},
	}
}

// Validate rejects settings the game cannot start with.
func (s Settings) Validate() error {
	if s.ActionsPerTurn < 0 {
		return fmt.Errorf("rules.actionsPerTurn must be >= 0, got %d", s.ActionsPerTurn)
	}
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if !s.Record.Enabled {
		return nil
	}
	switch s.Record.Driver {
	case "sqlite":
		if s.Record.Path == "" {
			return errors.New("record.path is required for the sqlite driver")
		}
	case "postgres":
		if s.Record.DSN == "" {
			return errors.New("record.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown record.driver %q", s.Record.Driver)
	}
	return nil
}
