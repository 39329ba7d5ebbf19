package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultServerPath = "configs/server.toml"
	DefaultBotPath    = "configs/bot.toml"
	envFile           = ".env"

	envBotToken    = "TELEGRAM_APITOKEN"
	envPrefsSecret = "CRICKETBOARD_PREFS_SECRET"
)

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

type TgBot struct {
	TelegramApiToken string `toml:"telegram_apitoken"`
}

type Prefs struct {
	Secret string        `toml:"secret"`
	TTL    time.Duration `toml:"ttl"`
}

type Server struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	TgBotEnabled bool   `toml:"tg_bot_enabled"`
	Debug        bool   `toml:"debug_mode"`
	LogLevel     string `toml:"log_level"`
	Prefs        Prefs  `toml:"prefs"`
}

type Data struct {
	Source       string `toml:"source"`
	CSVPath      string `toml:"csv_path"`
	CSVSeparator string `toml:"csv_separator"`
	SQLiteFile   string `toml:"sqlite_file"`
}

// Separator returns the csv field separator, ',' when unset.
func (d Data) Separator() rune {
	for _, r := range d.CSVSeparator {
		return r
	}
	return ','
}

type serverFile struct {
	Server Server `toml:"server"`
	Data   Data   `toml:"data"`
}

type Config struct {
	TgBot  TgBot
	Server Server
	Data   Data
}

func Default() Config {
	return Config{
		Server: Server{
			Host:     "localhost",
			Port:     3000,
			LogLevel: "info",
			Prefs: Prefs{
				TTL: 30 * 24 * time.Hour,
			},
		},
		Data: Data{
			Source:     SourceCSV,
			CSVPath:    "data/cricket_players.csv",
			SQLiteFile: "cricketboard.sqlite",
		},
	}
}

// New reads the server and bot files on top of the defaults. A missing bot
// file is fine unless the bot is enabled. Environment values, including
// those from a .env file, win over both files.
func New(serverPath, botPath string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%s: %w", envFile, err)
	}

	cfg := Default()
	file := serverFile{Server: cfg.Server, Data: cfg.Data}
	if _, err := toml.DecodeFile(serverPath, &file); err != nil {
		return Config{}, err
	}
	cfg.Server, cfg.Data = file.Server, file.Data

	_, err := toml.DecodeFile(botPath, &cfg.TgBot)
	if err != nil && !(errors.Is(err, os.ErrNotExist) && !cfg.Server.TgBotEnabled) {
		return Config{}, err
	}

	if token := os.Getenv(envBotToken); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if secret := os.Getenv(envPrefsSecret); secret != "" {
		cfg.Server.Prefs.Secret = secret
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem found, joined.
func (c Config) Validate() error {
	var err error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		err = errors.Join(err, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.Prefs.TTL <= 0 {
		err = errors.Join(err, errors.New("server.prefs.ttl must be positive"))
	}
	if c.Server.TgBotEnabled && c.TgBot.TelegramApiToken == "" {
		err = errors.Join(err, fmt.Errorf("bot enabled without a token, set %s", envBotToken))
	}
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.CSVPath == "" {
			err = errors.Join(err, errors.New("data.csv_path is empty"))
		}
	case SourceSQLite:
		if c.Data.SQLiteFile == "" {
			err = errors.Join(err, errors.New("data.sqlite_file is empty"))
		}
	default:
		err = errors.Join(err, fmt.Errorf("data.source %q is not %q or %q", c.Data.Source, SourceCSV, SourceSQLite))
	}
	if len([]rune(c.Data.CSVSeparator)) > 1 {
		err = errors.Join(err, fmt.Errorf("data.csv_separator %q must be one character", c.Data.CSVSeparator))
	}
	return err
}
