package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/moviebot.git/internal/models"
	"github.com/DanRulev/moviebot.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig     `mapstructure:"app" validate:"required"`
	BotToken string        `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig      `mapstructure:"db" validate:"required"`
	Env      string        `mapstructure:"env" validate:"oneof=development production staging"`
	Models   ModelsConfig  `mapstructure:"models" validate:"required"`
	Audio    AudioConfig   `mapstructure:"audio"`
	UI       UIConfig      `mapstructure:"ui"`
	Metrics  MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type ModelsConfig struct {
	HubURL    string               `mapstructure:"hub_url" validate:"required,url"`
	Revision  string               `mapstructure:"revision" validate:"required"`
	CacheDir  string               `mapstructure:"cache_dir" validate:"required"`
	Token     string               `mapstructure:"token"`
	Artifacts []models.ArtifactRef `mapstructure:"artifacts" validate:"required,min=1,dive"`
}

type AudioConfig struct {
	// Dir holds the narration files; empty means a directory under os.TempDir.
	Dir string `mapstructure:"dir"`
}

type UIConfig struct {
	LocalizedGenres bool   `mapstructure:"localized_genres"`
	DefaultLanguage string `mapstructure:"default_language" validate:"omitempty,oneof=en es pt"`
}

type MetricsConfig struct {
	// Addr is the listen address of /metrics; empty disables it.
	Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
}

var envBindings = map[string]string{
	"bot_token":        "BOT_TOKEN",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
	"models.token":     "HF_TOKEN",
	"audio.dir":        "AUDIO_DIR",
	"metrics.addr":     "METRICS_ADDR",
}

// Init reads configs/<CONFIG_NAME>.yaml with environment overrides. A .env file
// in the working directory is loaded first when present.
func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	return load("configs", configName)
}

func load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(name)

	v.SetDefault("app.timeout", 30*time.Second)
	v.SetDefault("ui.localized_genres", true)
	v.SetDefault("ui.default_language", string(models.LangEN))

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
