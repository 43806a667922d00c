package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

const (
	// ConfigPathEnv 覆盖默认 .env 路径的环境变量
	ConfigPathEnv = "WORDCLOUD_CONFIG"
	envPrefix     = "WORDCLOUD"
)

type Env struct {
	AppEnv         string `mapstructure:"APP_ENV"`
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBURI          string `mapstructure:"DB_URI"`
	DBName         string `mapstructure:"DB_NAME"`
	InputEncoding  string `mapstructure:"INPUT_ENCODING"`
	ColorSeed      int64  `mapstructure:"COLOR_SEED"`
	ShowProgress   bool   `mapstructure:"SHOW_PROGRESS"`
	StylesheetPath string `mapstructure:"STYLESHEET_PATH"`
}

var defaults = map[string]interface{}{
	"APP_ENV":         "development",
	"SERVER_ADDRESS":  ":8080",
	"CONTEXT_TIMEOUT": 30,
	"DB_URI":          "",
	"DB_NAME":         "word_cloud",
	"INPUT_ENCODING":  "utf-8",
	"COLOR_SEED":      0,
	"SHOW_PROGRESS":   false,
	"STYLESHEET_PATH": "",
}

// NewEnv loads configuration from an optional .env file and WORDCLOUD_*
// environment variables, the latter taking precedence. An empty configPath
// falls back to $WORDCLOUD_CONFIG and then ./.env.
func NewEnv(configPath string) (*Env, error) {
	if configPath == "" {
		configPath = os.Getenv(ConfigPathEnv)
	}
	if configPath == "" {
		configPath = ".env"
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("env")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
		}
		log.Printf("config file %s not found, using defaults and environment", configPath)
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if env.ContextTimeout < 0 {
		return nil, fmt.Errorf("CONTEXT_TIMEOUT must not be negative: %d", env.ContextTimeout)
	}
	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	return &env, nil
}

func (e *Env) Timeout() time.Duration {
	return time.Duration(e.ContextTimeout) * time.Second
}
