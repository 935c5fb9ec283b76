package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"3000"`
	Session  Session `yaml:"session"`
	Oracle   Oracle  `yaml:"oracle"`
	Redis    Redis   `yaml:"redis"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"3m"`
}

type Oracle struct {
	Kind            string        `yaml:"kind" env:"ORACLE_KIND" env-default:"minimax"`
	Level           string        `yaml:"level" env:"ORACLE_LEVEL" env-default:"expert"`
	Timeout         time.Duration `yaml:"timeout" env:"ORACLE_TIMEOUT" env-default:"5s"`
	MinResponseTime time.Duration `yaml:"min-response-time" env:"ORACLE_MIN_RESPONSE_TIME" env-default:"500ms"`
	MaxResponseTime time.Duration `yaml:"max-response-time" env:"ORACLE_MAX_RESPONSE_TIME" env-default:"500ms"`
	OpenAI          LLM           `yaml:"openai" env-prefix:"OPENAI_"`
	Anthropic       LLM           `yaml:"anthropic" env-prefix:"ANTHROPIC_"`
}

type LLM struct {
	APIKey string `yaml:"api-key" env:"API_KEY"`
	Model  string `yaml:"model" env:"MODEL"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
}

// MustLoad - load all configurations from the yml file at path, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
