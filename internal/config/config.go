package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis      Redis      `yaml:"redis"`
	Simulation Simulation `yaml:"simulation"`
}

type Redis struct {
	Enabled bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	DB      int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	GameTTL time.Duration `yaml:"game-ttl" env:"REDIS_GAME_TTL" env-default:"24h"`
}

// Simulation describes a batch of games played between computer characters. Characters are
// assigned to colors in rotation order; a zero seed asks for a random one.
type Simulation struct {
	Games          int      `yaml:"games" env:"SIMULATION_GAMES" env-default:"100"`
	Mode           string   `yaml:"mode" env:"SIMULATION_MODE" env-default:"standard"`
	Characters     []string `yaml:"characters" env:"SIMULATION_CHARACTERS" env-default:"reward,random"`
	Seed           int64    `yaml:"seed" env:"SIMULATION_SEED" env-default:"0"`
	MaxTurns       int      `yaml:"max-turns" env:"SIMULATION_MAX_TURNS" env-default:"2000"`
	DrawAgainOnTwo bool     `yaml:"draw-again-on-two" env:"SIMULATION_DRAW_AGAIN_ON_TWO" env-default:"false"`
}

// Load reads path and applies environment overrides on top of it.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
