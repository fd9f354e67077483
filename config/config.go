package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	LogLevel              string
	DefaultPolicy         string
	RoundRobinTimeQuantum int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads the process wide configuration once, from SCHED_CONFIG or ./config.yaml.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load(os.Getenv("SCHED_CONFIG"))
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads the config file at path, or config.yaml from the working directory when path is
// empty. A missing file leaves the defaults in place; SCHED_* environment variables override both.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("log.level", "info")
	v.SetDefault("scheduler.default_policy", "fcfs")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)

	v.SetEnvPrefix("sched")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log.level"),
		DefaultPolicy:         v.GetString("scheduler.default_policy"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", cfg.RoundRobinTimeQuantum)
	}
	return cfg, nil
}
