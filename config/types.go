package config

import "time"

type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset"`
	Train   TrainConfig   `mapstructure:"train"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

type DatasetConfig struct {
	URL     string        `mapstructure:"url"`
	Member  string        `mapstructure:"member"`
	Path    string        `mapstructure:"path"`
	SHA256  string        `mapstructure:"sha256"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type TrainConfig struct {
	Folds        int     `mapstructure:"folds"`
	Epochs       int     `mapstructure:"epochs"`
	Workers      int     `mapstructure:"workers"`
	LearningRate float64 `mapstructure:"learning_rate"`
	L2Penalty    float64 `mapstructure:"l2_penalty"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}
