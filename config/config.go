// Package config loads the training run configuration from a YAML file and SMSSPAM_ environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/neurlang/smsspam/datasets/smsspam"
	"github.com/neurlang/smsspam/learning"
	"github.com/neurlang/smsspam/trainer"
)

const envPrefix = "SMSSPAM"

func GetDefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			URL:     smsspam.DefaultURL,
			Member:  smsspam.DefaultMember,
			Timeout: smsspam.DefaultTimeout,
		},
		Train: TrainConfig{
			Folds:        trainer.DefaultFolds,
			Epochs:       trainer.DefaultEpochs,
			Workers:      1,
			LearningRate: learning.DefaultLearningRate,
			L2Penalty:    learning.DefaultL2Penalty,
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			TTL:     0,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	def := GetDefaultConfig()
	v.SetDefault("dataset.url", def.Dataset.URL)
	v.SetDefault("dataset.member", def.Dataset.Member)
	v.SetDefault("dataset.path", def.Dataset.Path)
	v.SetDefault("dataset.sha256", def.Dataset.SHA256)
	v.SetDefault("dataset.timeout", def.Dataset.Timeout)
	v.SetDefault("train.folds", def.Train.Folds)
	v.SetDefault("train.epochs", def.Train.Epochs)
	v.SetDefault("train.workers", def.Train.Workers)
	v.SetDefault("train.learning_rate", def.Train.LearningRate)
	v.SetDefault("train.l2_penalty", def.Train.L2Penalty)
	v.SetDefault("redis.enabled", def.Redis.Enabled)
	v.SetDefault("redis.addr", def.Redis.Addr)
	v.SetDefault("redis.password", def.Redis.Password)
	v.SetDefault("redis.db", def.Redis.DB)
	v.SetDefault("redis.ttl", def.Redis.TTL)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads a YAML file; keys it omits keep their defaults and SMSSPAM_* variables override both.
// An empty filename uses defaults and the environment only.
func LoadConfig(filename string) (*Config, error) {
	v := newViper()
	if filename != "" {
		v.SetConfigFile(filename)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read the file %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error reading the config file %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the trainer cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Train.Folds < 2:
		return fmt.Errorf("train.folds must be at least 2, got %d", c.Train.Folds)
	case c.Train.Epochs < 1:
		return fmt.Errorf("train.epochs must be at least 1, got %d", c.Train.Epochs)
	case c.Train.Workers < 0:
		return fmt.Errorf("train.workers must not be negative, got %d", c.Train.Workers)
	case c.Train.LearningRate <= 0:
		return fmt.Errorf("train.learning_rate must be positive, got %v", c.Train.LearningRate)
	case c.Train.L2Penalty < 0:
		return fmt.Errorf("train.l2_penalty must not be negative, got %v", c.Train.L2Penalty)
	case c.Dataset.Member == "":
		return fmt.Errorf("dataset.member must not be empty")
	}
	return nil
}

// TrainOptions converts the train section into trainer options
func (c *Config) TrainOptions() trainer.Options {
	opts := trainer.DefaultOptions()
	opts.Folds = c.Train.Folds
	opts.Epochs = c.Train.Epochs
	opts.Workers = c.Train.Workers
	opts.LearningRate = c.Train.LearningRate
	opts.L2Penalty = c.Train.L2Penalty
	return opts
}

// DatasetSource converts the dataset section into a loader configuration
func (c *Config) DatasetSource() smsspam.DatasetConfig {
	return smsspam.DatasetConfig{
		URL:    c.Dataset.URL,
		Member: c.Dataset.Member,
		SHA256: c.Dataset.SHA256,
	}
}
