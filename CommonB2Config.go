package box2d

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type B2PoolConfig struct {
	/// Contacts constructed at once when a pool runs dry.
	ChunkSize int `yaml:"chunk_size"`

	/// Contacts constructed per strategy when the factory is built.
	InitialCapacity int `yaml:"initial_capacity"`
}

type B2MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

/// Tunables of the contact core. Unset fields keep their defaults.
type B2ContactConfig struct {
	Pool    B2PoolConfig    `yaml:"pool"`
	Metrics B2MetricsConfig `yaml:"metrics"`
}

func MakeB2ContactConfig() B2ContactConfig {
	return B2ContactConfig{
		Pool: B2PoolConfig{
			ChunkSize:       B2_contactPoolChunkSize,
			InitialCapacity: 0,
		},
		Metrics: B2MetricsConfig{
			Enabled:   false,
			Namespace: "box2d",
		},
	}
}

func (config B2ContactConfig) Validate() error {
	if config.Pool.ChunkSize < 1 {
		return fmt.Errorf("box2d: pool.chunk_size must be at least 1, got %d", config.Pool.ChunkSize)
	}

	if config.Pool.InitialCapacity < 0 {
		return fmt.Errorf("box2d: pool.initial_capacity must not be negative, got %d", config.Pool.InitialCapacity)
	}

	if config.Metrics.Enabled && config.Metrics.Namespace == "" {
		return fmt.Errorf("box2d: metrics.namespace is required when metrics are enabled")
	}

	return nil
}

/// Decode a YAML document on top of the defaults and validate the result.
func ParseB2ContactConfig(data []byte) (B2ContactConfig, error) {
	config := MakeB2ContactConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return B2ContactConfig{}, fmt.Errorf("box2d: unmarshal contact config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return B2ContactConfig{}, err
	}

	return config, nil
}

func LoadB2ContactConfig(filename string) (B2ContactConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return B2ContactConfig{}, fmt.Errorf("box2d: load %s: %w", filename, err)
	}

	config, err := ParseB2ContactConfig(data)
	if err != nil {
		return B2ContactConfig{}, fmt.Errorf("box2d: %s: %w", filename, err)
	}

	return config, nil
}
