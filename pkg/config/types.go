package config

import "github.com/raywall/fast-lambda-client/invoker"

// FileConfig representa a estrutura raiz do arquivo YAML do cliente.
type FileConfig struct {
	Version string         `yaml:"version" validate:"required"`
	Client  invoker.Config `yaml:"client" validate:"required"`
	Logging LoggingConf    `yaml:"logging"`
	Metrics MetricsConf    `yaml:"metrics"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled"`
	Addr      string   `yaml:"addr" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace"`
	Tags      []string `yaml:"tags"`
}
