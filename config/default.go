package config

import _ "embed"

// DefaultConfigYAML configuração padrão embutida no binário.
//
//go:embed config.yaml
var DefaultConfigYAML []byte
