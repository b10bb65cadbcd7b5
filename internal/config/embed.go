package config

import _ "embed"

// defaultYAML holds the built-in configuration.
//
//go:embed default.yaml
var defaultYAML []byte
