// Package config loads CLI settings from defaults, an optional YAML file and
// FORMAUDIT_* environment variables, with command flags taking precedence.
package config
