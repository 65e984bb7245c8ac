// Package config loads runtime configuration for the tutorbook CLI.
//
// # Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags, which override earlier values.
//
// # Supported flags
//
//	-u string   user records file
//	-r string   reservation records file
//	-k string   catalog file (YAML); the built-in sessions are used when empty
//	-l string   log level: debug, info, warn, error
//	-b string   log backend: slog, zap
//
// # File schema
//
//	users_file: data/usuarios.txt
//	reservations_file: data/reservas.txt
//	catalog_file: catalog.yaml
//	log_level: info
//	log_backend: zap
//
// Keys missing from the file keep their default values. The result is checked
// by (*Config).Validate.
package config
