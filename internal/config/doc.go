// Package config handles YAML configuration loading with environment variable substitution.
//
// Configuration files support ${VAR} syntax for environment variable
// interpolation. Every field is optional; a missing or empty config file
// yields the defaults, under which the deduplicator reads stdin and writes
// stdout.
package config
