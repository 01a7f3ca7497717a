// Package config loads and validates ZCL Config Core configuration.
//
// Configuration is layered: hardcoded defaults, then a YAML file, then
// environment variable overrides (ZCLCONF_* pattern). The result is a
// validated Config consumed by the infrastructure packages and main.
//
// Secrets (MQTT credentials) should be supplied via environment variables
// rather than committed to the YAML file.
package config
