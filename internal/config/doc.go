// Package config loads the service configuration from defaults, an optional
// config.yaml, .env files and TOURS_-prefixed environment variables, and
// validates it before any component is constructed.
package config
