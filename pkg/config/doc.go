// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env/v11, after an optional .env file is read with
// github.com/joho/godotenv. Parsed values are cached per struct type.
package config
