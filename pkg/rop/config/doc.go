// Package config loads typed configuration from the environment. A .env
// file in the working directory is read once on first use, then each
// struct type is parsed with caarlos0/env and cached.
//
//	type Settings struct {
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// Subsequent Load calls for the same type return the cached value.
package config
