package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = map[reflect.Type]any{}
)

// Load fills cfg from the environment, using the cached value when this
// type was loaded before.
func Load[T any](cfg *T) error {
	return LoadWithOptions(cfg, env.Options{})
}

// LoadWithOptions is Load with explicit caarlos0/env options, such as a prefix.
// The cache is keyed by type only, so the first options used for a type win.
func LoadWithOptions[T any](cfg *T, opts env.Options) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	dotenvOnce.Do(func() {
		// a missing .env is normal outside development
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(cfg).Elem()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[key]; ok {
		*cfg = cached.(T)
		return nil
	}

	var loaded T
	if err := env.ParseWithOptions(&loaded, opts); err != nil {
		return fmt.Errorf("config: parse %s: %w", key, err)
	}

	cache[key] = loaded
	*cfg = loaded
	return nil
}

// MustLoad is Load that panics on error. Meant for program start.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Reset drops every cached value. Tests use it between environment changes.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[reflect.Type]any{}
}
