// Package config loads environment variables into typed structs and caches
// the result per type.
//
// A .env file in the working directory is read once on first use (a missing
// file is not an error); values already present in the environment win.
// Struct fields are populated with caarlos0/env tags.
//
//	import "github.com/dmitrymomot/greeter/core/config"
//
//	type Config struct {
//		Server        server.Config
//		Greeting      string `env:"GREETING" envDefault:"Hello world"`
//		JWTSigningKey string `env:"JWT_SIGNING_KEY,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err // wraps ErrParsingConfig
//	}
//
// MustLoad panics instead, for use during startup.
//
// # Caching
//
// Each type is parsed once. Later calls with the same type copy the cached
// value, so changing the environment afterwards has no effect until Reset:
//
//	var a, b server.Config
//	config.MustLoad(&a) // reads SERVER_ADDR and friends
//	config.MustLoad(&b) // cached, b == a
//
// Distinct types are cached independently, so app.Config and a standalone
// server.Config do not share an entry.
package config
