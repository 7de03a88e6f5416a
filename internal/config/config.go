// Package config reads panecalc settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by Load.
const (
	EnvBackend      = "PANECALC_BACKEND"
	EnvLog          = "PANECALC_LOG"
	EnvMonochrome   = "PANECALC_MONOCHROME"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName  = "OTEL_SERVICE_NAME"
)

// Backend names a session driver.
type Backend string

const (
	BackendTea   Backend = "tea"
	BackendTcell Backend = "tcell"
)

// DefaultServiceName is the trace service name when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "panecalc"

// Config is the process configuration.
type Config struct {
	Backend    Backend
	LogPath    string // empty disables logging
	Monochrome bool
	Trace      TraceConfig
}

// TraceConfig controls OTLP export. An empty Endpoint disables tracing.
type TraceConfig struct {
	Endpoint    string
	ServiceName string
}

// Enabled reports whether traces are exported.
func (t TraceConfig) Enabled() bool { return t.Endpoint != "" }

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads the configuration through lookup, which has the
// signature of os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := Config{
		Backend: BackendTea,
		LogPath: get(EnvLog),
		Trace: TraceConfig{
			Endpoint:    get(EnvOTLPEndpoint),
			ServiceName: get(EnvServiceName),
		},
	}
	if cfg.Trace.ServiceName == "" {
		cfg.Trace.ServiceName = DefaultServiceName
	}

	switch b := Backend(get(EnvBackend)); b {
	case "":
	case BackendTea, BackendTcell:
		cfg.Backend = b
	default:
		return Config{}, fmt.Errorf("%s: unknown backend %q (want %q or %q)", EnvBackend, b, BackendTea, BackendTcell)
	}

	if v := get(EnvMonochrome); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMonochrome, err)
		}
		cfg.Monochrome = on
	}
	return cfg, nil
}
