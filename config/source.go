package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Source is one place configuration values can come from. Lookup reports
// whether the key is present, so precedence between sources stays explicit.
type Source interface {
	Name() string
	Lookup(key string) (string, bool)
}

type envSource struct{}

// EnvSource reads from the process environment.
func EnvSource() Source { return envSource{} }

func (envSource) Name() string { return "env" }

func (envSource) Lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	return v, ok
}

type fileSource struct {
	name   string
	values map[string]string
}

// DotenvSource reads a .env file once at construction. A missing or unreadable
// file yields an empty source; startup never fails because .env is absent.
func DotenvSource(path string) Source {
	values, err := godotenv.Read(path)
	if err != nil {
		values = map[string]string{}
	}
	return &fileSource{name: path, values: values}
}

// MapSource wraps a fixed map, for tests.
func MapSource(name string, values map[string]string) Source {
	return &fileSource{name: name, values: values}
}

func (s *fileSource) Name() string { return s.name }

func (s *fileSource) Lookup(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Resolver answers configuration lookups from an ordered list of sources;
// the first source that has the key wins.
type Resolver struct {
	sources []Source
}

// NewResolver returns a Resolver over sources, highest precedence first.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// Get returns the value for key, or fallback when no source has it.
func (r *Resolver) Get(key, fallback string) string {
	for _, s := range r.sources {
		if v, ok := s.Lookup(key); ok && v != "" {
			return v
		}
	}
	return fallback
}

// GetInt returns the integer value for key, or fallback when absent or unparseable.
func (r *Resolver) GetInt(key string, fallback int) int {
	if s := r.Get(key, ""); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

// GetBool returns the boolean value for key, or fallback when absent or
// unparseable. "true", "1", "yes" are true; "false", "0", "no" are false.
func (r *Resolver) GetBool(key string, fallback bool) bool {
	switch strings.ToLower(r.Get(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

// GetDuration returns the duration for key (Go duration syntax, e.g. "15s"),
// or fallback when absent or unparseable.
func (r *Resolver) GetDuration(key string, fallback time.Duration) time.Duration {
	if s := r.Get(key, ""); s != "" {
		if v, err := time.ParseDuration(s); err == nil {
			return v
		}
	}
	return fallback
}
