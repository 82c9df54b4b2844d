package version

import "os"

// Env is the process environment as seen by the resolver.
type Env interface {
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
}

// OSEnv reads and writes the real process environment.
type OSEnv struct{}

func (OSEnv) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnv) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// MapEnv is an in-memory Env, mostly useful in tests.
type MapEnv map[string]string

func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Setenv(key, value string) error {
	m[key] = value
	return nil
}
