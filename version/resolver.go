// Package version works out which Electron release a project builds against
// and the Node and Chrome targets that release ships with.
package version

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/mod/semver"
)

// EnvMainVersion pins the Electron major version and skips the manifest lookup
const EnvMainVersion = "ELECTRON_MAIN_VER"

var (
	// ErrNoManifest indicates electron is not installed under the workspace root
	ErrNoManifest = errors.New("electron package manifest not found")
	// ErrNoVersion indicates the electron manifest has no usable version field
	ErrNoVersion = errors.New("electron package manifest has no version")
)

var defaultResolver = NewResolver(NewCache(), OSEnv{})

// Default returns the process wide resolver over the OS environment.
func Default() *Resolver {
	return defaultResolver
}

type Resolver struct {
	cache *Cache
	env   Env
}

// NewResolver creates a resolver backed by the shared cache. A nil cache or
// env falls back to a fresh cache and the OS environment.
func NewResolver(cache *Cache, env Env) *Resolver {
	if cache == nil {
		cache = NewCache()
	}
	if env == nil {
		env = OSEnv{}
	}
	return &Resolver{cache: cache, env: env}
}

// MajorVersion returns the Electron major version for the workspace at root,
// or "" when it cannot be determined.
func (r *Resolver) MajorVersion(root string) string {
	if v, ok := r.cache.Get(); ok {
		return v
	}

	if v, ok := r.env.LookupEnv(EnvMainVersion); ok && v != "" {
		log.Debug().Str("version", v).Msg("Electron version from environment")
		return r.cache.SetIfAbsent(v)
	}

	manifest := filepath.Join(root, "node_modules", "electron", "package.json")
	full, err := readManifestVersion(manifest)
	if err != nil {
		log.Debug().Err(err).Str("manifest", manifest).Msg("Electron version unavailable")
		return ""
	}

	major := Major(full)
	if major == "" {
		return ""
	}

	major = r.cache.SetIfAbsent(major)
	if err := r.env.Setenv(EnvMainVersion, major); err != nil {
		log.Warn().Err(err).Msg("Failed to export electron version")
	}

	log.Debug().Str("version", full).Str("major", major).Msg("Electron version from manifest")

	return major
}

func readManifestVersion(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is built from the workspace root
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNoManifest, path)
		}
		return "", err
	}

	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if pkg.Version == "" {
		return "", fmt.Errorf("%w: %s", ErrNoVersion, path)
	}

	return pkg.Version, nil
}

// Major returns the leading numeric component of a version string, so
// "18.2.0" and "v18.0.0-beta.3" both give "18".
func Major(v string) string {
	v = strings.TrimSpace(v)
	if canonical := "v" + strings.TrimPrefix(v, "v"); semver.IsValid(canonical) {
		return strings.TrimPrefix(semver.Major(canonical), "v")
	}

	major, _, _ := strings.Cut(v, ".")
	return major
}
