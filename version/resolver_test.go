package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeElectronManifest(t *testing.T, root, content string) {
	t.Helper()

	dir := filepath.Join(root, "node_modules", "electron")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0600))
}

func TestMajor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "18.2.0", want: "18"},
		{in: "v17.4.1", want: "17"},
		{in: "19.0.0-beta.3", want: "19"},
		{in: "16", want: "16"},
		{in: "15.x", want: "15"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Major(tt.in))
		})
	}
}

func TestResolverFromManifest(t *testing.T) {
	root := t.TempDir()
	writeElectronManifest(t, root, `{"name":"electron","version":"18.2.0"}`)

	env := MapEnv{}
	cache := NewCache()
	r := NewResolver(cache, env)

	assert.Equal(t, "18", r.MajorVersion(root))
	assert.Equal(t, "18", env[EnvMainVersion])

	cached, ok := cache.Get()
	require.True(t, ok)
	assert.Equal(t, "18", cached)
}

func TestResolverCachesResult(t *testing.T) {
	root := t.TempDir()
	writeElectronManifest(t, root, `{"version":"16.0.1"}`)

	r := NewResolver(NewCache(), MapEnv{})
	require.Equal(t, "16", r.MajorVersion(root))

	// a second lookup must not touch the filesystem
	require.NoError(t, os.RemoveAll(filepath.Join(root, "node_modules")))
	assert.Equal(t, "16", r.MajorVersion(root))
	assert.Equal(t, "16", r.MajorVersion(t.TempDir()))
}

func TestResolverEnvOverride(t *testing.T) {
	root := t.TempDir()
	writeElectronManifest(t, root, `{"version":"16.0.1"}`)

	r := NewResolver(NewCache(), MapEnv{EnvMainVersion: "13"})
	assert.Equal(t, "13", r.MajorVersion(root))
}

func TestResolverSharedCache(t *testing.T) {
	cache := NewCache()
	cache.SetIfAbsent("15")

	r := NewResolver(cache, MapEnv{EnvMainVersion: "18"})
	assert.Equal(t, "15", r.MajorVersion(t.TempDir()))
}

func TestResolverUnknown(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "missing manifest"},
		{name: "invalid json", manifest: `{"version":`},
		{name: "no version", manifest: `{"name":"electron"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			if tt.manifest != "" {
				writeElectronManifest(t, root, tt.manifest)
			}

			cache := NewCache()
			env := MapEnv{}
			r := NewResolver(cache, env)

			assert.Empty(t, r.MajorVersion(root))
			_, ok := cache.Get()
			assert.False(t, ok, "unknown versions must not be cached")
			assert.NotContains(t, env, EnvMainVersion)
		})
	}
}

func TestReadManifestVersionErrors(t *testing.T) {
	root := t.TempDir()

	_, err := readManifestVersion(filepath.Join(root, "package.json"))
	require.ErrorIs(t, err, ErrNoManifest)

	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(`{}`), 0600))
	_, err = readManifestVersion(filepath.Join(root, "package.json"))
	require.ErrorIs(t, err, ErrNoVersion)
}

func TestCacheSetIfAbsent(t *testing.T) {
	c := NewCache()

	_, ok := c.Get()
	assert.False(t, ok)

	assert.Equal(t, "17", c.SetIfAbsent("17"))
	assert.Equal(t, "17", c.SetIfAbsent("18"))

	v, ok := c.Get()
	assert.True(t, ok)
	assert.Equal(t, "17", v)
}

func TestDefaultResolver(t *testing.T) {
	require.NotNil(t, Default())
	assert.Same(t, Default(), Default())
}
