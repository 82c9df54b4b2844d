package entry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("export {}\n"), 0600))
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		scope string
		want  string
	}{
		{name: "empty directory", scope: "preload"},
		{name: "scope file", files: []string{"preload.ts"}, scope: "preload", want: "preload.ts"},
		{name: "index wins over scope", files: []string{"main.js", "index.cjs"}, scope: "main", want: "index.cjs"},
		{name: "extension order", files: []string{"index.mjs", "index.ts"}, scope: "main", want: "index.ts"},
		{name: "js first", files: []string{"main.cjs", "main.js"}, scope: "main", want: "main.js"},
		{name: "other scope ignored", files: []string{"preload.ts"}, scope: "main"},
		{name: "unknown extension ignored", files: []string{"main.tsx"}, scope: "main"},
		{name: "directories ignored", dirs: []string{"index.js"}, files: []string{"main.ts"}, scope: "main", want: "main.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(root, d), 0o755))
			}
			touch(t, root, tt.files...)

			got := Find(root, tt.scope)
			if tt.want == "" {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, filepath.Join(root, tt.want), got)
		})
	}
}

func TestFindRelativeRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "main.ts")
	t.Chdir(root)

	got := Find(".", "main")
	require.True(t, filepath.IsAbs(got))
	assert.Equal(t, "main.ts", filepath.Base(got))
}

func TestFindMissingRoot(t *testing.T) {
	assert.Empty(t, Find(filepath.Join(t.TempDir(), "missing"), "main"))
}
