// Package workspace finds the root of a multi-package JavaScript project.
package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// files whose presence marks a workspace root
var rootFiles = []string{"pnpm-workspace.yaml", "lerna.json"}

// SearchRoot walks upward from dir and returns the first directory that is a
// workspace root: one holding a root marker file or a package.json declaring
// workspaces. When no workspace is found it returns the nearest directory
// with a package.json, or dir itself.
func SearchRoot(dir string) string {
	current, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}

	fallback := searchPackageRoot(current)

	for {
		if isWorkspaceRoot(current) {
			log.Debug().Str("workspace", current).Msg("Found workspace root")
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return fallback
		}
		current = parent
	}
}

func searchPackageRoot(dir string) string {
	for current := dir; ; {
		if exists(filepath.Join(current, "package.json")) {
			return current
		}

		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

func isWorkspaceRoot(dir string) bool {
	for _, name := range rootFiles {
		if exists(filepath.Join(dir, name)) {
			return true
		}
	}
	return hasWorkspaces(filepath.Join(dir, "package.json"))
}

func hasWorkspaces(path string) bool {
	data, err := os.ReadFile(path) // #nosec G304 - walking the project tree
	if err != nil {
		return false
	}

	var pkg struct {
		Workspaces json.RawMessage `json:"workspaces"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Skipping unreadable package.json")
		return false
	}

	return len(pkg.Workspaces) > 0 && string(pkg.Workspaces) != "null"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
