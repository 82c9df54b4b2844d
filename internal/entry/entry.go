// Package entry locates the default entry file for an Electron process.
package entry

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

var extensions = []string{"js", "ts", "mjs", "cjs"}

// Find returns the first existing file among index.{js,ts,mjs,cjs} then
// <scope>.{js,ts,mjs,cjs} under root, as an absolute path. It returns "" when
// none exist.
func Find(root, scope string) string {
	for _, name := range []string{"index", scope} {
		for _, ext := range extensions {
			candidate, err := filepath.Abs(filepath.Join(root, name+"."+ext))
			if err != nil {
				continue
			}

			info, err := os.Stat(candidate)
			if err != nil || info.IsDir() {
				continue
			}

			log.Debug().Str("scope", scope).Str("entry", candidate).Msg("Found entry file")
			return candidate
		}
	}

	log.Debug().Str("scope", scope).Str("root", root).Msg("No entry file found")
	return ""
}
