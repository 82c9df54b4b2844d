package esbuildopts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlEntryPoints returns the local module scripts referenced by an HTML
// entry file. Absolute src paths resolve against root, relative ones against
// the HTML file's directory.
func htmlEntryPoints(path, root string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 - input comes from the build configuration
	if err != nil {
		return nil, fmt.Errorf("failed to open html entry: %w", err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html entry %s: %w", path, err)
	}

	var scripts []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Script && attr(n, "type") == "module" {
			if src := attr(n, "src"); src != "" && !isRemote(src) {
				scripts = append(scripts, resolveScript(path, root, src))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return scripts, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") || strings.HasPrefix(src, "//")
}

func resolveScript(htmlPath, root, src string) string {
	src = filepath.FromSlash(src)
	if strings.HasPrefix(src, string(filepath.Separator)) {
		base := root
		if base == "" {
			base = filepath.Dir(htmlPath)
		}
		return filepath.Join(base, src)
	}
	return filepath.Join(filepath.Dir(htmlPath), src)
}
