package version

import (
	"slices"
	"strconv"
)

// Target families, used as the prefix of every compatibility target
const (
	NodeFamily   = "node"
	ChromeFamily = "chrome"
)

// Node and Chrome versions bundled with each supported Electron major
var (
	nodeTargets = map[string]string{
		"11": "12.18",
		"12": "14.16",
		"13": "14.17",
		"14": "14.17",
		"15": "16.5",
		"16": "16.9",
		"17": "16.13",
		"18": "16.13",
	}

	chromeTargets = map[string]string{
		"11": "87",
		"12": "89",
		"13": "91",
		"14": "93",
		"15": "94",
		"16": "96",
		"17": "98",
		"18": "100",
	}
)

// NodeTarget maps an Electron major version to a node target, e.g. "node16.13".
func NodeTarget(electronVersion string) string {
	return target(NodeFamily, nodeTargets, electronVersion)
}

// ChromeTarget maps an Electron major version to a chrome target, e.g. "chrome100".
func ChromeTarget(electronVersion string) string {
	return target(ChromeFamily, chromeTargets, electronVersion)
}

// TargetFor dispatches on the target family.
func TargetFor(family, electronVersion string) string {
	switch family {
	case NodeFamily:
		return NodeTarget(electronVersion)
	case ChromeFamily:
		return ChromeTarget(electronVersion)
	default:
		return ""
	}
}

func target(family string, table map[string]string, electronVersion string) string {
	n, err := strconv.Atoi(electronVersion)
	if err != nil || n <= 10 {
		return ""
	}

	v, ok := table[electronVersion]
	if !ok {
		return ""
	}

	return family + v
}

// Mapping is one row of the compatibility table.
type Mapping struct {
	Electron string `yaml:"electron"`
	Node     string `yaml:"node"`
	Chrome   string `yaml:"chrome"`
}

// Targets returns the compatibility table ordered by Electron major version.
func Targets() []Mapping {
	majors := make([]int, 0, len(nodeTargets))
	for k := range nodeTargets {
		n, _ := strconv.Atoi(k)
		majors = append(majors, n)
	}
	slices.Sort(majors)

	rows := make([]Mapping, 0, len(majors))
	for _, n := range majors {
		v := strconv.Itoa(n)
		rows = append(rows, Mapping{Electron: v, Node: NodeTarget(v), Chrome: ChromeTarget(v)})
	}

	return rows
}
