package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargets(t *testing.T) {
	tests := []struct {
		electron string
		node     string
		chrome   string
	}{
		{electron: "11", node: "node12.18", chrome: "chrome87"},
		{electron: "12", node: "node14.16", chrome: "chrome89"},
		{electron: "13", node: "node14.17", chrome: "chrome91"},
		{electron: "14", node: "node14.17", chrome: "chrome93"},
		{electron: "15", node: "node16.5", chrome: "chrome94"},
		{electron: "16", node: "node16.9", chrome: "chrome96"},
		{electron: "17", node: "node16.13", chrome: "chrome98"},
		{electron: "18", node: "node16.13", chrome: "chrome100"},
		{electron: "10"},
		{electron: "9"},
		{electron: "0"},
		{electron: "19"},
		{electron: "-3"},
		{electron: "18abc"},
		{electron: ""},
	}

	for _, tt := range tests {
		t.Run("electron "+tt.electron, func(t *testing.T) {
			assert.Equal(t, tt.node, NodeTarget(tt.electron))
			assert.Equal(t, tt.chrome, ChromeTarget(tt.electron))
			assert.Equal(t, tt.node, TargetFor(NodeFamily, tt.electron))
			assert.Equal(t, tt.chrome, TargetFor(ChromeFamily, tt.electron))
		})
	}
}

func TestTargetForUnknownFamily(t *testing.T) {
	assert.Empty(t, TargetFor("safari", "18"))
}

func TestTargetsTable(t *testing.T) {
	rows := Targets()

	assert.Len(t, rows, 8)
	assert.Equal(t, Mapping{Electron: "11", Node: "node12.18", Chrome: "chrome87"}, rows[0])
	assert.Equal(t, Mapping{Electron: "18", Node: "node16.13", Chrome: "chrome100"}, rows[7])
}
