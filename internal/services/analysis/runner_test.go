package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlugin(t *testing.T) {
	// v2 wants bare names.
	assert.Equal(t, "pslist", NormalizePlugin("windows.pslist", V2))
	assert.Equal(t, "printkey", NormalizePlugin("windows.registry.printkey", V2))
	assert.Equal(t, "pslist", NormalizePlugin("pslist", V2))

	// v3 wants dotted names.
	assert.Equal(t, "windows.pslist", NormalizePlugin("pslist", V3))
	assert.Equal(t, "windows.pslist", NormalizePlugin("windows.pslist", V3))
	assert.Equal(t, "windows.registry.printkey", NormalizePlugin("windows.registry.printkey", V3))
}

func TestBaseCommand(t *testing.T) {
	r := NewRunner("", "", nil)

	cmd, err := r.baseCommand(V3, "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"vol"}, cmd)

	cmd, err = r.baseCommand(V3, "/opt/vol3/vol.py")
	assert.NoError(t, err)
	assert.Equal(t, []string{"python3", "/opt/vol3/vol.py"}, cmd)

	cmd, err = r.baseCommand(V2, "/opt/vol2/volatility.exe")
	assert.NoError(t, err)
	assert.Equal(t, []string{"/opt/vol2/volatility.exe"}, cmd)

	// Volatility 2 has no PATH fallback.
	_, err = r.baseCommand(V2, "")
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	err := classify(V3, 2, "vol: error: argument PLUGIN: invalid choice: 'windows.nope'")
	assert.Equal(t, KindInvalidPlugin, err.Kind)

	err = classify(V2, 1, "You must specify something to do")
	assert.Equal(t, KindMissingPlugin, err.Kind)

	err = classify(V3, 1, "Unsatisfied requirement plugins.PsList.kernel.symbol_table_name")
	assert.Equal(t, KindSymbols, err.Kind)

	err = classify(V3, 3, "something else broke")
	assert.Equal(t, KindGeneric, err.Kind)
	assert.Contains(t, err.Error(), "exit")
}
