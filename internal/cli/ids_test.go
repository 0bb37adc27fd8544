package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadIDsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	content := "# regulars\n123456\n\n  987654  \n# retired\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	ids, err := readIDsFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"123456", "987654"}, ids)
}

func TestReadIDsFileMissing(t *testing.T) {
	_, err := readIDsFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestResolveIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	require.NoError(t, os.WriteFile(path, []byte("333\n444\n"), 0o644))

	tests := []struct {
		name   string
		inline string
		path   string
		want   []string
	}{
		{"inline only", "111, 222", "", []string{"111", "222"}},
		{"file only", "", path, []string{"333", "444"}},
		{"inline then file", "111", path, []string{"111", "333", "444"}},
		{"neither", "", "", nil},
		{"stray commas", ",111,,", "", []string{"111"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := resolveIDs(tt.inline, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}
