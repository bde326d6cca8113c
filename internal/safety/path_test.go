package safety

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeJoinUnder(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		entry   string
		want    string
		wantErr bool
	}{
		{name: "nested", entry: "a/b/c.txt", want: filepath.Join(root, "a", "b", "c.txt")},
		{name: "dot segments inside root", entry: "a/./b/../c.txt", want: filepath.Join(root, "a", "c.txt")},
		{name: "parent traversal", entry: "../escape.txt", wantErr: true},
		{name: "nested parent traversal", entry: "a/../../escape.txt", wantErr: true},
		{name: "absolute", entry: "/abs/path.txt", wantErr: true},
		{name: "empty", entry: "", wantErr: true},
		{name: "current directory", entry: "a/..", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafeJoinUnder(root, tt.entry)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafePath)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureUnderRoot(t *testing.T) {
	root := t.TempDir()

	_, err := EnsureUnderRoot(root, filepath.Join(root, "child", "file.txt"))
	assert.NoError(t, err)

	_, err = EnsureUnderRoot(root, root+"/../escape")
	assert.ErrorIs(t, err, ErrUnsafePath)
}
