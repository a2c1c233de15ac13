package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/adapters/fs"
	"go.trai.ch/stylegen/internal/core/domain"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestWalker_Scan(t *testing.T) {
	// tmp/
	//   Blue/Default/button_round_blue.png
	//   Blue/Default/notes.txt
	//   Blue/Double/button_round_blue.png
	//   Grey/default/BUTTON_SQUARE.PNG
	//   Grey/Default/.git/ignored.png
	//   loose.png
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "Blue", "Default", "button_round_blue.png"))
	touch(t, filepath.Join(tmpDir, "Blue", "Default", "notes.txt"))
	touch(t, filepath.Join(tmpDir, "Blue", "Double", "button_round_blue.png"))
	touch(t, filepath.Join(tmpDir, "Grey", "default", "BUTTON_SQUARE.PNG"))
	touch(t, filepath.Join(tmpDir, "Grey", "Default", ".git", "ignored.png"))
	touch(t, filepath.Join(tmpDir, "loose.png"))

	files, err := fs.NewWalker().Scan(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "Blue", "Default", "button_round_blue.png"),
		filepath.Join(tmpDir, "Grey", "default", "BUTTON_SQUARE.PNG"),
	}, files)
}

func TestWalker_Scan_Empty(t *testing.T) {
	files, err := fs.NewWalker().Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestWalker_Scan_MissingTarget(t *testing.T) {
	_, err := fs.NewWalker().Scan(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestWalker_Scan_TargetIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.png")
	touch(t, path)

	_, err := fs.NewWalker().Scan(path)
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestWalker_Scan_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	for _, variant := range []string{"Yellow", "Blue", "Red", "Grey"} {
		touch(t, filepath.Join(tmpDir, variant, "Default", "button_round_flat.png"))
	}

	walker := fs.NewWalker()
	first, err := walker.Scan(tmpDir)
	require.NoError(t, err)
	second, err := walker.Scan(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.IsNonDecreasing(t, first)
}
