package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveBlobWritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveBlob(dir, "campaigns_20250314-150926.csv", []byte("a,b\n1,2\n"))

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "campaigns_20250314-150926.csv"), path)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("a,b\n1,2\n"), content)
}

func TestSaveBlobCreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads", "audio")

	path, err := SaveBlob(dir, "email_1.mp3", []byte("mp3"))

	assert.NoError(t, err)
	assert.FileExists(t, path)
}
