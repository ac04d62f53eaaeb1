package upload

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueSuffixNamer(t *testing.T) {
	namer := UniqueSuffixNamer{}

	name := namer.Name("dinner.jpg")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+-dinner\.jpg$`), name)

	// Two uploads of the same file get distinct names.
	other := namer.Name("dinner.jpg")
	assert.NotEqual(t, name, other)
}

func TestUniqueSuffixNamer_StripsPath(t *testing.T) {
	namer := UniqueSuffixNamer{}

	name := namer.Name("../../etc/passwd")
	assert.False(t, strings.Contains(name, "/"))
	assert.True(t, strings.HasSuffix(name, "-passwd"))
}

func TestOriginalNamer_Overwrites(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), OriginalNamer{})
	require.NoError(t, err)

	first, err := saver.Save(strings.NewReader("first"), "dinner.jpg")
	require.NoError(t, err)
	second, err := saver.Save(strings.NewReader("second"), "dinner.jpg")
	require.NoError(t, err)

	// Same name, so the second upload silently replaced the first.
	assert.Equal(t, first, second)
	data, err := os.ReadFile(filepath.Join(saver.Dir(), first))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestSaver_SaveWritesContent(t *testing.T) {
	saver, err := NewSaver(t.TempDir(), UniqueSuffixNamer{})
	require.NoError(t, err)

	name, err := saver.Save(strings.NewReader("image-bytes"), "soup.png")
	require.NoError(t, err)
	require.NotEmpty(t, name)

	data, err := os.ReadFile(filepath.Join(saver.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestNamerFor(t *testing.T) {
	assert.IsType(t, OriginalNamer{}, NamerFor("original"))
	assert.IsType(t, UniqueSuffixNamer{}, NamerFor("unique"))
	assert.IsType(t, UniqueSuffixNamer{}, NamerFor("anything-else"))
}

func TestNewSaver_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "uploads")

	_, err := NewSaver(dir, UniqueSuffixNamer{})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
