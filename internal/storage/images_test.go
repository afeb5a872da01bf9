package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFood_SameFilenameNeverCollides(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), "https://kitchen.example")
	require.NoError(t, err)

	first, err := store.SaveFood("biryani.jpg", strings.NewReader("first upload"))
	require.NoError(t, err)
	second, err := store.SaveFood("biryani.jpg", strings.NewReader("second upload"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two uploads with one filename must get distinct URLs")

	entries, err := os.ReadDir(filepath.Join(store.Root(), FoodImagePrefix))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveFood_WritesContentAndKeepsExtension(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), "https://kitchen.example/")
	require.NoError(t, err)

	url, err := store.SaveFood("Paneer Tikka.PNG", strings.NewReader("png bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://kitchen.example/media/food-images/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), "extension should be kept, lowercased: %s", url)

	key := url[strings.LastIndex(url, "/")+1:]
	content, err := os.ReadFile(filepath.Join(store.Root(), FoodImagePrefix, key))
	require.NoError(t, err)
	assert.Equal(t, "png bytes", string(content))
}

func TestPublicURL(t *testing.T) {
	store, err := NewImageStore(t.TempDir(), "https://kitchen.example/")
	require.NoError(t, err)

	assert.Equal(t,
		"https://kitchen.example/media/food-images/abc.jpg",
		store.PublicURL("food-images/abc.jpg"))
}
