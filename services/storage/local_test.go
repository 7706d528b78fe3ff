package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndURL(t *testing.T) {
	svc, err := NewLocalStorageService(t.TempDir(), "http://localhost:8080/")
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := svc.Save(ctx, strings.NewReader("%PDF-1.4"), "signed consent.pdf")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_signed_consent.pdf"))

	data, err := os.ReadFile(filepath.Join(svc.Root(), ref))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	assert.Equal(t, "http://localhost:8080/storage/"+ref, svc.URL(ref))
}

func TestLocalStorageSaveGeneratesUniqueRefs(t *testing.T) {
	svc, err := NewLocalStorageService(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Save(ctx, strings.NewReader("a"), "form.pdf")
	require.NoError(t, err)
	second, err := svc.Save(ctx, strings.NewReader("b"), "form.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalStorageRejectsPathTraversal(t *testing.T) {
	root := t.TempDir()
	svc, err := NewLocalStorageService(root, "http://localhost:8080")
	require.NoError(t, err)

	ref, err := svc.Save(context.Background(), strings.NewReader("x"), "../../etc/passwd")
	require.NoError(t, err)
	assert.NotContains(t, ref, "/")
	assert.NotContains(t, ref, "..")

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStorageDeleteIsIdempotent(t *testing.T) {
	svc, err := NewLocalStorageService(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := svc.Save(ctx, strings.NewReader("x"), "form.pdf")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ref))
	require.NoError(t, svc.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(svc.Root(), ref))
	assert.True(t, os.IsNotExist(err))
}
