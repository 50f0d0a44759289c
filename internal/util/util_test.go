package util

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentFetcherHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("payload"))
	}))
	defer srv.Close()

	f := NewContentFetcher(time.Second)
	b, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(b))

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestContentFetcherFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("local"), 0o644))

	b, err := NewContentFetcher(0).Fetch(context.Background(), "file://"+filepath.ToSlash(path))
	require.NoError(t, err)
	assert.Equal(t, "local", string(b))
}

func TestContentFetcherRejectsBadLocators(t *testing.T) {
	f := NewContentFetcher(0)
	for _, loc := range []string{"", "not a url", "ftp://example.com/x", "::"} {
		_, err := f.Fetch(context.Background(), loc)
		require.Error(t, err, loc)
		assert.True(t, errors.Is(err, ErrBadLocator), loc)
	}
}

func TestScratchLifecycle(t *testing.T) {
	parent := filepath.Join(t.TempDir(), "scratch")
	s, err := NewScratch(parent, "tpl-*")
	require.NoError(t, err)

	path, err := s.WriteFile("../escape/template.jpg", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, s.Dir(), filepath.Dir(path))

	dir := s.Dir()
	require.NoError(t, s.Close())
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, s.Close())
}
