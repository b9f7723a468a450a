package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func TestRouterCustomIndex(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(tmpl, []byte(`{{range .Sprites}}[{{.}}]{{end}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.aseprite"), nil, 0644))

	router, err := newRouter(dir, tmpl)
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "[a]", string(body))

	_, err = newRouter(dir, filepath.Join(dir, "missing.html"))
	require.Error(t, err)
}

func TestRouterCompresses(t *testing.T) {
	dir := t.TempDir()
	b := ttesting.NewBuilder(1, 1, 32)
	b.Frame(100).Layer(ttesting.LayerSpec{Name: "Layer 1", Flags: 1, Opacity: 255})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dot.aseprite"), b.Bytes(), 0644))

	router, err := newRouter(dir, "")
	require.NoError(t, err)
	srv := httptest.NewServer(router)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/sprite/dot.json", nil)
	require.NoError(t, err)
	req.Header.Set("Accept-Encoding", "gzip")
	resp, err := http.DefaultTransport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	require.Contains(t, string(body), `"name": "dot"`)
}
