package paths

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-aseprite/ttesting"
)

func TestFindInDataDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hero.aseprite"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASEPRITE_DATA", dir)

	ttesting.AssertEqualString(t, "found in $ASEPRITE_DATA", Find("hero.aseprite"), filepath.Join(dir, "hero.aseprite"))
	ttesting.AssertEqualString(t, "missing file", Find("nope.aseprite"), "")

	f, err := Open("hero.aseprite")
	if err != nil {
		t.Fatalf("failed to open: %v", err)
	}
	f.Close()

	if _, err := Open("nope.aseprite"); !os.IsNotExist(err) {
		t.Errorf("got %v; want not-exist", err)
	}
}

func TestDataDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ASEPRITE_DATA", dir)
	ttesting.AssertEqualString(t, "$ASEPRITE_DATA wins", DataDir(), dir)

	t.Setenv("ASEPRITE_DATA", filepath.Join(dir, "missing"))
	if got := DataDir(); got == filepath.Join(dir, "missing") {
		t.Errorf("DataDir returned a directory that does not exist")
	}
}

func TestOpenHTTP(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path != "/hero.aseprite" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("sprite"))
	}))
	defer srv.Close()

	for i := 0; i < 2; i++ {
		f, err := Open(srv.URL + "/hero.aseprite")
		if err != nil {
			t.Fatalf("failed to open: %v", err)
		}
		b, _ := io.ReadAll(f)
		f.Close()
		ttesting.AssertEqualString(t, "body", string(b), "sprite")
	}
	ttesting.AssertEqualInt(t, "fetched once", hits, 1)

	if _, err := Open(srv.URL + "/missing"); err == nil {
		t.Errorf("opening a 404 succeeded")
	}
}

func TestSetupFilePathFlag(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hero.aseprite"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASEPRITE_DATA", dir)

	var path string
	SetupFilePathFlag("hero.aseprite", "test_hero_path", &path)
	ttesting.AssertEqualString(t, "flag default", path, filepath.Join(dir, "hero.aseprite"))
}
