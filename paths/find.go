// Package paths locates sprite datafiles in the usual places.
package paths

import (
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
)

// ReadSeekCloser is what Open returns for both local and remote files.
type ReadSeekCloser interface {
	io.ReadCloser
	io.Seeker
}

// Find locates the passed datafile shortname and returns an absolute or
// relative path to find the datafile at.
//
// For example, for "hero.aseprite" it may return
// "mybinary.runfiles/go_aseprite/datafiles/hero.aseprite".
//
// A name that already exists as given, or is an http(s) URL, is returned
// unchanged. An empty string means the file was not found.
func Find(fileName string) string {
	if isURL(fileName) {
		return fileName
	}
	for _, path := range getPossiblePaths(fileName) {
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.V(1).Infof("paths.Find(%q)=%s", fileName, path)
			return path
		}
	}

	return ""
}

// DataDir returns the first of the usual datafiles directories that exists,
// or an empty string.
func DataDir() string {
	for _, dir := range getPossiblePathDirs() {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return dir
		}
	}
	return ""
}

// Open locates the passed file in the same locations that Find would look, and
// opens it. If Find returns an empty string, an error is returned.
func Open(fileName string) (ReadSeekCloser, error) {
	path := Find(fileName)
	if path == "" {
		return nil, &os.PathError{Op: "find", Path: fileName, Err: os.ErrNotExist}
	}
	return NoFindOpen(path)
}

// NoFindOpen opens exactly the passed path or URL.
func NoFindOpen(fileName string) (ReadSeekCloser, error) {
	if isURL(fileName) {
		return openHTTP(fileName)
	}
	return os.Open(fileName)
}

func isURL(fileName string) bool {
	return strings.HasPrefix(fileName, "http://") || strings.HasPrefix(fileName, "https://")
}
