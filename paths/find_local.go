package paths

import (
	"os"
	"path/filepath"
)

// getPossiblePathDirs lists the directories searched for datafiles, in
// order of preference.
func getPossiblePathDirs() []string {
	var dirs []string
	if d := os.Getenv("ASEPRITE_DATA"); d != "" {
		dirs = append(dirs, d)
	}
	if gopath := os.Getenv("GOPATH"); gopath != "" {
		dirs = append(dirs, filepath.Join(gopath, "src/badc0de.net/pkg/go-aseprite/datafiles"))
	}
	if d := os.Getenv("TEST_SRCDIR"); d != "" {
		dirs = append(dirs, filepath.Join(d, "go_aseprite/datafiles"))
	}
	dirs = append(dirs,
		"datafiles",
		os.Args[0]+".runfiles/go_aseprite/datafiles",
	)
	return dirs
}

// getPossiblePaths returns every candidate location for fileName, starting
// with the name itself.
func getPossiblePaths(fileName string) []string {
	paths := []string{fileName}
	if filepath.IsAbs(fileName) {
		return paths
	}
	for _, dir := range getPossiblePathDirs() {
		paths = append(paths, filepath.Join(dir, fileName))
	}
	return paths
}
