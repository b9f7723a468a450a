package web

import (
	"html/template"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-aseprite/datafiles"
)

var (
	indexTemplate = template.Must(template.New("index").Parse(datafiles.IndexHTML))
	spriteName    = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// LoadIndexTemplate replaces the built-in listing page with the template in
// the file at path.
func (h *Handler) LoadIndexTemplate(path string) error {
	t, err := template.ParseFiles(path)
	if err != nil {
		return errors.Wrapf(err, "parsing index template %s", path)
	}
	h.index = t
	return nil
}

// spriteNames lists the sprites servable from the directory, sorted.
func (h *Handler) spriteNames() ([]string, error) {
	entries, err := os.ReadDir(h.spriteDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), spriteExt) {
			continue
		}
		if name := strings.TrimSuffix(e.Name(), spriteExt); spriteName.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	names, err := h.spriteNames()
	if err != nil {
		glog.Errorf("error listing sprites: %v", err)
		http.Error(w, "failed to list sprites", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	err = h.index.Execute(w, struct {
		Title   string
		Sprites []string
	}{
		Title:   "Sprites",
		Sprites: names,
	})
	if err != nil {
		glog.Errorf("error executing index template: %v", err)
	}
}
