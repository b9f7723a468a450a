// Package web serves decoded sprites over HTTP.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-aseprite/ase"
)

// bump if the way responses are generated changes
const generation = 1

const spriteExt = ".aseprite"

type cachedSprite struct {
	modTime time.Time
	size    int64
	doc     *ase.Document
}

type Handler struct {
	spriteDir string
	index     *template.Template

	cacheLock sync.Mutex
	cache     map[string]*cachedSprite
}

// NewHandler constructs a web handler serving the .aseprite files found
// directly inside spriteDir.
func NewHandler(spriteDir string) *Handler {
	return &Handler{
		spriteDir: spriteDir,
		index:     indexTemplate,
		cache:     make(map[string]*cachedSprite),
	}
}

// load returns the decoded sprite called name, decoding it again only if the
// file changed since it was last seen.
func (h *Handler) load(name string) (*ase.Document, time.Time, error) {
	path := filepath.Join(h.spriteDir, name+spriteExt)
	s, err := os.Stat(path)
	if err != nil {
		return nil, time.Time{}, err
	}

	h.cacheLock.Lock()
	defer h.cacheLock.Unlock()

	if c, ok := h.cache[name]; ok && c.modTime.Equal(s.ModTime()) && c.size == s.Size() {
		return c.doc, c.modTime, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	doc, err := ase.DecodeBytes(buf)
	if err != nil {
		return nil, time.Time{}, errors.Wrapf(err, "decoding %s", name)
	}
	glog.V(1).Infof("decoded sprite %s: %d frames, %d layers", name, len(doc.Frames), len(doc.Layers))
	h.cache[name] = &cachedSprite{modTime: s.ModTime(), size: s.Size(), doc: doc}
	return doc, s.ModTime(), nil
}

// loadOrFail loads the sprite named in the route, writing the error response
// itself if that fails.
func (h *Handler) loadOrFail(w http.ResponseWriter, r *http.Request) (string, *ase.Document, time.Time, bool) {
	name := mux.Vars(r)["name"]
	doc, modTime, err := h.load(name)
	if os.IsNotExist(err) {
		http.Error(w, "no such sprite", http.StatusNotFound)
		return "", nil, time.Time{}, false
	}
	if err != nil {
		glog.Errorf("error loading sprite: %v", err)
		http.Error(w, "failed to decode sprite", http.StatusInternalServerError)
		return "", nil, time.Time{}, false
	}
	return name, doc, modTime, true
}

// notModified sets the caching headers and, if the client already holds etag,
// answers with 304 and reports true.
func notModified(w http.ResponseWriter, r *http.Request, etag string, modTime time.Time) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func spriteETag(kind, name string, modTime time.Time, variant string, mime string) string {
	return fmt.Sprintf(`W/"%s:%d:%s:%x:%s:%s"`, kind, generation, name, modTime.UnixNano(), variant, mime)
}

func writePNG(w http.ResponseWriter, img image.Image) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if err := png.Encode(w, img); err != nil {
		glog.Errorf("error encoding png: %v", err)
	}
}

func pngDataURL(img image.Image) (string, error) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return "", err
	}
	return dataurl.New(buf.Bytes(), "image/png").String(), nil
}

func (h *Handler) frameHandler(w http.ResponseWriter, r *http.Request) {
	name, doc, modTime, ok := h.loadOrFail(w, r)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(mux.Vars(r)["idx"])
	if err != nil || idx >= len(doc.Frames) {
		http.Error(w, "no such frame", http.StatusNotFound)
		return
	}

	etag := spriteETag("frame", name, modTime, strconv.Itoa(idx), "image/png")
	if notModified(w, r, etag, modTime) {
		return
	}

	img, err := doc.FrameImage(ase.FrameIndex(idx))
	if err != nil {
		glog.Errorf("error rendering %s frame %d: %v", name, idx, err)
		http.Error(w, "failed to render frame", http.StatusInternalServerError)
		return
	}
	writePNG(w, img)
}

func (h *Handler) celHandler(w http.ResponseWriter, r *http.Request) {
	name, doc, modTime, ok := h.loadOrFail(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	frame, errF := strconv.Atoi(vars["frame"])
	layer, errL := strconv.Atoi(vars["layer"])
	if errF != nil || errL != nil {
		http.Error(w, "frame and layer must be numbers", http.StatusBadRequest)
		return
	}
	ci, ok := doc.FrameCel(ase.FrameIndex(frame), ase.LayerIndex(layer))
	if !ok {
		http.Error(w, "no cel there", http.StatusNotFound)
		return
	}

	etag := spriteETag("cel", name, modTime, fmt.Sprintf("%d.%d", frame, layer), "image/png")
	if notModified(w, r, etag, modTime) {
		return
	}

	img, err := doc.CelImage(ci)
	if err != nil {
		glog.Errorf("error rendering %s cel %d/%d: %v", name, frame, layer, err)
		http.Error(w, "failed to render cel", http.StatusInternalServerError)
		return
	}
	writePNG(w, img)
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.indexHandler).Methods(http.MethodGet)
	r.HandleFunc("/sitemap.xml", h.sitemapHandler).Methods(http.MethodGet)
	r.HandleFunc("/sprite/{name:[A-Za-z0-9_-]+}.json", h.jsonHandler).Methods(http.MethodGet)
	r.HandleFunc("/sprite/{name:[A-Za-z0-9_-]+}.gif", h.gifHandler).Methods(http.MethodGet)
	r.HandleFunc("/sprite/{name:[A-Za-z0-9_-]+}/frame/{idx:[0-9]+}.png", h.frameHandler).Methods(http.MethodGet)
	r.HandleFunc("/sprite/{name:[A-Za-z0-9_-]+}/cel/{frame:[0-9]+}/{layer:[0-9]+}.png", h.celHandler).Methods(http.MethodGet)
}
