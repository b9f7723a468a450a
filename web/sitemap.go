package web

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

type sitemapChangeFreq int

const (
	sitemapChangeFreqUnspecified sitemapChangeFreq = iota
	sitemapChangeFreqDaily
	sitemapChangeFreqWeekly
)

func (s sitemapChangeFreq) MarshalText() ([]byte, error) {
	switch s {
	case sitemapChangeFreqDaily:
		return []byte("daily"), nil
	case sitemapChangeFreqWeekly:
		return []byte("weekly"), nil
	}
	return nil, nil
}

type sitemapURLImage struct {
	Loc string `xml:"image:loc"` // image is the namespace 'http://www.google.com/schemas/sitemap-image/1.1'
}

type sitemapURL struct {
	XMLName    xml.Name          `xml:"url"`
	Loc        string            `xml:"loc"`
	LastMod    string            `xml:"lastmod,omitempty"`
	ChangeFreq sitemapChangeFreq `xml:"changefreq,omitempty"`

	Image []sitemapURLImage `xml:"image:image,omitempty"`
}

type sitemapURLSet struct {
	XMLName    xml.Name     `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	XMLNSImage string       `xml:"xmlns:image,attr"`
	URL        []sitemapURL `xml:"url,omitempty"` // up to 50k entries
}

func (e *sitemapURLSet) write(w http.ResponseWriter) {
	e.XMLNSImage = "http://www.google.com/schemas/sitemap-image/1.1"

	w.Header().Set("Content-Type", "application/xml")
	fmt.Fprintf(w, "%s", xml.Header)
	enc := xml.NewEncoder(w)
	enc.Indent("", " ")
	if err := enc.Encode(e); err != nil {
		glog.Errorf("error encoding sitemap: %v", err)
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// sitemapHandler lists every sprite's JSON view with its animation attached
// as the page image.
func (h *Handler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	names, err := h.spriteNames()
	if err != nil {
		glog.Errorf("error listing sprites: %v", err)
		http.Error(w, "<error>could not list sprites</error>", http.StatusInternalServerError)
		return
	}

	base := baseURL(r)
	set := &sitemapURLSet{}
	for _, name := range names {
		u := sitemapURL{
			Loc:        base + "/sprite/" + name + ".json",
			ChangeFreq: sitemapChangeFreqWeekly,
			Image:      []sitemapURLImage{{Loc: base + "/sprite/" + name + ".gif"}},
		}
		if s, err := os.Stat(filepath.Join(h.spriteDir, name+spriteExt)); err == nil {
			u.LastMod = s.ModTime().UTC().Format("2006-01-02")
		}
		set.URL = append(set.URL, u)
	}
	set.write(w)
}
