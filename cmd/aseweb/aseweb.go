// Command aseweb serves a directory of .aseprite files as JSON, PNG and GIF.
package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/net/netutil"
	_ "golang.org/x/net/trace"

	"badc0de.net/pkg/go-aseprite/paths"
	"badc0de.net/pkg/go-aseprite/web"
)

var (
	listenAddress  = flag.String("listen_address", ":8080", "http listen address for aseweb")
	maxConns       = flag.Int("max_conns", 64, "maximum simultaneous connections; 0 for no limit")
	debugWebServer = flag.String("debug_web_server_listen_address", "", "where the debug server will listen")
	spriteDir      = flag.String("sprite_dir", paths.DataDir(), "directory holding the .aseprite files to serve")

	indexHTMLPath string
)

func newRouter(dir, indexHTML string) (http.Handler, error) {
	h := web.NewHandler(dir)
	if indexHTML != "" {
		if err := h.LoadIndexTemplate(indexHTML); err != nil {
			return nil, err
		}
	}
	r := mux.NewRouter()
	h.RegisterRoutes(r)
	return handlers.CompressHandler(handlers.CombinedLoggingHandler(os.Stderr, r)), nil
}

func main() {
	paths.SetupFilePathFlag("index.html", "index_html_path", &indexHTMLPath)
	flagutil.Parse()

	if *spriteDir == "" {
		glog.Exit("-sprite_dir not given and no datafiles directory found")
	}
	glog.Infof("serving sprites from %s", *spriteDir)

	if *debugWebServer != "" {
		http.HandleFunc("/debug/minimetrics", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "runtime.NumGoroutine(): %d\n", runtime.NumGoroutine())
		})
		go http.ListenAndServe(*debugWebServer, nil)
	}

	router, err := newRouter(*spriteDir, indexHTMLPath)
	if err != nil {
		glog.Exit(err)
	}

	l, err := net.Listen("tcp", *listenAddress)
	if err != nil {
		glog.Fatal(err)
	}
	if *maxConns > 0 {
		l = netutil.LimitListener(l, *maxConns)
	}
	glog.Fatal(http.Serve(l, router))
}
