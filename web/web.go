// Package web serves the embedded browser client.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Handler returns an http.Handler serving the embedded client assets.
// Unknown paths fall through to the file server's 404; the client is a
// single page so only the root and asset paths exist.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The subtree is embedded at compile time; failure here means the
		// binary itself is broken.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
