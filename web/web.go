// Package web embeds the static marketing site, including the quote
// form client, so the binary serves the whole site on its own.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var content embed.FS

// Handler serves the embedded site.
func Handler() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		// Static assets are compiled in; a failure here is a build defect.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
