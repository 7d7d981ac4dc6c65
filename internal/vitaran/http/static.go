package http

import (
	"io/fs"
	"net/http"
)

// indexPage is served for "/".
const indexPage = "login.html"

// StaticHandler serves the browser pages in fsys. The site root shows the
// login page rather than a directory listing.
func StaticHandler(fsys fs.FS) http.Handler {
	files := http.FileServerFS(fsys)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.ServeFileFS(w, r, fsys, indexPage)
			return
		}
		files.ServeHTTP(w, r)
	})
}
