package web

import (
	"net/http"
	"path"
)

// staticFiles serves GET and HEAD requests from dir. Anything it cannot
// answer with a file goes to fallback. Directories are served only when they
// hold an index.html.
func staticFiles(dir string, fallback http.Handler) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			fallback.ServeHTTP(w, r)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		if !exists(root, name) {
			fallback.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

func exists(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := root.Open(path.Join(name, "index.html"))
	if err != nil {
		return false
	}
	_ = index.Close()
	return true
}
