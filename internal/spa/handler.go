// Package spa serves the single-page application's static files. Paths that
// don't name a file get index.html instead, so client-side routing can take
// over; only a broken static root produces a server error.
package spa

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"syscall"

	"github.com/osse101/cardtable/internal/logger"
	"github.com/osse101/cardtable/internal/metrics"
)

// Handler serves files from root with index.html fallback. It holds no
// mutable state and never caches file contents.
type Handler struct {
	root fs.FS
}

// NewHandler serves from any file system (tests use fstest.MapFS)
func NewHandler(root fs.FS) *Handler {
	return &Handler{root: root}
}

// NewDirHandler serves from a directory on disk
func NewDirHandler(dir string) *Handler {
	return NewHandler(os.DirFS(dir))
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", AllowedMethods)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	err := h.serveFile(w, r, fileName(r.URL.Path))
	switch {
	case err == nil:
		metrics.StaticFilesServed.Inc()
	case isNotFound(err):
		h.serveIndex(w, r)
	default:
		logger.FromContext(r.Context()).Error(LogMsgServeFailed, "path", r.URL.Path, "error", err)
		metrics.StaticErrors.WithLabelValues(metrics.ReasonLookupFailed).Inc()
		http.Error(w, BodyErrorPrefix+err.Error(), http.StatusInternalServerError)
	}
}

// CheckHealth reports whether the fallback page can be served
func (h *Handler) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fs.Stat(h.root, IndexFile); err != nil {
		return fmt.Errorf("static root: %w", err)
	}
	return nil
}

// serveFile writes the named file. Nothing is written when an error is returned.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, name string) error {
	f, info, err := h.open(name)
	if err != nil {
		return err
	}
	if info.IsDir() {
		f.Close()
		f, info, err = h.open(path.Join(name, IndexFile))
		if err != nil {
			return err
		}
		if info.IsDir() {
			f.Close()
			return fs.ErrNotExist
		}
	}
	defer f.Close()

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return err
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), content)
	return nil
}

func (h *Handler) open(name string) (fs.File, fs.FileInfo, error) {
	f, err := h.root.Open(name)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, info, nil
}

// serveIndex answers 200 with index.html, or 500 when it can't be read
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	content, err := fs.ReadFile(h.root, IndexFile)
	if err != nil {
		log.Error(LogMsgIndexUnreadable, "error", err)
		metrics.StaticErrors.WithLabelValues(metrics.ReasonIndexUnreadable).Inc()
		http.Error(w, BodyIndexNotFound, http.StatusInternalServerError)
		return
	}

	log.Debug(LogMsgFallback, "path", r.URL.Path)
	metrics.SPAFallbacks.Inc()

	w.Header().Set("Content-Type", ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(content); err != nil {
		log.Error(LogMsgServeFailed, "error", err)
	}
}

// fileName maps a URL path to an fs.FS name. Cleaning against "/" keeps
// ".." segments inside the root.
func fileName(urlPath string) string {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return "."
	}
	return name
}

// isNotFound treats missing files, paths through a regular file and names
// the file system refuses as "no such file".
func isNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrInvalid) ||
		errors.Is(err, syscall.ENOTDIR)
}
