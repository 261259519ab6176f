package http

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/storage"
)

// FileHandler serves files saved by the local storage backend. Firebase
// deployments never register it, clients fetch straight from the bucket.
type FileHandler struct {
	localStore *storage.LocalStorage
}

func NewFileHandler(localStore *storage.LocalStorage) *FileHandler {
	return &FileHandler{localStore: localStore}
}

func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" || strings.Contains(key, "..") {
		writeError(w, http.StatusBadRequest, "invalid key")
		return
	}

	file, err := h.localStore.Open(key)
	if err != nil {
		writeError(w, http.StatusNotFound, "file not found")
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	case ".pdf":
		contentType = "application/pdf"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.Copy(w, file); err != nil {
		// The status line is already on the wire, so all we can do is log.
		logger.Error("failed to stream file", "key", key, "error", err)
	}
}
