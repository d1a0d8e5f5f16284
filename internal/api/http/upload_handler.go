package http

import (
	"io"
	"net/http"
	"path/filepath"

	"donorlink-backend/internal/logger"
	"donorlink-backend/internal/storage"

	"github.com/gorilla/mux"
)

// UploadHandler stores donation images and serves them back.
type UploadHandler struct {
	store       storage.Storage
	maxFileSize int64
}

func NewUploadHandler(store storage.Storage, maxFileSizeMB int64) *UploadHandler {
	return &UploadHandler{
		store:       store,
		maxFileSize: maxFileSizeMB << 20,
	}
}

// Upload accepts a multipart form with one or more "images" parts and
// returns the stored paths in submission order.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeMessage(w, http.StatusBadRequest, "No files provided")
		return
	}

	var stored []string
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "Unreadable file in upload")
			return
		}

		path, err := h.store.Save(header.Filename, f)
		f.Close()
		if err != nil {
			logger.Error("Failed to store upload", "filename", header.Filename, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Upload failed")
			return
		}
		stored = append(stored, path)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"files":   stored,
		"message": "Files uploaded successfully",
	})
}

// Serve streams a stored file back to the browser.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["file"]
	f, err := h.store.Open(name)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "File not found")
		return
	}
	defer f.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(name) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, f)
}
