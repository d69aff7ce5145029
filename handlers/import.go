// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/danielhkuo/prizedraw/cliparse"
	"github.com/danielhkuo/prizedraw/middleware"
	"github.com/danielhkuo/prizedraw/models"
	"github.com/danielhkuo/prizedraw/roster"
)

// maxUploadBytes caps roster uploads; registration exports are small.
const maxUploadBytes = 10 << 20

type ImportHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewImportHandler(db *sql.DB, cfg cliparse.Config) *ImportHandler {
	return &ImportHandler{db: db, cfg: cfg}
}

// Upload handles POST /import
// Accepts a multipart form with a "csvfile" field, stores the file
// under the configured upload directory, and runs the roster import.
func (h *ImportHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("csvfile")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file part")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No selected file")
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid file type, please upload a CSV file")
		return
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		slog.Error("failed to create upload directory", "error", err, "dir", h.cfg.UploadDir)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	// Never trust the client's filename for the on-disk name.
	savePath := filepath.Join(h.cfg.UploadDir, uuid.NewString()+".csv")
	dst, err := os.Create(savePath)
	if err != nil {
		slog.Error("failed to create upload file", "error", err, "path", savePath)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		slog.Error("failed to write upload file", "error", err, "path", savePath)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	if err := dst.Close(); err != nil {
		slog.Error("failed to close upload file", "error", err, "path", savePath)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}

	res, err := roster.ImportFile(h.db, savePath)
	if err != nil {
		slog.Error("roster import failed", "error", err, "path", savePath)
		middleware.ErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Error importing CSV: %v", err))
		return
	}

	slog.Info("roster imported",
		"file", header.Filename,
		"added", res.Added,
		"updated", res.Updated,
		"skipped", res.Skipped,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ImportResponse{
		Added:   res.Added,
		Updated: res.Updated,
		Skipped: res.Skipped,
		Message: fmt.Sprintf(
			"Successfully added %d members and updated %d members. Skipped %d (non-members/missing data)",
			res.Added, res.Updated, res.Skipped,
		),
	})
}
