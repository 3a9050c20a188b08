package handler

import (
	"log/slog"
	"net/http"

	"contentnav/internal/config"
	importSvc "contentnav/internal/domain/services/importer"
	"contentnav/internal/httputil"
)

// multipartOverhead leaves room for form boundaries and headers around the archive
const multipartOverhead = 1 << 20

// ImportHandler handles bulk import HTTP requests.
// An import replaces every entry of the target collection.
type ImportHandler struct {
	importService importSvc.ImportService
	logger        *slog.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService importSvc.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// ImportResponse represents the response for import operations
type ImportResponse struct {
	Success bool                      `json:"success"`
	Summary importSvc.ImportSummary   `json:"summary"`
	Errors  []importSvc.ImportError   `json:"errors"`
	Entries []importSvc.ImportedEntry `json:"entries"`
}

// Import replaces a collection's entries with the files of an uploaded zip archive.
// POST /api/collections/{name}/import
//
// Form fields:
//   - file: required, zip archive
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	collection := r.PathValue("name")

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxImportSize+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Failed to parse multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer func() { _ = file.Close() }()

	h.logger.Info("starting import",
		"collection", collection,
		"file", header.Filename,
		"size", header.Size,
		"user_id", httputil.GetUserID(r),
	)

	result, err := h.importService.ImportZip(r.Context(), collection, file)
	if err != nil {
		h.logger.Error("import failed",
			"collection", collection,
			"error", err,
		)
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ImportResponse{
		Success: result.Summary.Failed == 0,
		Summary: result.Summary,
		Errors:  result.Errors,
		Entries: result.Entries,
	})
}
