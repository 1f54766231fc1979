package handler

import (
	"io"
	"net/http"

	"github.com/velarium/scriptorium/internal/logger"
	"github.com/velarium/scriptorium/internal/progression"
)

// maxBackupBytes caps import payload size
const maxBackupBytes = 4 << 20

// HandleExportBackup returns the reduced-shape backup envelope
func HandleExportBackup(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		export, err := svc.ExportBackup(r.Context())
		if err != nil {
			respondServiceError(w, err)
			return
		}
		w.Header().Set("Content-Disposition", `attachment; filename="scriptorium-backup.json"`)
		respondJSON(w, http.StatusOK, export)
	}
}

// HandleImportBackup merges a backup payload into the live state. The
// result is always a {success, error} body; a rejected import answers 400
// but the live state stays exactly as it was.
func HandleImportBackup(svc progression.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		data, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
		if err != nil {
			log.Error("Failed to read backup payload", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		result := svc.ImportBackup(r.Context(), data)
		status := http.StatusOK
		if !result.Success {
			status = http.StatusBadRequest
		}
		respondJSON(w, status, result)
	}
}
