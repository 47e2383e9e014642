package v1

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const uploadField = "file"

type UploadResponse struct {
	Message      string `json:"message"`
	RecordsAdded int    `json:"records_added"`
	Parsed       int    `json:"parsed"`
	Duplicates   int    `json:"duplicates"`
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	id, _ := domain.IdentityFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadSize)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			writeMessage(w, http.StatusBadRequest, "No file uploaded")
			return
		}

		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("Invalid upload: %v", err))
		return
	}
	defer file.Close()

	result, err := h.ingester.Ingest(r.Context(), id, domain.SourceHTTP, header.Filename, file)
	if err != nil {
		h.writeIngestError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:      result.Message(),
		RecordsAdded: result.RecordsAdded,
		Parsed:       result.Parsed,
		Duplicates:   result.Duplicates,
	})
}

func (h *Handler) writeIngestError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		transportErr *domain.TransportError
		formatErr    *domain.FormatError
		schemaErr    *domain.SchemaError
		storeErr     *domain.StoreError
	)

	switch {
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	case errors.As(err, &transportErr), errors.As(err, &formatErr), errors.As(err, &schemaErr):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &storeErr):
		writeMessage(w, http.StatusInternalServerError, "Error processing file: "+storeErr.Error())
	default:
		h.log.ErrorContext(r.Context(), "unexpected ingestion error", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Error processing file: "+err.Error())
	}
}
