package v1

import (
	"net/http"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

type UploadsResponse struct {
	Uploads    []*domain.Upload `json:"uploads"`
	Pagination Pagination       `json:"pagination"`
}

func (h *Handler) Uploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	uploads, total, err := h.uploads.Uploads(r.Context(), limit, (page-1)*limit)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	if uploads == nil {
		uploads = []*domain.Upload{}
	}

	writeJSON(w, http.StatusOK, UploadsResponse{
		Uploads:    uploads,
		Pagination: newPagination(page, limit, total),
	})
}
