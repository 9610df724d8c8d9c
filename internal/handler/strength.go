package handler

import (
	"net/http"

	"github.com/passadmin/passadmin-go/internal/model"
	"github.com/passadmin/passadmin-go/internal/service"
)

// StrengthHandler handles HTTP requests for password strength checks.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleStrength handles POST /api/v1/strength requests.
func (h *StrengthHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	writeJSON(w, http.StatusOK, h.service.Check(req))
}
