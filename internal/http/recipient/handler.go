package recipient

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cashbook/internal/http/respond"
	"github.com/MrJamesThe3rd/cashbook/internal/recipient"
)

type Handler struct {
	svc *recipient.Service
}

func NewHandler(svc *recipient.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects a unitID URL parameter from the parent route.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.suggest)
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	unitID, err := strconv.Atoi(chi.URLParam(r, "unitID"))
	if err != nil {
		http.Error(w, "invalid unit id", http.StatusBadRequest)
		return
	}

	names, err := h.svc.Suggest(r.Context(), unitID, r.URL.Query().Get("q"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, names)
}
