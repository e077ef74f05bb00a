package category

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/category"
	"github.com/MrJamesThe3rd/cashbook/internal/http/respond"
)

type Handler struct {
	svc *category.Service
}

func NewHandler(svc *category.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes expects a cashbookID URL parameter from the parent route.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{categoryID}", h.get)
}

type categoryResponse struct {
	ID             int                `json:"id"`
	Name           string             `json:"name"`
	ShortName      string             `json:"short_name"`
	Operation      cashbook.Operation `json:"operation"`
	SingleItemOnly bool               `json:"single_item_only"`
}

func toResponse(c category.Category) categoryResponse {
	return categoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		ShortName:      c.ShortName,
		Operation:      c.Operation,
		SingleItemOnly: c.SingleItemOnly,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, err := cashbook.ParseCashbookID(chi.URLParam(r, "cashbookID"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var op *cashbook.Operation

	if s := r.URL.Query().Get("operation"); s != "" {
		parsed, err := cashbook.ParseOperation(s)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		op = &parsed
	}

	categories, err := h.svc.List(r.Context(), id, op)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := cashbook.ParseCashbookID(chi.URLParam(r, "cashbookID"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	categoryID, err := strconv.Atoi(chi.URLParam(r, "categoryID"))
	if err != nil {
		http.Error(w, "invalid category id", http.StatusBadRequest)
		return
	}

	c, err := h.svc.Find(r.Context(), id, categoryID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(c))
}
