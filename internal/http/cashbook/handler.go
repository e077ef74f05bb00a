package cashbook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/cashbook/internal/auth"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/http/respond"
	"github.com/MrJamesThe3rd/cashbook/internal/importer"
)

const maxImportSize = 10 << 20

// Cashbooks opens the cashbook of an owner and resolves whose cashbook an
// id belongs to. Create returns the existing cashbook when the owner
// already has one.
type Cashbooks interface {
	Create(ctx context.Context, owner cashbook.Owner) (cashbook.CashbookID, error)
	OwnerOf(ctx context.Context, id cashbook.CashbookID) (cashbook.Owner, error)
}

type Handler struct {
	svc        *cashbook.Service
	cashbooks  Cashbooks
	authorizer cashbook.Authorizer
	importSvc  *importer.Service
}

func NewHandler(svc *cashbook.Service, cashbooks Cashbooks, authorizer cashbook.Authorizer, importSvc *importer.Service) *Handler {
	return &Handler{
		svc:        svc,
		cashbooks:  cashbooks,
		authorizer: authorizer,
		importSvc:  importSvc,
	}
}

// Routes registers the cashbook endpoints. Reads are open to any
// authenticated caller; writes require edit access to the cashbook owner.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{cashbookID}", h.get)
	r.With(h.requireEditor).Post("/{cashbookID}/import", h.importChits)

	r.Route("/{cashbookID}/chits", func(r chi.Router) {
		r.Get("/{chitID}", h.getChit)

		r.Group(func(r chi.Router) {
			r.Use(h.requireEditor)
			r.Post("/", h.addChit)
			r.Put("/{chitID}", h.updateChit)
			r.Delete("/{chitID}", h.removeChit)
			r.Post("/{chitID}/lock", h.lockChit)
			r.Post("/{chitID}/unlock", h.unlockChit)
		})
	})
}

// requireEditor lets the request through only when the user may edit the
// owner of the cashbook in the path.
func (h *Handler) requireEditor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := cashbookID(r)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		owner, err := h.cashbooks.OwnerOf(r.Context(), id)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		if err := h.authorize(r.Context(), owner); err != nil {
			respond.Error(w, r, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) authorize(ctx context.Context, owner cashbook.Owner) error {
	user, err := auth.UserID(ctx)
	if err != nil {
		return err
	}

	allowed, err := h.authorizer.CanEdit(ctx, user, owner)
	if err != nil {
		return fmt.Errorf("checking access to %s: %w", owner, err)
	}

	if !allowed {
		return fmt.Errorf("%s: %w", owner, cashbook.ErrForbidden)
	}

	return nil
}

// MoveRoutes registers the endpoints working across cashbooks.
func (h *Handler) MoveRoutes(r chi.Router) {
	r.Post("/move", h.moveChits)
}

type createRequest struct {
	OwnerType cashbook.Type `json:"owner_type"`
	OwnerID   int           `json:"owner_id"`
}

type itemRequest struct {
	Amount     string `json:"amount"`
	CategoryID int    `json:"category_id"`
	Operation  string `json:"operation"`
	Purpose    string `json:"purpose"`
}

type chitRequest struct {
	Number        *string       `json:"number"`
	Date          string        `json:"date"`
	Recipient     *string       `json:"recipient"`
	PaymentMethod string        `json:"payment_method"`
	Items         []itemRequest `json:"items"`
}

type ownerRequest struct {
	Type cashbook.Type `json:"type"`
	ID   int           `json:"id"`
}

type moveRequest struct {
	Source  ownerRequest      `json:"source"`
	Target  ownerRequest      `json:"target"`
	ChitIDs []cashbook.ChitID `json:"chit_ids"`
}

func (req chitRequest) toInput() (cashbook.ChitInput, error) {
	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		return cashbook.ChitInput{}, fmt.Errorf("%w: date %q", cashbook.ErrInvalidArgument, req.Date)
	}

	var number *cashbook.ChitNumber
	if req.Number != nil && *req.Number != "" {
		n, err := cashbook.NewChitNumber(*req.Number)
		if err != nil {
			return cashbook.ChitInput{}, err
		}

		number = &n
	}

	var recipient *cashbook.Recipient
	if req.Recipient != nil && *req.Recipient != "" {
		rc, err := cashbook.NewRecipient(*req.Recipient)
		if err != nil {
			return cashbook.ChitInput{}, err
		}

		recipient = &rc
	}

	method, err := cashbook.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return cashbook.ChitInput{}, err
	}

	items := make([]cashbook.ItemInput, len(req.Items))

	for i, item := range req.Items {
		amount, err := cashbook.NewAmount(item.Amount)
		if err != nil {
			return cashbook.ChitInput{}, fmt.Errorf("item %d: %w", i+1, err)
		}

		var op cashbook.Operation
		if item.Operation != "" {
			if op, err = cashbook.ParseOperation(item.Operation); err != nil {
				return cashbook.ChitInput{}, fmt.Errorf("item %d: %w", i+1, err)
			}
		}

		items[i] = cashbook.ItemInput{
			Amount:     amount,
			CategoryID: item.CategoryID,
			Operation:  op,
			Purpose:    item.Purpose,
		}
	}

	return cashbook.ChitInput{
		Body:   cashbook.NewChitBody(number, date, recipient),
		Method: method,
		Items:  items,
	}, nil
}

func cashbookID(r *http.Request) (cashbook.CashbookID, error) {
	return cashbook.ParseCashbookID(chi.URLParam(r, "cashbookID"))
}

func chitID(r *http.Request) (cashbook.ChitID, error) {
	s := chi.URLParam(r, "chitID")

	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: chit id %q", cashbook.ErrInvalidArgument, s)
	}

	return cashbook.ChitID(id), nil
}

func chitPath(r *http.Request) (cashbook.CashbookID, cashbook.ChitID, error) {
	cbID, err := cashbookID(r)
	if err != nil {
		return cashbook.CashbookID{}, 0, err
	}

	id, err := chitID(r)
	if err != nil {
		return cashbook.CashbookID{}, 0, err
	}

	return cbID, id, nil
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	owner := cashbook.Owner{Type: req.OwnerType, ID: req.OwnerID}
	if !owner.Type.Valid() {
		respond.Error(w, r, fmt.Errorf("%w: unknown owner type %q", cashbook.ErrInvalidArgument, owner.Type))
		return
	}

	if err := h.authorize(r.Context(), owner); err != nil {
		respond.Error(w, r, err)
		return
	}

	id, err := h.cashbooks.Create(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, createResponse{ID: id.String()})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := cashbookID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	cb, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(cb))
}

func (h *Handler) getChit(w http.ResponseWriter, r *http.Request) {
	cbID, id, err := chitPath(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	chit, err := h.svc.FindChit(r.Context(), cbID, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toChitResponse(chit))
}

func (h *Handler) addChit(w http.ResponseWriter, r *http.Request) {
	id, err := cashbookID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req chitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.svc.AddChit(r.Context(), cashbook.AddChitToCashbook{
		CashbookID: id,
		Body:       input.Body,
		Method:     input.Method,
		Items:      input.Items,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, chitResultResponse{
		ChitID:          result.ChitID,
		NegativeBalance: result.NegativeBalance,
	})
}

func (h *Handler) updateChit(w http.ResponseWriter, r *http.Request) {
	cbID, id, err := chitPath(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req chitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	result, err := h.svc.UpdateChit(r.Context(), cashbook.UpdateChit{
		CashbookID: cbID,
		ChitID:     id,
		Body:       input.Body,
		Method:     input.Method,
		Items:      input.Items,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, chitResultResponse{
		ChitID:          result.ChitID,
		NegativeBalance: result.NegativeBalance,
	})
}

func (h *Handler) removeChit(w http.ResponseWriter, r *http.Request) {
	cbID, id, err := chitPath(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	err = h.svc.RemoveChit(r.Context(), cashbook.RemoveChitFromCashbook{CashbookID: cbID, ChitID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lockChit(w http.ResponseWriter, r *http.Request) {
	cbID, id, err := chitPath(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	user, err := auth.UserID(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	err = h.svc.LockChit(r.Context(), cashbook.LockChit{CashbookID: cbID, ChitID: id, UserID: user})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unlockChit(w http.ResponseWriter, r *http.Request) {
	cbID, id, err := chitPath(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	err = h.svc.UnlockChit(r.Context(), cashbook.UnlockChit{CashbookID: cbID, ChitID: id})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveChits(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := auth.UserID(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	err = h.svc.MoveChits(r.Context(), cashbook.MoveChitsBetweenCashbooks{
		Source:  cashbook.Owner{Type: req.Source.Type, ID: req.Source.ID},
		Target:  cashbook.Owner{Type: req.Target.Type, ID: req.Target.ID},
		ChitIDs: req.ChitIDs,
		UserID:  user,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) importChits(w http.ResponseWriter, r *http.Request) {
	id, err := cashbookID(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	inputs, err := h.importSvc.Import(importer.Format(r.FormValue("format")), r.FormValue("charset"), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ids, err := h.svc.ImportChits(r.Context(), id, inputs)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{Imported: len(ids), ChitIDs: ids})
}
