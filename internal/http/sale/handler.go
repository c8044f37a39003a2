package sale

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Alvarenga144/InventorySuite/internal/http/middleware"
	"github.com/Alvarenga144/InventorySuite/internal/http/respond"
	"github.com/Alvarenga144/InventorySuite/internal/sale"
)

type Handler struct {
	svc *sale.Service
}

func NewHandler(svc *sale.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
}

type createSaleRequest struct {
	Lines []createLineRequest `json:"detalles"`
}

type createLineRequest struct {
	ProductID int64 `json:"idPro"`
	Quantity  int64 `json:"cantidad"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req createSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lines := make([]sale.LineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = sale.LineInput{ProductID: l.ProductID, Quantity: l.Quantity}
	}

	created, err := h.svc.CreateSale(r.Context(), identity.UserID, lines)
	if err != nil {
		var upErr *sale.UnavailableProductsError

		switch {
		case errors.Is(err, sale.ErrNoSeller):
			respond.Error(w, http.StatusUnauthorized, "user not authenticated")
		case errors.Is(err, sale.ErrNoLines), errors.Is(err, sale.ErrInvalidQuantity):
			respond.Error(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &upErr):
			respond.JSON(w, http.StatusBadRequest, map[string]any{
				"message":                "some products do not exist or are inactive",
				"productosNoEncontrados": upErr.IDs,
			})
		default:
			slog.Error("failed to create sale", "error", err, "seller_id", identity.UserID)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sale.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "sale not found")
			return
		}

		slog.Error("failed to get sale", "error", err, "id", id)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(s))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list sales", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(sales))
}
