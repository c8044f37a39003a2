package product

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/http/respond"
	"github.com/Alvarenga144/InventorySuite/internal/product"
)

type Handler struct {
	svc *product.Service
}

func NewHandler(svc *product.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type productRequest struct {
	Name  string          `json:"producto"`
	Price decimal.Decimal `json:"precio"`
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list products", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(products))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "product not found")
			return
		}

		slog.Error("failed to get product", "error", err, "id", id)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Create(r.Context(), req.Name, req.Price)
	if err != nil {
		if isValidationErr(err) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		slog.Error("failed to create product", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.svc.Update(r.Context(), id, req.Name, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "product not found")
		case isValidationErr(err):
			respond.Error(w, http.StatusBadRequest, err.Error())
		default:
			slog.Error("failed to update product", "error", err, "id", id)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "product not found")
		case errors.Is(err, product.ErrInUse):
			respond.Error(w, http.StatusConflict, "product has associated sales and cannot be deleted")
		default:
			slog.Error("failed to delete product", "error", err, "id", id)
			respond.Error(w, http.StatusInternalServerError, "internal error")
		}

		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "product deleted"})
}

func isValidationErr(err error) bool {
	return errors.Is(err, product.ErrNameRequired) ||
		errors.Is(err, product.ErrNameTooLong) ||
		errors.Is(err, product.ErrPriceInvalid)
}
