package report

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Alvarenga144/InventorySuite/internal/export"
	"github.com/Alvarenga144/InventorySuite/internal/http/respond"
	"github.com/Alvarenga144/InventorySuite/internal/report"
	"github.com/Alvarenga144/InventorySuite/internal/user"
)

type Handler struct {
	reports *report.Service
	users   *user.Service
	exports *export.Service
}

func NewHandler(reports *report.Service, users *user.Service, exports *export.Service) *Handler {
	return &Handler{reports: reports, users: users, exports: exports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/ventas", h.salesReport)
	r.Get("/ventas/export", h.exportSalesReport)
	r.Get("/vendedores", h.sellers)
}

// sellerFilter parses the optional vendedorId query parameter.
func sellerFilter(r *http.Request) (*uuid.UUID, error) {
	raw := r.URL.Query().Get("vendedorId")
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) (*report.Report, bool) {
	filter, err := sellerFilter(r)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid vendedorId")
		return nil, false
	}

	rep, err := h.reports.Get(r.Context(), filter)
	if err != nil {
		if errors.Is(err, report.ErrUnknownSeller) {
			respond.Error(w, http.StatusBadRequest, "seller does not exist")
			return nil, false
		}

		slog.Error("failed to build sales report", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return nil, false
	}

	return rep, true
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.getReport(w, r)
	if !ok {
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rep))
}

func (h *Handler) exportSalesReport(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.getReport(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="reporte_ventas.xlsx"`)

	if err := h.exports.WriteXLSX(rep, w); err != nil {
		// Headers are already written; all we can do is log.
		slog.Error("failed to write report workbook", "error", err)
	}
}

func (h *Handler) sellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.users.ListSellers(r.Context())
	if err != nil {
		slog.Error("failed to list sellers", "error", err)
		respond.Error(w, http.StatusInternalServerError, "internal error")

		return
	}

	resp := make([]sellerResponse, len(sellers))
	for i, s := range sellers {
		resp[i] = sellerResponse{ID: s.ID, DisplayName: s.DisplayName, Email: s.Email}
	}

	respond.JSON(w, http.StatusOK, resp)
}
