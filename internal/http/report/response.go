package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/report"
)

type reportResponse struct {
	Sales   []saleResponse  `json:"ventas"`
	Summary summaryResponse `json:"resumen"`
}

type saleResponse struct {
	SaleID      int64            `json:"idVenta"`
	Date        time.Time        `json:"fecha"`
	Total       decimal.Decimal  `json:"total"`
	SellerID    uuid.UUID        `json:"vendedorId"`
	SellerName  string           `json:"nombreVendedor"`
	SellerEmail string           `json:"emailVendedor"`
	Details     []detailResponse `json:"detalles"`
}

type detailResponse struct {
	LineID      int64           `json:"idDetalle"`
	ProductID   int64           `json:"idProducto"`
	ProductName string          `json:"nombreProducto"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precioUnitario"`
	Tax         decimal.Decimal `json:"iva"`
	LineTotal   decimal.Decimal `json:"totalDetalle"`
}

type summaryResponse struct {
	SaleCount   int64           `json:"totalVentas"`
	TotalAmount decimal.Decimal `json:"montoTotal"`
	TotalTax    decimal.Decimal `json:"ivaTotal"`
	ItemsSold   int64           `json:"totalProductosVendidos"`
}

type sellerResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"nombreCompleto"`
	Email       string    `json:"email"`
}

func toResponse(rep *report.Report) reportResponse {
	resp := reportResponse{
		Sales: make([]saleResponse, len(rep.Sales)),
		Summary: summaryResponse{
			SaleCount:   rep.Summary.SaleCount,
			TotalAmount: rep.Summary.TotalAmount,
			TotalTax:    rep.Summary.TotalTax,
			ItemsSold:   rep.Summary.ItemsSold,
		},
	}

	for i, s := range rep.Sales {
		sr := saleResponse{
			SaleID:      s.SaleID,
			Date:        s.Date,
			Total:       s.Total,
			SellerID:    s.SellerID,
			SellerName:  s.SellerName,
			SellerEmail: s.SellerEmail,
			Details:     make([]detailResponse, len(s.Details)),
		}

		for j, d := range s.Details {
			sr.Details[j] = detailResponse{
				LineID:      d.LineID,
				ProductID:   d.ProductID,
				ProductName: d.ProductName,
				Quantity:    d.Quantity,
				UnitPrice:   d.UnitPrice,
				Tax:         d.Tax,
				LineTotal:   d.LineTotal,
			}
		}

		resp.Sales[i] = sr
	}

	return resp
}
