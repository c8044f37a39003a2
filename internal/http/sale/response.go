package sale

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/sale"
)

type saleResponse struct {
	ID         int64           `json:"idVenta"`
	Date       time.Time       `json:"fecha"`
	SellerID   uuid.UUID       `json:"vendedorId"`
	SellerName string          `json:"vendedorNombre"`
	Total      decimal.Decimal `json:"total"`
	Lines      []lineResponse  `json:"detalles"`
}

type lineResponse struct {
	ID          int64           `json:"idDet"`
	Date        time.Time       `json:"fecha"`
	ProductID   int64           `json:"idPro"`
	ProductName string          `json:"productoNombre"`
	Quantity    int64           `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio"`
	Tax         decimal.Decimal `json:"iva"`
	Total       decimal.Decimal `json:"total"`
}

func toResponse(s *sale.Sale) saleResponse {
	resp := saleResponse{
		ID:         s.ID,
		Date:       s.Date,
		SellerID:   s.SellerID,
		SellerName: s.SellerName,
		Total:      s.Total,
		Lines:      make([]lineResponse, len(s.Lines)),
	}

	for i, l := range s.Lines {
		resp.Lines[i] = lineResponse{
			ID:          l.ID,
			Date:        l.Date,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Tax:         l.Tax,
			Total:       l.Total,
		}
	}

	return resp
}

func toResponseList(sales []*sale.Sale) []saleResponse {
	resp := make([]saleResponse, len(sales))
	for i, s := range sales {
		resp[i] = toResponse(s)
	}

	return resp
}
