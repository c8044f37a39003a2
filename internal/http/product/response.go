package product

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/product"
)

type productResponse struct {
	ID        int64           `json:"idPro"`
	Name      string          `json:"producto"`
	Price     decimal.Decimal `json:"precio"`
	Active    bool            `json:"activo"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt,omitempty"`
}

func toResponse(p *product.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toResponseList(products []*product.Product) []productResponse {
	resp := make([]productResponse, len(products))
	for i, p := range products {
		resp[i] = toResponse(p)
	}

	return resp
}
