package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alvarenga144/InventorySuite/internal/report"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGroup_CollapsesSharedSaleKey(t *testing.T) {
	sellerID := uuid.New()
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := []report.Row{
		{
			SaleID: 1, Date: date, Total: dec("25.43"),
			SellerID: sellerID, SellerName: "Ana Gomez", SellerEmail: "ana@example.com",
			LineID: 10, ProductID: 1, ProductName: "Pan", Quantity: 3,
			UnitPrice: dec("5.00"), Tax: dec("1.95"), LineTotal: dec("16.95"),
		},
		{
			SaleID: 1, Date: date, Total: dec("25.43"),
			SellerID: sellerID, SellerName: "Ana Gomez", SellerEmail: "ana@example.com",
			LineID: 11, ProductID: 2, ProductName: "Queso", Quantity: 1,
			UnitPrice: dec("7.50"), Tax: dec("0.98"), LineTotal: dec("8.48"),
		},
	}

	sales := report.Group(rows)

	require.Len(t, sales, 1)
	assert.EqualValues(t, 1, sales[0].SaleID)
	assert.Equal(t, "Ana Gomez", sales[0].SellerName)

	require.Len(t, sales[0].Details, 2)
	assert.EqualValues(t, 10, sales[0].Details[0].LineID)
	assert.EqualValues(t, 11, sales[0].Details[1].LineID)
}

func TestGroup_PreservesFirstAppearanceOrder(t *testing.T) {
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	a, b := uuid.New(), uuid.New()

	rows := []report.Row{
		{SaleID: 2, Date: date, Total: dec("10"), SellerID: a, LineID: 20},
		{SaleID: 1, Date: date, Total: dec("5"), SellerID: b, LineID: 10},
		{SaleID: 2, Date: date, Total: dec("10"), SellerID: a, LineID: 21},
	}

	sales := report.Group(rows)

	require.Len(t, sales, 2)
	assert.EqualValues(t, 2, sales[0].SaleID)
	assert.EqualValues(t, 1, sales[1].SaleID)
	require.Len(t, sales[0].Details, 2)
	assert.EqualValues(t, 20, sales[0].Details[0].LineID)
	assert.EqualValues(t, 21, sales[0].Details[1].LineID)
}

func TestGroup_DifferentHeaderFieldsSplitSales(t *testing.T) {
	// Same sale id but a differing header field means a different natural key.
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	sellerID := uuid.New()

	rows := []report.Row{
		{SaleID: 1, Date: date, Total: dec("10"), SellerID: sellerID, LineID: 1},
		{SaleID: 1, Date: date, Total: dec("99"), SellerID: sellerID, LineID: 2},
	}

	sales := report.Group(rows)
	assert.Len(t, sales, 2)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()
	date := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := []report.Row{
		{SaleID: 1, Date: date, Total: dec("22.60"), SellerID: sellerID, LineID: 1, Quantity: 2},
	}
	summary := report.Summary{SaleCount: 1, TotalAmount: dec("22.60"), TotalTax: dec("2.60"), ItemsSold: 2}

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().SalesRows(gomock.Any(), &sellerID).Return(rows, nil)
	repo.EXPECT().SalesSummary(gomock.Any(), &sellerID).Return(summary, nil)

	svc := report.NewService(repo)

	got, err := svc.Get(context.Background(), &sellerID)
	require.NoError(t, err)
	require.Len(t, got.Sales, 1)
	assert.Equal(t, summary, got.Summary)
}

func TestService_Get_UnknownSeller(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().SalesRows(gomock.Any(), &sellerID).Return(nil, report.ErrUnknownSeller)

	svc := report.NewService(repo)

	_, err := svc.Get(context.Background(), &sellerID)
	assert.ErrorIs(t, err, report.ErrUnknownSeller)
}

func TestService_Get_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := report.NewMockRepository(ctrl)
	repo.EXPECT().SalesRows(gomock.Any(), gomock.Nil()).Return(nil, nil)
	repo.EXPECT().SalesSummary(gomock.Any(), gomock.Nil()).Return(report.Summary{}, nil)

	svc := report.NewService(repo)

	got, err := svc.Get(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got.Sales)
	assert.EqualValues(t, 0, got.Summary.SaleCount)
}
