package sale_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alvarenga144/InventorySuite/internal/sale"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// captureTx wires a MockTx that records inserted lines and the final total.
func captureTx(ctrl *gomock.Controller, lines *[]sale.Line, total *decimal.Decimal) *sale.MockTx {
	tx := sale.NewMockTx(ctrl)

	tx.EXPECT().
		InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *sale.Sale) error {
			s.ID = 100
			return nil
		})
	tx.EXPECT().
		InsertLine(gomock.Any(), int64(100), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, l *sale.Line) error {
			l.ID = int64(len(*lines)) + 1
			*lines = append(*lines, *l)
			return nil
		}).
		AnyTimes()
	tx.EXPECT().
		SetSaleTotal(gomock.Any(), int64(100), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, t decimal.Decimal) error {
			*total = t
			return nil
		})
	tx.EXPECT().Commit().Return(nil)
	// Deferred rollback after a successful commit is a no-op.
	tx.EXPECT().Rollback().Return(nil)

	return tx
}

func TestService_CreateSale_SingleLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellerID := uuid.New()

	var (
		gotLines []sale.Line
		gotTotal decimal.Decimal
	)

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetActiveProducts(gomock.Any(), []int64{1}).
		Return([]sale.ProductInfo{{ID: 1, Name: "Cafe", Price: dec("10.00")}}, nil)
	repo.EXPECT().
		Begin(gomock.Any()).
		Return(captureTx(ctrl, &gotLines, &gotTotal), nil)
	repo.EXPECT().
		GetSale(gomock.Any(), int64(100)).
		DoAndReturn(func(context.Context, int64) (*sale.Sale, error) {
			return &sale.Sale{ID: 100, SellerID: sellerID, Total: gotTotal, Lines: gotLines}, nil
		})

	svc := sale.NewService(repo, 13)

	got, err := svc.CreateSale(context.Background(), sellerID, []sale.LineInput{
		{ProductID: 1, Quantity: 2},
	})
	require.NoError(t, err)

	require.Len(t, gotLines, 1)
	assert.True(t, gotLines[0].UnitPrice.Equal(dec("10.00")), "unit price %s", gotLines[0].UnitPrice)
	assert.True(t, gotLines[0].Tax.Equal(dec("2.60")), "tax %s", gotLines[0].Tax)
	assert.True(t, gotLines[0].Total.Equal(dec("22.60")), "line total %s", gotLines[0].Total)
	assert.True(t, gotTotal.Equal(dec("22.60")), "sale total %s", gotTotal)
	assert.EqualValues(t, 100, got.ID)
}

func TestService_CreateSale_TaxRoundingBoundary(t *testing.T) {
	// 7.50 * 1 * 13% = 0.975, which must round half-up to 0.98.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		gotLines []sale.Line
		gotTotal decimal.Decimal
	)

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetActiveProducts(gomock.Any(), []int64{1, 2}).
		Return([]sale.ProductInfo{
			{ID: 1, Name: "Pan", Price: dec("5.00")},
			{ID: 2, Name: "Queso", Price: dec("7.50")},
		}, nil)
	repo.EXPECT().
		Begin(gomock.Any()).
		Return(captureTx(ctrl, &gotLines, &gotTotal), nil)
	repo.EXPECT().
		GetSale(gomock.Any(), int64(100)).
		Return(&sale.Sale{ID: 100}, nil)

	svc := sale.NewService(repo, 13)

	_, err := svc.CreateSale(context.Background(), uuid.New(), []sale.LineInput{
		{ProductID: 1, Quantity: 3},
		{ProductID: 2, Quantity: 1},
	})
	require.NoError(t, err)

	require.Len(t, gotLines, 2)

	assert.True(t, gotLines[0].Tax.Equal(dec("1.95")), "line 1 tax %s", gotLines[0].Tax)
	assert.True(t, gotLines[0].Total.Equal(dec("16.95")), "line 1 total %s", gotLines[0].Total)

	assert.True(t, gotLines[1].Tax.Equal(dec("0.98")), "line 2 tax %s", gotLines[1].Tax)
	assert.True(t, gotLines[1].Total.Equal(dec("8.48")), "line 2 total %s", gotLines[1].Total)

	assert.True(t, gotTotal.Equal(dec("25.43")), "sale total %s", gotTotal)
}

func TestService_CreateSale_TotalIsSumOfLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		gotLines []sale.Line
		gotTotal decimal.Decimal
	)

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetActiveProducts(gomock.Any(), []int64{1, 2, 3}).
		Return([]sale.ProductInfo{
			{ID: 1, Name: "A", Price: dec("0.01")},
			{ID: 2, Name: "B", Price: dec("19.99")},
			{ID: 3, Name: "C", Price: dec("3.33")},
		}, nil)
	repo.EXPECT().
		Begin(gomock.Any()).
		Return(captureTx(ctrl, &gotLines, &gotTotal), nil)
	repo.EXPECT().
		GetSale(gomock.Any(), int64(100)).
		Return(&sale.Sale{ID: 100}, nil)

	svc := sale.NewService(repo, 13)

	_, err := svc.CreateSale(context.Background(), uuid.New(), []sale.LineInput{
		{ProductID: 1, Quantity: 7},
		{ProductID: 2, Quantity: 3},
		{ProductID: 3, Quantity: 11},
		{ProductID: 1, Quantity: 1}, // repeated product, priced independently
	})
	require.NoError(t, err)
	require.Len(t, gotLines, 4)

	sum := decimal.Zero
	for _, l := range gotLines {
		subtotal := l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
		assert.True(t, l.Total.Equal(subtotal.Add(l.Tax)), "line total invariant for product %d", l.ProductID)
		sum = sum.Add(l.Total)
	}

	assert.True(t, gotTotal.Equal(sum), "total %s != sum %s", gotTotal, sum)
}

func TestService_CreateSale_ValidationFailures(t *testing.T) {
	type testCase struct {
		name     string
		sellerID uuid.UUID
		lines    []sale.LineInput
		wantErr  error
	}

	sellerID := uuid.New()

	tests := []testCase{
		{
			name:     "NoSeller",
			sellerID: uuid.Nil,
			lines:    []sale.LineInput{{ProductID: 1, Quantity: 1}},
			wantErr:  sale.ErrNoSeller,
		},
		{
			name:     "EmptyLines",
			sellerID: sellerID,
			wantErr:  sale.ErrNoLines,
		},
		{
			name:     "ZeroQuantity",
			sellerID: sellerID,
			lines:    []sale.LineInput{{ProductID: 1, Quantity: 0}},
			wantErr:  sale.ErrInvalidQuantity,
		},
		{
			name:     "NegativeQuantity",
			sellerID: sellerID,
			lines:    []sale.LineInput{{ProductID: 1, Quantity: -5}},
			wantErr:  sale.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository expectations: validation must reject the request
			// before anything touches the store.
			repo := sale.NewMockRepository(ctrl)

			svc := sale.NewService(repo, 13)

			got, err := svc.CreateSale(context.Background(), tt.sellerID, tt.lines)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_CreateSale_UnavailableProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetActiveProducts(gomock.Any(), []int64{5, 6, 7}).
		Return([]sale.ProductInfo{{ID: 6, Name: "B", Price: dec("1.00")}}, nil)
	// Begin is never called: the rejected request writes nothing.

	svc := sale.NewService(repo, 13)

	got, err := svc.CreateSale(context.Background(), uuid.New(), []sale.LineInput{
		{ProductID: 5, Quantity: 1},
		{ProductID: 6, Quantity: 1},
		{ProductID: 7, Quantity: 1},
	})
	require.Error(t, err)
	assert.Nil(t, got)

	var upErr *sale.UnavailableProductsError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, []int64{5, 7}, upErr.IDs)
	assert.Contains(t, upErr.Error(), "5, 7")
}

func TestService_CreateSale_RollbackOnLineFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := sale.NewMockTx(ctrl)
	tx.EXPECT().
		InsertSale(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *sale.Sale) error {
			s.ID = 100
			return nil
		})
	tx.EXPECT().
		InsertLine(gomock.Any(), int64(100), gomock.Any()).
		Return(errors.New("disk full"))
	tx.EXPECT().Rollback().Return(nil)
	// Commit must never be reached.

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetActiveProducts(gomock.Any(), []int64{1}).
		Return([]sale.ProductInfo{{ID: 1, Name: "A", Price: dec("1.00")}}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

	svc := sale.NewService(repo, 13)

	got, err := svc.CreateSale(context.Background(), uuid.New(), []sale.LineInput{
		{ProductID: 1, Quantity: 1},
	})
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().GetSale(gomock.Any(), int64(42)).Return(nil, sale.ErrNotFound)

	svc := sale.NewService(repo, 13)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, sale.ErrNotFound)
}
