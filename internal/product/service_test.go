package product_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Alvarenga144/InventorySuite/internal/product"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		prodName  string
		price     decimal.Decimal
		setupMock func(m *product.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			prodName: "Teclado",
			price:    decimal.RequireFromString("25.50"),
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().
					CreateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p *product.Product) error {
						p.ID = 7
						return nil
					})
			},
		},
		{
			name:     "EmptyName",
			prodName: "   ",
			price:    decimal.RequireFromString("25.50"),
			wantErr:  product.ErrNameRequired,
		},
		{
			name:     "NameTooLong",
			prodName: strings.Repeat("x", 151),
			price:    decimal.RequireFromString("25.50"),
			wantErr:  product.ErrNameTooLong,
		},
		{
			name:     "ZeroPrice",
			prodName: "Teclado",
			price:    decimal.Zero,
			wantErr:  product.ErrPriceInvalid,
		},
		{
			name:     "NegativePrice",
			prodName: "Teclado",
			price:    decimal.RequireFromString("-1"),
			wantErr:  product.ErrPriceInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := product.NewService(repo)
			got, err := svc.Create(context.Background(), tt.prodName, tt.price)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.EqualValues(t, 7, got.ID)
			assert.True(t, got.Active)
		})
	}
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := product.NewMockRepository(ctrl)
	repo.EXPECT().
		GetProduct(gomock.Any(), int64(99)).
		Return(nil, product.ErrNotFound)

	svc := product.NewService(repo)

	_, err := svc.Update(context.Background(), 99, "Mouse", decimal.RequireFromString("9.99"))
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestService_Update_TrimsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	existing := &product.Product{ID: 3, Name: "Mouse", Price: decimal.RequireFromString("5.00"), Active: true}

	repo := product.NewMockRepository(ctrl)
	repo.EXPECT().
		GetProduct(gomock.Any(), int64(3)).
		Return(existing, nil)
	repo.EXPECT().
		UpdateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *product.Product) error {
			assert.Equal(t, "Mouse Pro", p.Name)
			assert.True(t, p.Active)
			return nil
		})

	svc := product.NewService(repo)

	got, err := svc.Update(context.Background(), 3, "  Mouse Pro  ", decimal.RequireFromString("12.00"))
	require.NoError(t, err)
	assert.Equal(t, "Mouse Pro", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.00")))
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *product.MockRepository)
		wantErr   error
	}

	existing := &product.Product{ID: 4, Name: "Monitor", Active: true}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().GetProduct(gomock.Any(), int64(4)).Return(existing, nil)
				m.EXPECT().HasSaleReferences(gomock.Any(), int64(4)).Return(false, nil)
				m.EXPECT().SoftDeleteProduct(gomock.Any(), int64(4)).Return(nil)
			},
		},
		{
			name: "Referenced",
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().GetProduct(gomock.Any(), int64(4)).Return(existing, nil)
				m.EXPECT().HasSaleReferences(gomock.Any(), int64(4)).Return(true, nil)
			},
			wantErr: product.ErrInUse,
		},
		{
			name: "NotFound",
			setupMock: func(m *product.MockRepository) {
				m.EXPECT().GetProduct(gomock.Any(), int64(4)).Return(nil, product.ErrNotFound)
			},
			wantErr: product.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := product.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := product.NewService(repo)
			err := svc.Delete(context.Background(), 4)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
