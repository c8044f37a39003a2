package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/Alvarenga144/InventorySuite/internal/config"
	"github.com/Alvarenga144/InventorySuite/internal/database"
	"github.com/Alvarenga144/InventorySuite/internal/export"
	suiteHttp "github.com/Alvarenga144/InventorySuite/internal/http"
	authHandler "github.com/Alvarenga144/InventorySuite/internal/http/auth"
	productHandler "github.com/Alvarenga144/InventorySuite/internal/http/product"
	reportHandler "github.com/Alvarenga144/InventorySuite/internal/http/report"
	saleHandler "github.com/Alvarenga144/InventorySuite/internal/http/sale"
	"github.com/Alvarenga144/InventorySuite/internal/product"
	productStore "github.com/Alvarenga144/InventorySuite/internal/product/store"
	"github.com/Alvarenga144/InventorySuite/internal/report"
	reportStore "github.com/Alvarenga144/InventorySuite/internal/report/store"
	"github.com/Alvarenga144/InventorySuite/internal/sale"
	saleStore "github.com/Alvarenga144/InventorySuite/internal/sale/store"
	"github.com/Alvarenga144/InventorySuite/internal/user"
	userStore "github.com/Alvarenga144/InventorySuite/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	// Monetary fields serialize as JSON numbers, matching the API contract.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	tokens := user.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		userService    = user.NewService(userStore.New(db))
		productService = product.NewService(productStore.New(db))
		saleService    = sale.NewService(saleStore.New(db), cfg.Sales.TaxRatePercent)
		reportService  = report.NewService(reportStore.New(db))
		exportService  = export.NewService()
	)

	var (
		authH    = authHandler.NewHandler(userService, tokens)
		productH = productHandler.NewHandler(productService)
		saleH    = saleHandler.NewHandler(saleService)
		reportH  = reportHandler.NewHandler(reportService, userService, exportService)
	)

	router := suiteHttp.New(tokens, authH, productH, saleH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port, "tax_rate_percent", cfg.Sales.TaxRatePercent)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
