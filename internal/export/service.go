package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Alvarenga144/InventorySuite/internal/report"
)

const (
	salesSheet   = "Ventas"
	summarySheet = "Resumen"
)

// Service renders sales reports into spreadsheet workbooks.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// WriteXLSX writes the report as an .xlsx workbook: one sheet with every
// sale/detail row flattened, one sheet with the summary.
func (s *Service) WriteXLSX(rep *report.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeSales(f, rep); err != nil {
		return err
	}

	if err := s.writeSummary(f, rep.Summary); err != nil {
		return err
	}

	// Drop the default sheet that NewFile creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func (s *Service) writeSales(f *excelize.File, rep *report.Report) error {
	if _, err := f.NewSheet(salesSheet); err != nil {
		return fmt.Errorf("creating sales sheet: %w", err)
	}

	header := []any{
		"ID Venta", "Fecha", "Vendedor", "Email", "Producto",
		"Cantidad", "Precio Unitario", "IVA", "Total Línea", "Total Venta",
	}
	if err := f.SetSheetRow(salesSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	rowNum := 2

	for _, sl := range rep.Sales {
		for _, d := range sl.Details {
			row := []any{
				sl.SaleID,
				sl.Date.Format("2006-01-02 15:04"),
				sl.SellerName,
				sl.SellerEmail,
				d.ProductName,
				d.Quantity,
				d.UnitPrice.InexactFloat64(),
				d.Tax.InexactFloat64(),
				d.LineTotal.InexactFloat64(),
				sl.Total.InexactFloat64(),
			}

			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return fmt.Errorf("computing cell name: %w", err)
			}

			if err := f.SetSheetRow(salesSheet, cell, &row); err != nil {
				return fmt.Errorf("writing sale row: %w", err)
			}

			rowNum++
		}
	}

	return nil
}

func (s *Service) writeSummary(f *excelize.File, sum report.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}

	rows := [][]any{
		{"Total de ventas", sum.SaleCount},
		{"Monto total", sum.TotalAmount.InexactFloat64()},
		{"IVA total", sum.TotalTax.InexactFloat64()},
		{"Productos vendidos", sum.ItemsSold},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}

		r := row
		if err := f.SetSheetRow(summarySheet, cell, &r); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}

	return nil
}
