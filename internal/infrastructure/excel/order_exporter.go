// Package excel renders order listings as .xlsx workbooks for download.
package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/iamungmonita/plants-box-api/internal/application/sales"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

var _ sales.OrderExporter = (*OrderExporter)(nil)

var headers = []string{"Purchase ID", "Payment Method", "Total Amount", "Paid Amount", "Change Amount", "Created By", "Date"}

// OrderExporter writes orders into a temporary .xlsx file. The caller owns the
// returned path and removes the file after sending it.
type OrderExporter struct {
	dir string
}

// NewOrderExporter builds the exporter. An empty dir means the OS temp dir.
func NewOrderExporter(dir string) *OrderExporter {
	if dir == "" {
		dir = os.TempDir()
	}
	return &OrderExporter{dir: dir}
}

// Export writes one row per order and returns the path of the workbook.
func (e *OrderExporter) Export(orders []*entity.Order) (string, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", fmt.Errorf("write header: %w", err)
		}
	}

	for i, o := range orders {
		values := []any{
			o.PurchasedID,
			o.PaymentMethod,
			o.TotalAmount.String(),
			o.PaidAmount.String(),
			o.ChangeAmount.String(),
			o.CreatedBy,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return "", fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", fmt.Errorf("write row: %w", err)
			}
		}
	}

	path := filepath.Join(e.dir, fmt.Sprintf("orders-%d.xlsx", time.Now().UnixNano()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
