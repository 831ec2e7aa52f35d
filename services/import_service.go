// Package services holds the import pipeline and the analysis readers
// that sit between the HTTP controllers and the store.
package services

import (
	"fmt"

	"github.com/yeremiapane/foodstory-analytics/cleaning"
	"github.com/yeremiapane/foodstory-analytics/dataset"
	"github.com/yeremiapane/foodstory-analytics/models"
	"github.com/yeremiapane/foodstory-analytics/utils"
	"gorm.io/gorm"
)

const insertBatchSize = 500

type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportBills maps, cleans and stores one uploaded bills export.
// Returns the number of rows written.
func (s *ImportService) ImportBills(ds *dataset.Dataset) (int64, error) {
	return s.importDataset(ds, "bills", models.BillColumns)
}

// ImportBillDetails does the same for a line-items export.
func (s *ImportService) ImportBillDetails(ds *dataset.Dataset) (int64, error) {
	return s.importDataset(ds, "bill_details", models.BillDetailColumns)
}

// importDataset assembles one fully-typed row per upload row, in the
// mapping's column order, then bulk-inserts everything in a single
// transaction. A mapping entry with no matching upload header is
// synthesized as its type default for every row; nothing aborts the
// import short of a storage failure, which rolls the whole batch back.
func (s *ImportService) importDataset(ds *dataset.Dataset, table string, specs []models.ColumnSpec) (int64, error) {
	headerIdx := make(map[string]int, len(ds.Headers))
	for i, h := range ds.Headers {
		key := cleaning.NormalizeHeader(h)
		if _, seen := headerIdx[key]; !seen {
			headerIdx[key] = i
		}
	}

	matched := 0
	colIdx := make([]int, len(specs))
	for i, spec := range specs {
		if j, ok := headerIdx[cleaning.NormalizeHeader(spec.Header)]; ok {
			colIdx[i] = j
			matched++
		} else {
			colIdx[i] = -1
		}
	}
	utils.InfoLogger.Printf("import %s: matched %d/%d mapped columns across %d rows",
		table, matched, len(specs), len(ds.Rows))

	rows := make([]map[string]interface{}, 0, len(ds.Rows))
	for i := range ds.Rows {
		row := make(map[string]interface{}, len(specs))
		for k, spec := range specs {
			raw := ""
			if colIdx[k] >= 0 {
				raw = ds.Cell(i, colIdx[k])
			}
			row[spec.Column] = cleanCell(spec, raw)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := tx.Table(table).Create(rows[start:end]).Error; err != nil {
				return fmt.Errorf("insert into %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("import %s failed, transaction rolled back: %v", table, err)
		return 0, err
	}
	return int64(len(rows)), nil
}

// cleanCell coerces one raw cell to its column's storage value. The
// two repaired columns come after coercion in the pipeline, but both
// are TEXT so coercion is the identity there.
func cleanCell(spec models.ColumnSpec, raw string) interface{} {
	switch spec.Column {
	case "payment_date":
		return cleaning.RepairDate(raw)
	case "payment_time":
		return cleaning.RepairTime(raw)
	}
	switch spec.Type {
	case models.TypeReal:
		return cleaning.CoerceReal(raw)
	case models.TypeInteger:
		return cleaning.CoerceInteger(raw)
	default:
		return cleaning.CoerceText(raw)
	}
}
