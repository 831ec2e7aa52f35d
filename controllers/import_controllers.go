package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/foodstory-analytics/dataset"
	"github.com/yeremiapane/foodstory-analytics/services"
	"github.com/yeremiapane/foodstory-analytics/utils"
	"gorm.io/gorm"
)

type ImportController struct {
	DB  *gorm.DB
	svc *services.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{DB: db, svc: services.NewImportService(db)}
}

// ImportBills receives a bills export (.csv or .xlsx) as multipart
// field "file" and stores it.
func (ic *ImportController) ImportBills(c *gin.Context) {
	ic.runImport(c, "bills", ic.svc.ImportBills)
}

// ImportBillDetails receives a line-items export.
func (ic *ImportController) ImportBillDetails(c *gin.Context) {
	ic.runImport(c, "bill_details", ic.svc.ImportBillDetails)
}

func (ic *ImportController) runImport(c *gin.Context, table string, importFn func(*dataset.Dataset) (int64, error)) {
	// Limit uploads to 20MB; a month of exports is well under that
	c.Request.ParseMultipartForm(20 << 20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("missing upload field 'file'"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	ds, err := dataset.Read(file, fileHeader.Filename)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	batchID := uuid.New().String()
	utils.InfoLogger.Printf("import batch %s: %s (%s, %d data rows)",
		batchID, table, fileHeader.Filename, len(ds.Rows))

	rows, err := importFn(ds)
	if err != nil {
		utils.ErrorLogger.Printf("import batch %s failed: %v", batchID, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Import completed", gin.H{
		"batch_id":      batchID,
		"rows_imported": rows,
		"table":         table,
	})
}
