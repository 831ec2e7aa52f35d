package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodstory-analytics/models"
	"github.com/yeremiapane/foodstory-analytics/utils"
	"gorm.io/gorm"
)

type BillController struct {
	DB *gorm.DB
}

func NewBillController(db *gorm.DB) *BillController {
	return &BillController{DB: db}
}

// GetAllBills lists stored bills, newest import first, with
// limit/offset paging and the total row count.
func (bc *BillController) GetAllBills(c *gin.Context) {
	limit, offset := pagingParams(c)

	var total int64
	if err := bc.DB.Model(&models.Bill{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var bills []models.Bill
	if err := bc.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&bills).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bills", gin.H{
		"total": total,
		"bills": bills,
	})
}

// GetAllBillDetails lists stored line items the same way.
func (bc *BillController) GetAllBillDetails(c *gin.Context) {
	limit, offset := pagingParams(c)

	var total int64
	if err := bc.DB.Model(&models.BillDetail{}).Count(&total).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var details []models.BillDetail
	if err := bc.DB.Order("id DESC").Limit(limit).Offset(offset).Find(&details).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of bill details", gin.H{
		"total":        total,
		"bill_details": details,
	})
}

func pagingParams(c *gin.Context) (limit, offset int) {
	limit = 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 500 {
		limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
