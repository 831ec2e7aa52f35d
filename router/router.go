package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodstory-analytics/controllers"
	"github.com/yeremiapane/foodstory-analytics/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	importCtrl := controllers.NewImportController(db)
	billCtrl := controllers.NewBillController(db)
	analyticsCtrl := controllers.NewAnalyticsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Imports parse whole spreadsheets, so they get their own limiter
	imports := api.Group("/imports")
	imports.Use(middlewares.NewUploadRateLimiter())
	{
		imports.POST("/bills", importCtrl.ImportBills)
		imports.POST("/bill-details", importCtrl.ImportBillDetails)
	}

	api.GET("/bills", billCtrl.GetAllBills)
	api.GET("/bill-details", billCtrl.GetAllBillDetails)

	analytics := api.Group("/analytics")
	{
		analytics.GET("/overview", analyticsCtrl.GetOverview)
		analytics.GET("/daily-revenue", analyticsCtrl.GetDailyRevenue)
		analytics.GET("/daily-bills", analyticsCtrl.GetDailyBills)
		analytics.GET("/weekday-traffic", analyticsCtrl.GetWeekdayTraffic)
		analytics.GET("/hourly-traffic", analyticsCtrl.GetHourlyTraffic)
		analytics.GET("/payment-types", analyticsCtrl.GetRevenueByPaymentType)
		analytics.GET("/branches", analyticsCtrl.GetRevenueByBranch)
		analytics.GET("/top-menus", analyticsCtrl.GetTopMenus)
		analytics.GET("/baskets", analyticsCtrl.GetBaskets)
		analytics.GET("/associations", analyticsCtrl.GetAssociations)
	}

	return r
}
