package routes

import (
	"github.com/Akhil-047/PayOrbit/controllers"
	"github.com/Akhil-047/PayOrbit/middleware"
	"github.com/gin-gonic/gin"
)

// initPaymentRoutes initializes all payment-related routes
func initPaymentRoutes(router *gin.RouterGroup) {
	// Public routes for the checkout flow (no authentication required)
	router.POST("/payments/public", controllers.CreatePaymentPublic)
	router.GET("/payments/:paymentId/public", controllers.GetPaymentPublic)

	payments := router.Group("/payments")
	payments.Use(middleware.MerchantAuth())
	{
		payments.POST("", controllers.CreatePayment)
		payments.GET("", controllers.ListPayments)
		payments.GET("/:paymentId", controllers.GetPayment)
	}

	// Report downloads live under /reports to keep the static path out
	// of the :paymentId wildcard.
	reports := router.Group("/reports")
	reports.Use(middleware.MerchantAuth())
	{
		reports.GET("/payments/excel", controllers.DownloadPaymentsReportExcel)
		reports.GET("/payments/pdf", controllers.DownloadPaymentsReportPDF)
	}
}
