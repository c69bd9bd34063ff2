package routes

import (
	"thirupugazh_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing         = "/ping"
	PathMenu         = "/menu"
	PathBills        = "/bills"
	PathHolds        = "/holds"
	PathTransactions = "/transactions"
	PathReports      = "/reports"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addMenuRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler) {
	rg.GET(PathMenu, cartHandler.ListMenu)
}

func addBillRoutes(rg *gin.RouterGroup, cartHandler *handlers.CartHandler, holdHandler *handlers.HoldHandler, paymentHandler *handlers.PaymentHandler) {
	bills := rg.Group(PathBills)
	{
		bills.POST("/items", cartHandler.AddItem)
		bills.GET("/:bill_id", cartHandler.GetBill)
		bills.POST("/:bill_id/items", cartHandler.AddItem)
		bills.DELETE("/:bill_id/items/:menu_item_id", cartHandler.RemoveItem)
		bills.PUT("/:bill_id/discount", cartHandler.ApplyDiscount)
		bills.POST("/:bill_id/hold", holdHandler.Hold)
		bills.POST("/:bill_id/payments", paymentHandler.Finalize)
	}
}

func addHoldRoutes(rg *gin.RouterGroup, holdHandler *handlers.HoldHandler, resumeHandler *handlers.ResumeHandler) {
	holds := rg.Group(PathHolds)
	{
		holds.GET("", holdHandler.ListHeld)
		holds.POST("/resume", resumeHandler.Resume)
		// admin audit trail
		holds.GET("/:hold_id/events", resumeHandler.ListEvents)
	}
}

func addTransactionRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.GET(PathTransactions+"/:transaction_id", paymentHandler.GetTransaction)
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/daily", reportHandler.Daily)
		reports.GET("/monthly", reportHandler.Monthly)
	}
}
