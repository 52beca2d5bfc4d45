package httpapi

import (
	"net/http"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/handlers"
	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/delivery/httpapi/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the exact wire paths the legacy consumers depend on.
func NewRouter(
	auth *middleware.AuthMiddleware,
	transactionHandler *handlers.TransactionHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	contractorHandler *handlers.ContractorHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(), middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api", auth.Required())
	api.GET("/transactions", transactionHandler.GetOwnTransactions)

	admin := api.Group("/admin")
	// The client ledger keeps its /admin path for wire compatibility but is
	// open to employees as well.
	admin.GET("/client/:id/transactions", auth.EmployeeOrAdmin(), transactionHandler.GetClientTransactions)

	adminOnly := admin.Group("", auth.AdminOnly())
	adminOnly.GET("/transactions", transactionHandler.GetPlatformTransactions)
	adminOnly.PATCH("/deposits/:id", transactionHandler.UpdateDepositStatus)
	adminOnly.PATCH("/usdt/:id", transactionHandler.UpdateUsdtStatus)
	adminOnly.PATCH("/usdc/:id", transactionHandler.UpdateUsdcStatus)
	adminOnly.DELETE("/transactions/:type/:id", transactionHandler.DeleteTransaction)
	adminOnly.GET("/analytics", analyticsHandler.GetAnalytics)
	adminOnly.POST("/contractors", contractorHandler.CreateContractor)
	adminOnly.GET("/contractors", contractorHandler.GetContractors)

	employee := api.Group("/employee", auth.EmployeeOrAdmin())
	employee.GET("/transactions", transactionHandler.GetPlatformTransactions)

	return r
}
