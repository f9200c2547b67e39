// Package router assembles the Gin engine of the API.
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetwise/internal/docs" // swagger docs
	"budgetwise/internal/handlers"
	"budgetwise/internal/metrics"
	"budgetwise/internal/middleware"
	"budgetwise/internal/services"
	"budgetwise/internal/validator"
)

// Services are the business services the routes are served by.
type Services struct {
	Budget       services.BudgetServicer
	Expense      services.ExpenseServicer
	Subscription services.SubscriptionServicer
	Advisor      services.AdvisorServicer
	Audit        services.AuditServicer
}

// New builds the engine with middleware, operational endpoints and the
// /api/v1 routes. Metrics are registered with the default Prometheus
// registry and served on /metrics.
func New(s Services) (*gin.Engine, error) {
	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	validator.Register()

	budgetHandler := handlers.NewBudgetHandler(s.Budget, s.Audit)
	expenseHandler := handlers.NewExpenseHandler(s.Expense, s.Audit)
	subscriptionHandler := handlers.NewSubscriptionHandler(s.Subscription, s.Audit)
	advisorHandler := handlers.NewAdvisorHandler(s.Advisor)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.Metrics())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORS())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	budget := v1.Group("/budget")
	budget.POST("", budgetHandler.CreateBudget)
	budget.GET("/history/:ownerId", budgetHandler.GetBudgetHistory)
	budget.GET("/:ownerId", budgetHandler.GetBudget)
	budget.PUT("/:ownerId", budgetHandler.ReplaceBudget)

	expense := v1.Group("/expense")
	expense.POST("", expenseHandler.CreateExpense)
	expense.GET("/category-percentage/:ownerId", expenseHandler.GetCategoryPercentages)
	expense.GET("/daily-expenses/:ownerId", expenseHandler.GetDailyExpenses)
	expense.GET("/:ownerId", expenseHandler.GetExpenses)
	expense.DELETE("/:id", expenseHandler.DeleteExpense)

	subscription := v1.Group("/subscription")
	subscription.POST("", subscriptionHandler.CreateSubscription)
	subscription.GET("/:ownerId", subscriptionHandler.GetSubscriptions)
	subscription.DELETE("/:id", subscriptionHandler.DeleteSubscription)

	advisor := v1.Group("/advisor")
	advisor.GET("/forecast/:ownerId", advisorHandler.GetForecast)
	advisor.GET("/advice/:ownerId", advisorHandler.GetAdvice)

	return r, nil
}
