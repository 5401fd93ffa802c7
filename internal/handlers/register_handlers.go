package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pmapp/personal_management_app/cmd/docs"
	portssvc "github.com/pmapp/personal_management_app/internal/core/ports/services"
	"github.com/pmapp/personal_management_app/internal/middleware"
	"github.com/pmapp/personal_management_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerHomeRoutes(r)

	// Public routes: credential auth, social login and the expenditure
	// listing, which is the one unauthenticated browse endpoint. All three
	// auth endpoints share one rate-limit budget.
	authLimit := authRateLimitMiddleware()
	registerAuthRoutes(r, authLimit, services.User, services.Token)
	registerGoogleAuthRoutes(r, authLimit, services.User, services.Token, services.GoogleAuth)

	protected := r.Group("", middleware.AuthMiddleware(cfg.JWTSecret))

	registerExpenditureRoutes(r, protected, services.Expenditures)
	registerPurchaseRoutes(protected, services.Purchases)
	registerEmployeeRoutes(protected, services.Employees)
	registerPushRoutes(protected, services.Devices)

	registerResourceRoutes(protected, "/contacts", "Contact", services.Contacts, []filterField{
		{param: "firstname", column: "firstname", substring: true},
		{param: "lastname", column: "lastname", substring: true},
		{param: "company", column: "company", substring: true},
		{param: "mobile", column: "mobile"},
	})
	registerResourceRoutes(protected, "/tasks", "Task", services.Tasks, []filterField{
		{param: "title", column: "title", substring: true},
	})
	registerResourceRoutes(protected, "/timesheets", "Timesheet", services.Timesheets, []filterField{
		{param: "description", column: "description", substring: true},
	})
	registerResourceRoutes(protected, "/events", "Event", services.Events, []filterField{
		{param: "name", column: "name", substring: true},
	})
	registerResourceRoutes(protected, "/returnings", "Returning", services.Returnings, []filterField{
		{param: "person", column: "person", substring: true},
		{param: "type", column: "type"},
	})
	registerResourceRoutes(protected, "/crm/surveys", "Survey", services.Surveys, []filterField{
		{param: "surveyor", column: "surveyor_id"},
	})

	setupSwaggerRoutes(r, cfg)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Route not found"})
	})
}

// setupSwaggerRoutes serves the API documentation outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
