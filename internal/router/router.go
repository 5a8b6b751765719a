package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/izabelforte/ProjetoPCRH/docs"
	"github.com/izabelforte/ProjetoPCRH/internal/config"
	"github.com/izabelforte/ProjetoPCRH/internal/infra/session"
	"github.com/izabelforte/ProjetoPCRH/internal/middleware"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/handler"
	"github.com/izabelforte/ProjetoPCRH/internal/modules/serializer"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/authz"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config          *config.Config
	Log             *zap.Logger
	Sessions        session.Store
	Policy          authz.Policy
	AccountHandler  *handler.AccountHandler
	ClientHandler   *handler.ClientHandler
	EmployeeHandler *handler.EmployeeHandler
	ProjectHandler  *handler.ProjectHandler
	ContractHandler *handler.ContractHandler
	InvoiceHandler  *handler.InvoiceHandler
	ReportHandler   *handler.ReportHandler
	UserHandler     *handler.UserHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	gate := func(resource string) gin.HandlerFunc {
		return middleware.RequireRoles(d.Policy, resource)
	}

	v1 := r.Group("/api/v1")
	{
		v1.Use(middleware.SessionLoad(d.Sessions, d.Config.Session.CookieName))

		account := v1.Group("/account")
		{
			account.POST("/login", d.AccountHandler.Login)
			account.GET("/logout", d.AccountHandler.Logout)
			account.GET("/access-denied", d.AccountHandler.AccessDenied)
		}

		clients := v1.Group("/clients", gate("clients"))
		{
			clients.GET("", d.ClientHandler.List)
			clients.POST("", d.ClientHandler.Create)
			clients.GET("/:id", d.ClientHandler.Get)
			clients.PUT("/:id", d.ClientHandler.Update)
			clients.DELETE("/:id", d.ClientHandler.Delete)
		}

		employees := v1.Group("/employees", gate("employees"))
		{
			employees.GET("", d.EmployeeHandler.List)
			employees.POST("", d.EmployeeHandler.Create)
			employees.GET("/:id", d.EmployeeHandler.Get)
			employees.PUT("/:id", d.EmployeeHandler.Update)
			employees.DELETE("/:id", d.EmployeeHandler.Delete)
		}

		projects := v1.Group("/projects")
		{
			// the employee-scoped listing has its own policy entry
			projects.GET("/mine", gate("projects:mine"), d.ProjectHandler.Mine)

			managed := projects.Group("", gate("projects"))
			{
				managed.GET("", d.ProjectHandler.List)
				managed.POST("", d.ProjectHandler.Create)
				managed.GET("/:id", d.ProjectHandler.Get)
				managed.PUT("/:id", d.ProjectHandler.Update)
				managed.DELETE("/:id", d.ProjectHandler.Delete)
				managed.POST("/:id/finish", d.ProjectHandler.Finish)
			}
		}

		contracts := v1.Group("/contracts", gate("contracts"))
		{
			contracts.GET("", d.ContractHandler.List)
			contracts.POST("", d.ContractHandler.Create)
			contracts.GET("/:id", d.ContractHandler.Get)
			contracts.PUT("/:id", d.ContractHandler.Update)
			contracts.DELETE("/:id", d.ContractHandler.Delete)
		}

		invoices := v1.Group("/invoices", gate("invoices"))
		{
			invoices.GET("", d.InvoiceHandler.List)
			invoices.POST("", d.InvoiceHandler.Create)
			invoices.GET("/:id", d.InvoiceHandler.Get)
			invoices.PUT("/:id", d.InvoiceHandler.Update)
			invoices.DELETE("/:id", d.InvoiceHandler.Delete)
		}

		reports := v1.Group("/reports")
		{
			// the client-scoped listing has its own policy entry
			reports.GET("/mine", gate("reports:mine"), d.ReportHandler.Mine)

			managed := reports.Group("", gate("reports"))
			{
				managed.GET("", d.ReportHandler.List)
				managed.POST("", d.ReportHandler.Create)
				managed.GET("/:id", d.ReportHandler.Get)
				managed.PUT("/:id", d.ReportHandler.Update)
				managed.DELETE("/:id", d.ReportHandler.Delete)
			}
		}

		users := v1.Group("/users", gate("users"))
		{
			users.GET("", d.UserHandler.List)
			users.POST("", d.UserHandler.Create)
			users.GET("/:id", d.UserHandler.Get)
			users.PUT("/:id", d.UserHandler.Update)
			users.DELETE("/:id", d.UserHandler.Delete)
		}
	}
	return r
}
