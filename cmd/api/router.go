package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookong/internal/shared/middleware"
	"bookong/internal/shared/response"
	"bookong/pkg/container"
)

// NewRouter builds the HTTP surface. Form pages and every mutating
// endpoint sit behind the session gate; reads are public.
func NewRouter(c *container.Container) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.LoadSession(c.Config.Session.CookieName, c.Tokens, c.Sessions))

	r.GET("/health", func(ctx *gin.Context) {
		if err := c.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/dashboard")
	})

	auth := r.Group("/auth")
	{
		auth.GET("/login", c.AuthHandler.LoginForm)
		auth.POST("/login", c.AuthHandler.Login)
		auth.GET("/logout", c.AuthHandler.Logout)
		auth.GET("/me", middleware.RequireSession(), c.AuthHandler.Me)
	}

	r.GET("/dashboard", middleware.RequireSession(), c.DashboardHandler.Overview)

	books := r.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/add", middleware.RequireSession(), c.BookHandler.AddForm)
		books.POST("/add", middleware.RequireSession(), c.BookHandler.Add)
		books.GET("/import", middleware.RequireSession(), c.ImportHandler.Form)
		books.POST("/import", middleware.RequireSession(), c.ImportHandler.Import)
		books.GET("/import/template", middleware.RequireSession(), c.ImportHandler.Template)
		books.GET("/export", middleware.RequireSession(), c.BookHandler.Export)
		books.GET("/:id", c.BookHandler.Detail)
		books.GET("/:id/qrcode", c.BookHandler.QRCode)
	}

	warehouses := r.Group("/warehouses")
	{
		warehouses.GET("", c.WarehouseHandler.List)
		warehouses.GET("/add", middleware.RequireSession(), c.WarehouseHandler.AddForm)
		warehouses.POST("/add", middleware.RequireSession(), c.WarehouseHandler.Add)
		warehouses.DELETE("/:id", middleware.RequireSession(), c.WarehouseHandler.Delete)
	}

	return r
}
