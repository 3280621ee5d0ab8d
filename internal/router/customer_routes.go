package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/handler"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1. All
// routes require a valid JWT and the CUSTOMER role. Customers can
// browse the catalog, purchase books, and read back their own
// purchase history and loyalty standing.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("CUSTOMER"),
	)
	g.GET("/books", h.ListBooks)
	g.POST("/purchases", h.Purchase)
	g.GET("/purchases", h.ListPurchases)
	g.GET("/loyalty", h.GetLoyalty)
}
