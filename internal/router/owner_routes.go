package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/handler"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
)

// RegisterOwner registers OWNER-scoped endpoints under /v1/owner.
// All routes require a valid JWT and the OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
	g := e.Group(
		"/v1/owner",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER"),
	)

	// ---- Catalog ----
	g.GET("/books", o.ListBooks)
	g.POST("/books", o.CreateBook)
	g.PUT("/books/:id", o.UpdateBook)
	g.PATCH("/books/:id", o.UpdateBook)
	g.DELETE("/books/:id", o.DeleteBook)

	// ---- Customer accounts ----
	g.GET("/customers", o.ListCustomers)
	g.POST("/customers", o.CreateCustomer)
	g.PUT("/customers/:id", o.UpdateCustomer)
	g.PATCH("/customers/:id", o.UpdateCustomer)
	g.DELETE("/customers/:id", o.DeleteCustomer)

	// ---- Sales statistics ----
	g.GET("/stats", o.GetStats)
}
