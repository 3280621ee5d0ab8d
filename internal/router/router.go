// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/handler"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently that is only the health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Login lives
// under /v1/auth and needs no session; logout and /v1/me require a
// valid access token of either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("OWNER", "CUSTOMER"),
	)
	auth.POST("/auth/logout", a.Logout)
	auth.GET("/me", a.Me)
}
