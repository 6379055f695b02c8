package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing

	"github.com/iliyamo/user-item-service/internal/handler"    // handlers implementing the endpoints
	"github.com/iliyamo/user-item-service/internal/middleware" // JWT auth and response cache middleware
)

// Register wires every route of the API onto the provided Echo instance.
//
// Registration and login are the only endpoints reachable without a token.
// Everything else sits behind the JWT middleware: the claim echo endpoint,
// user management and the item CRUD. Paths are flat (no version prefix) to
// stay compatible with existing clients. The optional cacheGET middleware
// is applied to the list endpoints only; pass a passthrough when caching
// is disabled.
func Register(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, i *handler.ItemHandler, jwtSecret string, cacheGET echo.MiddlewareFunc) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Unauthenticated: account creation and credential exchange.
	e.POST("/register", a.Register)
	e.POST("/login", a.Login)

	auth := middleware.JWTAuth(jwtSecret)

	// Token check endpoint; echoes the verified claims.
	e.GET("/protected", a.Protected, auth)

	// User management.
	e.GET("/users", u.List, auth, cacheGET)
	e.GET("/users/:id", u.Get, auth)
	e.PUT("/users/:id", u.Update, auth)
	e.DELETE("/users/:id", u.Delete, auth)

	// Item CRUD.
	e.POST("/items", i.Create, auth)
	e.GET("/items", i.List, auth, cacheGET)
	e.GET("/items/:id", i.Get, auth)
	e.PUT("/items/:id", i.Update, auth)
	e.DELETE("/items/:id", i.Delete, auth)
}
