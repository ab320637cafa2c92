// Package router defines how HTTP routes are registered for the API.
package router

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/acara-ticketing/internal/handler"
	"github.com/iliyamo/acara-ticketing/internal/middleware"
	"github.com/iliyamo/acara-ticketing/internal/model"
	"github.com/iliyamo/acara-ticketing/internal/response"
	"github.com/iliyamo/acara-ticketing/internal/utils"
)

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Health     echo.HandlerFunc
	Auth       *handler.AuthHandler
	Categories *handler.CategoryHandler
	Events     *handler.EventHandler
	Tickets    *handler.TicketHandler
	Orders     *handler.OrderHandler
}

// Guards carries the middleware applied per route group.  Nil entries are
// skipped.
type Guards struct {
	Tokens     *utils.TokenIssuer
	RateLimit  echo.MiddlewareFunc // register, login and activation
	Cache      echo.MiddlewareFunc // public catalogue reads
	Invalidate echo.MiddlewareFunc // admin catalogue writes
}

// New builds the Echo instance with every route registered.
func New(log *slog.Logger, h Handlers, g Guards) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = response.HTTPErrorHandler(log)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger(log))

	RegisterRoutes(e, h.Health)

	api := e.Group("/api")
	RegisterAuth(api, h.Auth, g)
	RegisterCatalog(api, h, g)
	RegisterOrders(api, h.Orders, g)
	return e
}

// RegisterRoutes registers routes that do not require authentication and
// live outside /api.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo, health echo.HandlerFunc) {
	if health != nil {
		e.GET("/healthz", health)
	}
}

// RegisterAuth mounts /auth.  Account creation and sign-in are rate
// limited; profile routes require a token.
func RegisterAuth(api *echo.Group, a *handler.AuthHandler, g Guards) {
	auth := api.Group("/auth")
	limited := use(g.RateLimit)
	auth.POST("/register", a.Register, limited...)
	auth.POST("/login", a.Login, limited...)
	auth.POST("/activation", a.Activation, limited...)

	jwt := middleware.JWTAuth(g.Tokens)
	auth.GET("/me", a.Me, jwt)
	auth.PUT("/update-profile", a.UpdateProfile, jwt)
	auth.PUT("/update-password", a.UpdatePassword, jwt)
}

// RegisterCatalog mounts categories, events and tickets.  Reads are public
// and cached; writes are admin only and flush the cache.
func RegisterCatalog(api *echo.Group, h Handlers, g Guards) {
	read := use(g.Cache)
	write := append([]echo.MiddlewareFunc{
		middleware.JWTAuth(g.Tokens),
		middleware.RequireRole(model.RoleAdmin),
	}, use(g.Invalidate)...)

	cat := api.Group("/categories")
	cat.GET("", h.Categories.FindAll, read...)
	cat.GET("/:id", h.Categories.FindOne, read...)
	cat.POST("", h.Categories.Create, write...)
	cat.PUT("/:id", h.Categories.Update, write...)
	cat.DELETE("/:id", h.Categories.Remove, write...)

	ev := api.Group("/events")
	ev.GET("", h.Events.FindAll, read...)
	ev.GET("/slug/:slug", h.Events.FindOneBySlug, read...)
	ev.GET("/:id", h.Events.FindOne, read...)
	ev.POST("", h.Events.Create, write...)
	ev.PUT("/:id", h.Events.Update, write...)
	ev.DELETE("/:id", h.Events.Remove, write...)

	tk := api.Group("/tickets")
	tk.GET("", h.Tickets.FindAll, read...)
	tk.GET("/by-event/:eventId", h.Tickets.FindAllByEvent, read...)
	tk.GET("/:id", h.Tickets.FindOne, read...)
	tk.POST("", h.Tickets.Create, write...)
	tk.PUT("/:id", h.Tickets.Update, write...)
	tk.DELETE("/:id", h.Tickets.Remove, write...)
}

// RegisterOrders mounts the order routes.  Members place orders and read
// their history; admins list and settle them.
func RegisterOrders(api *echo.Group, o *handler.OrderHandler, g Guards) {
	jwt := middleware.JWTAuth(g.Tokens)
	member := middleware.RequireRole(model.RoleMember)
	admin := middleware.RequireRole(model.RoleAdmin)

	api.POST("/orders", o.Create, jwt, member)
	api.GET("/orders", o.FindAll, jwt, admin)
	api.GET("/orders/:orderId", o.FindOne, jwt)
	api.GET("/orders-history", o.History, jwt, member)
	api.PUT("/orders/:orderId/completed", o.Complete, jwt, admin)
	api.PUT("/orders/:orderId/cancelled", o.Cancel, jwt, admin)
}

func use(mw echo.MiddlewareFunc) []echo.MiddlewareFunc {
	if mw == nil {
		return nil
	}
	return []echo.MiddlewareFunc{mw}
}
