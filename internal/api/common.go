// Package api maps the HTTP surface onto the storage contract. Handlers are
// the only place absence turns into status codes; the store itself never
// decides HTTP semantics.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lauremed/catalog/internal/storage"
)

const storageContextKey = "api.storage"

// Register mounts every route under /api and injects the store into the
// request context so handlers stay free functions, matching the rest of
// the route tables.
func Register(e *echo.Echo, store storage.Storage) {
	g := e.Group("/api")
	g.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(storageContextKey, store)
			return next(c)
		}
	})

	g.GET("/health", getHealth)
	registerProductRoutes(g)
	registerCategoryRoutes(g)
	registerSpecialtyRoutes(g)
	registerCartRoutes(g)
}

// GetStorage returns the store injected by Register.
func GetStorage(c echo.Context) storage.Storage {
	return c.Get(storageContextKey).(storage.Storage)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

func getHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
