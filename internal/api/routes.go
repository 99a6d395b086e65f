package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stockroom/internal/api/handlers"
	"stockroom/internal/repository"
	"stockroom/internal/storage"
)

func SetupRoutes(e *echo.Echo, repo *repository.InventoryRepository, photos *storage.PhotoStore) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()
	e.HTTPErrorHandler = errorHandler(e)

	e.Static("/forms", "web/static")

	inventoryHandler := handlers.NewInventoryHandler(repo, photos)
	e.POST("/register", inventoryHandler.Register)
	e.GET("/inventory", inventoryHandler.List)
	e.GET("/inventory/:id", inventoryHandler.Get)
	e.PUT("/inventory/:id", inventoryHandler.Update)
	e.DELETE("/inventory/:id", inventoryHandler.Delete)
	e.GET("/inventory/:id/photo", inventoryHandler.GetPhoto)
	e.PUT("/inventory/:id/photo", inventoryHandler.ReplacePhoto)
	e.POST("/search", inventoryHandler.Search)
}

// errorHandler keeps Echo's default behavior except for 405, which goes out
// as plain text.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusMethodNotAllowed {
			if !c.Response().Committed {
				_ = c.String(http.StatusMethodNotAllowed, "method not allowed")
			}
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
