package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerCategoryRoutes(g *echo.Group) {
	g.GET("/categories", listCategories)
	g.GET("/categories/:id", getCategory)
}

func listCategories(c echo.Context) error {
	categories, err := GetStorage(c).GetCategories(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func getCategory(c echo.Context) error {
	category, err := GetStorage(c).GetCategory(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch category")
	}
	if category == nil {
		return fail(c, http.StatusNotFound, "Category not found")
	}
	return c.JSON(http.StatusOK, category)
}
