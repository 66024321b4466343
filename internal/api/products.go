package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// registerProductRoutes registers catalog browsing and search endpoints
func registerProductRoutes(g *echo.Group) {
	g.GET("/products", listProducts)
	g.GET("/products/:id", getProduct)
	g.GET("/products/category/:category", listProductsByCategory)
	g.GET("/products/specialty/:specialty", listProductsBySpecialty)
	g.GET("/search", searchProducts)
}

func listProducts(c echo.Context) error {
	products, err := GetStorage(c).GetProducts(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch products")
	}
	return c.JSON(http.StatusOK, products)
}

func getProduct(c echo.Context) error {
	product, err := GetStorage(c).GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch product")
	}
	if product == nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return c.JSON(http.StatusOK, product)
}

func listProductsByCategory(c echo.Context) error {
	products, err := GetStorage(c).GetProductsByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch products by category")
	}
	return c.JSON(http.StatusOK, products)
}

func listProductsBySpecialty(c echo.Context) error {
	products, err := GetStorage(c).GetProductsBySpecialty(c.Request().Context(), c.Param("specialty"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch products by specialty")
	}
	return c.JSON(http.StatusOK, products)
}

func searchProducts(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return fail(c, http.StatusBadRequest, "Search query is required")
	}
	products, err := GetStorage(c).SearchProducts(c.Request().Context(), query)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Search failed")
	}
	return c.JSON(http.StatusOK, products)
}
