package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lauremed/catalog/internal/domain"
)

type cartUpdatePayload struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func registerCartRoutes(g *echo.Group) {
	g.GET("/cart/:userId", listCartItems)
	g.POST("/cart", addToCart)
	g.PUT("/cart/:id", updateCartItem)
	g.DELETE("/cart/:id", removeFromCart)
}

func listCartItems(c echo.Context) error {
	items, err := GetStorage(c).GetCartItems(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch cart items")
	}
	return c.JSON(http.StatusOK, items)
}

func addToCart(c echo.Context) error {
	var payload domain.InsertCartItem
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}
	item, err := GetStorage(c).AddToCart(c.Request().Context(), payload)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to add item to cart")
	}
	return c.JSON(http.StatusOK, item)
}

func updateCartItem(c echo.Context) error {
	var payload cartUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return err
	}
	if err := c.Validate(&payload); err != nil {
		return err
	}
	item, err := GetStorage(c).UpdateCartItem(c.Request().Context(), c.Param("id"), payload.Quantity)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to update cart item")
	}
	if item == nil {
		return fail(c, http.StatusNotFound, "Cart item not found")
	}
	return c.JSON(http.StatusOK, item)
}

func removeFromCart(c echo.Context) error {
	removed, err := GetStorage(c).RemoveFromCart(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to remove cart item")
	}
	if !removed {
		return fail(c, http.StatusNotFound, "Cart item not found")
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
