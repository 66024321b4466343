package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerSpecialtyRoutes(g *echo.Group) {
	g.GET("/specialties", listSpecialties)
	g.GET("/specialties/:id", getSpecialty)
}

func listSpecialties(c echo.Context) error {
	specialties, err := GetStorage(c).GetSpecialties(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch specialties")
	}
	return c.JSON(http.StatusOK, specialties)
}

func getSpecialty(c echo.Context) error {
	specialty, err := GetStorage(c).GetSpecialty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to fetch specialty")
	}
	if specialty == nil {
		return fail(c, http.StatusNotFound, "Specialty not found")
	}
	return c.JSON(http.StatusOK, specialty)
}
