package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hhcc/internal/service"
)

// CatalogHandler serves the read-only reference data endpoints.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ListCareCenters godoc
// @Summary List care centers
// @Tags catalog
// @Produce json
// @Success 200 {object} Envelope
// @Router /care-centers [get]
func (h *CatalogHandler) ListCareCenters(c echo.Context) error {
	centers, err := h.svc.ListCareCenters(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", centers)
}

// GetCareCenter godoc
// @Summary Get a care center by id
// @Tags catalog
// @Produce json
// @Param id path int true "Care center ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /care-centers/{id} [get]
func (h *CatalogHandler) GetCareCenter(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid care center id")
	}

	center, err := h.svc.GetCareCenter(c.Request().Context(), uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", center)
}

// ListServices godoc
// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {object} Envelope
// @Router /services [get]
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.svc.ListServices(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", services)
}

// GetService godoc
// @Summary Get a service by id
// @Tags catalog
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} Envelope
// @Failure 404 {object} Envelope
// @Router /services/{id} [get]
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return respondBadRequest(c, "Invalid service id")
	}

	svc, err := h.svc.GetService(c.Request().Context(), uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return respondOK(c, http.StatusOK, "", svc)
}
