package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// ItemHandler implements the demo CRUD endpoints. Nothing is persisted;
// responses echo the request, matching the illustrative endpoints the
// frontend exercises during development.
type ItemHandler struct{}

// NewItemHandler creates a new item handler.
func NewItemHandler() *ItemHandler {
	return &ItemHandler{}
}

// Item is a demo entity.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// List godoc
// @Summary List demo items
// @Tags items
// @Produce json
// @Success 200 {object} Envelope
// @Router /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	return respondOK(c, http.StatusOK, "", []Item{
		{ID: 1, Name: "Item 1"},
		{ID: 2, Name: "Item 2"},
		{ID: 3, Name: "Item 3"},
	})
}

// Get godoc
// @Summary Get a demo item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} Envelope
// @Router /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid item id")
	}
	return respondOK(c, http.StatusOK, "", Item{ID: id, Name: "Item " + c.Param("id")})
}

// Create godoc
// @Summary Create a demo item
// @Tags items
// @Accept json
// @Produce json
// @Param item body Item true "Item"
// @Success 201 {object} Envelope
// @Router /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var item Item
	if err := c.Bind(&item); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	item.ID = time.Now().UnixMilli()
	return respondOK(c, http.StatusCreated, "", item)
}

// Update godoc
// @Summary Update a demo item
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param item body Item true "Item"
// @Success 200 {object} Envelope
// @Router /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return respondBadRequest(c, "Invalid item id")
	}
	var item Item
	if err := c.Bind(&item); err != nil {
		return respondBadRequest(c, "Invalid request body")
	}
	item.ID = id
	return respondOK(c, http.StatusOK, "", item)
}

// Delete godoc
// @Summary Delete a demo item
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} Envelope
// @Router /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if _, err := strconv.ParseInt(c.Param("id"), 10, 64); err != nil {
		return respondBadRequest(c, "Invalid item id")
	}
	return respondOK(c, http.StatusOK, "Item "+c.Param("id")+" deleted successfully", nil)
}
