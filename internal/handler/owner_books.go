package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/state"
)

// OwnerHandler groups the state container for the owner-only
// management endpoints. JWT authentication and the OWNER role gate
// are applied by middleware before any of these run.
type OwnerHandler struct {
	State *state.Store
}

// NewOwnerHandler constructs an OwnerHandler and panics if the state
// container is nil.
func NewOwnerHandler(st *state.Store) *OwnerHandler {
	if st == nil {
		panic("nil state passed to NewOwnerHandler")
	}
	return &OwnerHandler{State: st}
}

type bookReq struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// ListBooks handles GET /v1/owner/books and returns the full catalog.
func (h *OwnerHandler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": toBookViews(h.State.Books())})
}

// CreateBook handles POST /v1/owner/books.
func (h *OwnerHandler) CreateBook(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	book, err := h.State.AddBook(c.Request().Context(), req.Title, req.Author, req.PriceCents, req.Quantity)
	if err != nil {
		if errors.Is(err, state.ErrValidation) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create book"})
	}
	return c.JSON(http.StatusCreated, toBookView(book))
}

// UpdateBook handles PUT /v1/owner/books/:id and replaces the book's
// editable fields. Past purchases keep the title they were made
// under.
func (h *OwnerHandler) UpdateBook(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	book, err := h.State.UpdateBook(c.Request().Context(), id, req.Title, req.Author, req.PriceCents, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, core.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, toBookView(book))
}

// DeleteBook handles DELETE /v1/owner/books/:id.
func (h *OwnerHandler) DeleteBook(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.State.DeleteBook(c.Request().Context(), id); err != nil {
		if errors.Is(err, core.ErrBookNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
