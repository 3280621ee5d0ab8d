// Package handler exposes the HTTP surface of the bookstore: auth,
// owner management endpoints and customer shopping endpoints. All
// handlers speak JSON and translate core sentinel errors into HTTP
// status codes.
package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
)

// getUsername extracts the authenticated username from the context.
// JWTAuth stores the JWT subject claim there; anything else means the
// middleware did not run or the token was malformed.
func getUsername(c echo.Context) (string, error) {
	v, ok := c.Get(middleware.ContextUsername).(string)
	if !ok || v == "" {
		return "", errors.New("invalid username in context")
	}
	return v, nil
}

// bookView is the catalog entry shape returned by the API.
type bookView struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

func toBookView(b model.Book) bookView {
	return bookView{ID: b.ID, Title: b.Title, Author: b.Author, PriceCents: b.PriceCents, Quantity: b.Quantity}
}

func toBookViews(books []model.Book) []bookView {
	out := make([]bookView, 0, len(books))
	for _, b := range books {
		out = append(out, toBookView(b))
	}
	return out
}
