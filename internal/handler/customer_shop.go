package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/config"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/queue"
	queue_publisher "github.com/jashanpratapsingh/story-shelf-manager/internal/service"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/state"
)

// CustomerHandler serves the shopping endpoints: browsing the
// catalog, purchasing, and reading back history and loyalty standing.
// JWT authentication and the CUSTOMER role gate run before any of
// these; the acting customer is always taken from the session, never
// from the request body.
type CustomerHandler struct {
	Cfg   config.Config
	State *state.Store
}

// NewCustomerHandler constructs a CustomerHandler and panics if the
// state container is nil.
func NewCustomerHandler(cfg config.Config, st *state.Store) *CustomerHandler {
	if st == nil {
		panic("nil state passed to NewCustomerHandler")
	}
	return &CustomerHandler{Cfg: cfg, State: st}
}

// ListBooks handles GET /v1/books: the browsable catalog.
func (h *CustomerHandler) ListBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": toBookViews(h.State.Books())})
}

type purchaseReq struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

type purchaseView struct {
	ID              string    `json:"id"`
	BookID          string    `json:"book_id"`
	BookTitle       string    `json:"book_title"`
	Quantity        int       `json:"quantity"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Date            time.Time `json:"date"`
}

// Purchase handles POST /v1/purchases. On success the stock decrement
// and the history append have both happened; on any failure neither
// has. A purchase event is published afterwards on a best-effort
// basis and never affects the response.
func (h *CustomerHandler) Purchase(c echo.Context) error {
	username, err := getUsername(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req purchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.BookID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "book_id is required"})
	}

	purchase, err := h.State.Purchase(c.Request().Context(), username, req.BookID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
		case errors.Is(err, core.ErrBookNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "book not found"})
		case errors.Is(err, core.ErrInsufficientStock):
			return c.JSON(http.StatusConflict, echo.Map{"error": "insufficient stock"})
		case errors.Is(err, core.ErrCustomerNotFound):
			// The session outlived its account.
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown customer"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "purchase failed"})
		}
	}

	if h.Cfg.QueueURL != "" {
		_ = queue_publisher.PublishPurchaseCompleted(c.Request().Context(), h.Cfg.QueueURL, queue.PurchaseCompletedEvent{
			PurchaseID:      purchase.ID,
			Username:        username,
			BookID:          purchase.BookID,
			BookTitle:       purchase.BookTitle,
			Quantity:        purchase.Quantity,
			TotalPriceCents: purchase.TotalPriceCents,
			PurchasedAt:     purchase.Date.Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, purchaseView(purchase))
}

// ListPurchases handles GET /v1/purchases: the acting customer's full
// history, oldest first, with the derived loyalty summary.
func (h *CustomerHandler) ListPurchases(c echo.Context) error {
	username, err := getUsername(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	customer, ok := h.State.CustomerByUsername(username)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown customer"})
	}
	items := make([]purchaseView, 0, len(customer.PurchaseHistory))
	for _, p := range customer.PurchaseHistory {
		items = append(items, purchaseView(p))
	}
	points := core.LoyaltyPoints(customer.PurchaseHistory)
	return c.JSON(http.StatusOK, echo.Map{
		"items":  items,
		"points": points,
		"tier":   core.TierFor(points),
	})
}

// GetLoyalty handles GET /v1/loyalty: just the point total and tier.
func (h *CustomerHandler) GetLoyalty(c echo.Context) error {
	username, err := getUsername(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	points, tier, err := h.State.Loyalty(username)
	if err != nil {
		if errors.Is(err, core.ErrCustomerNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unknown customer"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "loyalty lookup failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"points": points, "tier": tier})
}
