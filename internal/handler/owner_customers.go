package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/model"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/state"
)

// customerView is the account shape returned to the owner. Password
// hashes never leave the server; the loyalty summary is derived on
// the fly from the purchase history.
type customerView struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	PurchaseCount int    `json:"purchase_count"`
	Points        int64  `json:"points"`
	Tier          string `json:"tier"`
}

func toCustomerView(c model.Customer) customerView {
	points := core.LoyaltyPoints(c.PurchaseHistory)
	return customerView{
		ID:            c.ID,
		Username:      c.Username,
		Name:          c.Name,
		PurchaseCount: len(c.PurchaseHistory),
		Points:        points,
		Tier:          core.TierFor(points),
	}
}

type createCustomerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type updateCustomerReq struct {
	Name     string `json:"name"`
	Password string `json:"password"` // empty keeps the current password
}

// ListCustomers handles GET /v1/owner/customers.
func (h *OwnerHandler) ListCustomers(c echo.Context) error {
	customers := h.State.Customers()
	items := make([]customerView, 0, len(customers))
	for _, cust := range customers {
		items = append(items, toCustomerView(cust))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateCustomer handles POST /v1/owner/customers. Usernames are
// unique case-insensitively: creating "Alice" when "alice" exists is
// a conflict.
func (h *OwnerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.State.AddCustomer(c.Request().Context(), req.Username, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, state.ErrDuplicateUsername):
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create customer"})
		}
	}
	return c.JSON(http.StatusCreated, toCustomerView(customer))
}

// UpdateCustomer handles PUT /v1/owner/customers/:id. The username is
// immutable; name and password can change.
func (h *OwnerHandler) UpdateCustomer(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	customer, err := h.State.UpdateCustomer(c.Request().Context(), id, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, state.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, core.ErrCustomerNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, toCustomerView(customer))
}

// DeleteCustomer handles DELETE /v1/owner/customers/:id. The account
// and its purchase history go together; aggregate statistics computed
// afterwards no longer include it.
func (h *OwnerHandler) DeleteCustomer(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.State.DeleteCustomer(c.Request().Context(), id); err != nil {
		if errors.Is(err, core.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
