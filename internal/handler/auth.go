package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jashanpratapsingh/story-shelf-manager/internal/config"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/core"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/middleware"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/state"
	"github.com/jashanpratapsingh/story-shelf-manager/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	State *state.Store
}

func NewAuthHandler(cfg config.Config, st *state.Store) *AuthHandler {
	if st == nil {
		panic("nil state passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, State: st}
}

// ----- DTOs -----

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type sessionPart struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
type authResp struct {
	Session sessionPart `json:"session"`
	Access  tokenPart   `json:"access"`
}

// Login validates credentials against the owner credential and the
// customer collection and returns an access token. Every failure case
// answers the same 401 so usernames cannot be probed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	session, err := h.State.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, core.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authentication failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, session.Username, session.Role, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Session: sessionPart{Username: session.Username, Role: session.Role},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout ends the session. Tokens are stateless, so the only work is
// a session-end save of both collections; an unreachable backend is
// logged by the state layer and does not fail the logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.State.Save(c.Request().Context()); err != nil {
		log.Printf("logout: save failed: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me echoes the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"username": c.Get(middleware.ContextUsername),
		"role":     c.Get(middleware.ContextRole),
	})
}
