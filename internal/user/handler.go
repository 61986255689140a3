package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputahSaysNo/catz-court-booking/internal/api"
	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary      Register user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user  body      RegisterRequest  true  "Registration"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  api.ErrorResponse
// @Failure      409   {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, accessToken, refreshToken, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		User:         u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  AuthResponse
// @Failure      401          {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	u, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:         u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  body      RefreshRequest  true  "Refresh token"
// @Success      200    {object}  AuthResponse
// @Failure      401    {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	accessToken, u, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		User:        u,
		AccessToken: accessToken,
	})
}

// GetMe godoc
// @Summary      Current user
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      404  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	ident := auth.GetIdentity(c)
	if !ident.Authenticated {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// GetSession godoc
// @Summary      Session info
// @Description  Reports whether the request credential resolves to a user.
//               Anonymous requests get is_authenticated=false.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  SessionInfo
// @Router       /session [get]
func (h *Handler) GetSession(c *gin.Context) {
	ident := auth.GetIdentity(c)
	if !ident.Authenticated {
		c.JSON(http.StatusOK, SessionInfo{IsAuthenticated: false})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		// Token refers to a user that no longer exists.
		c.JSON(http.StatusOK, SessionInfo{IsAuthenticated: false})
		return
	}

	c.JSON(http.StatusOK, SessionInfo{IsAuthenticated: true, User: u})
}
