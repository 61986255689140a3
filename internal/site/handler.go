package site

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputahSaysNo/catz-court-booking/internal/api"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetSite godoc
// @Summary      Site settings
// @Tags         site
// @Produce      json
// @Success      200  {object}  Site
// @Failure      404  {object}  api.ErrorResponse
// @Router       /site [get]
func (h *Handler) GetSite(c *gin.Context) {
	s, err := h.repo.GetSite(c.Request.Context())
	if err != nil {
		if errors.Is(err, ErrSiteNotConfigured) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Site not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch site"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// UpdateSite godoc
// @Summary      Update site settings
// @Description  Creates or replaces the site record. Admin only.
// @Tags         site
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        site  body      UpdateSiteRequest  true  "Site"
// @Success      200   {object}  Site
// @Failure      400   {object}  api.ErrorResponse
// @Router       /site [put]
func (h *Handler) UpdateSite(c *gin.Context) {
	var req UpdateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	s, err := h.repo.UpsertSite(c.Request.Context(), req.Name, req.Description, req.LogoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update site"})
		return
	}

	c.JSON(http.StatusOK, s)
}
