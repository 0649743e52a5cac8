package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tourbase/tourbase/internal/dto"
	"github.com/tourbase/tourbase/internal/service"
	"github.com/tourbase/tourbase/pkg/middleware"
	"github.com/tourbase/tourbase/pkg/response"
)

// TourHandler handles tour HTTP requests
type TourHandler struct {
	tourService service.TourService
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tourService service.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// List handles retrieving a tenant's tours, newest first
// GET /api/v1/tenants/:tenantID/tours
func (h *TourHandler) List(c *gin.Context) {
	tenantID := c.Param("tenantID")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Tenant ID is required"))
		return
	}

	result, err := h.tourService.List(c.Request.Context(), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// GetBySlug handles retrieving a tour by its tenant-scoped slug
// GET /api/v1/tenants/:tenantID/tours/:slug
func (h *TourHandler) GetBySlug(c *gin.Context) {
	tenantID := c.Param("tenantID")
	slug := c.Param("slug")
	if tenantID == "" || slug == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Tenant ID and slug are required"))
		return
	}

	result, err := h.tourService.GetBySlug(c.Request.Context(), tenantID, slug)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Tour not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// Create handles tour creation
// POST /api/v1/tenants/:tenantID/tours
func (h *TourHandler) Create(c *gin.Context) {
	tenantID := c.Param("tenantID")
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Tenant ID is required"))
		return
	}

	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.tourService.Create(c.Request.Context(), tenantID, &req, actorFrom(c))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateSlug, "A tour with this slug already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(result))
}

// Update handles partial tour update
// PATCH /api/v1/tenants/:tenantID/tours/:tourID
func (h *TourHandler) Update(c *gin.Context) {
	tenantID := c.Param("tenantID")
	tourID := c.Param("tourID")
	if tenantID == "" || tourID == "" {
		c.JSON(http.StatusBadRequest, response.BadRequest("Tenant ID and tour ID are required"))
		return
	}

	var req dto.UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.tourService.Update(c.Request.Context(), tenantID, tourID, &req, actorFrom(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			c.JSON(http.StatusNotFound, response.NotFound("Tour not found"))
		case errors.Is(err, service.ErrEmptyPatch):
			c.JSON(http.StatusBadRequest, response.Error(response.ErrCodeEmptyPatch, "Update carries no changes"))
		case errors.Is(err, service.ErrDuplicateSlug):
			c.JSON(http.StatusConflict, response.Error(response.ErrCodeDuplicateSlug, "A tour with this slug already exists"))
		default:
			c.JSON(http.StatusInternalServerError, response.InternalError(err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// actorFrom builds the audit actor from the authenticated request
func actorFrom(c *gin.Context) service.Actor {
	actor := service.Actor{IPAddress: c.ClientIP()}
	if userID, ok := middleware.GetUserID(c); ok && userID != "" {
		actor.UserID = &userID
	}
	return actor
}
