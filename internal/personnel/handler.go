package personnel

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type addOfficerRequest struct {
	UserID   *string `json:"user_id"`
	Name     string  `json:"name" binding:"required"`
	Badge    string  `json:"badge" binding:"required"`
	Rank     string  `json:"rank"`
	Division string  `json:"division"`
}

func (h *Handler) AddOfficer(c *gin.Context) {
	var req addOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.AddOfficer(c.Request.Context(), req.UserID, req.Name, req.Badge, req.Rank, req.Division)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *Handler) ListRoster(c *gin.Context) {
	roster, err := h.service.ListRoster(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list roster"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"personnel": roster})
}

func (h *Handler) GetOfficer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid officer id"})
		return
	}

	o, err := h.service.GetOfficer(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "officer not found"})
		return
	}

	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateOfficer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid officer id"})
		return
	}

	var patch OfficerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.UpdateOfficer(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrOfficerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update officer"})
		}
		return
	}

	c.JSON(http.StatusOK, o)
}
