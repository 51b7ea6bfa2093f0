package academy

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

type createTrainingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

func (h *Handler) CreateTraining(c *gin.Context) {
	var req createTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, err := h.service.CreateTraining(c.Request.Context(), c.GetString("userID"), req.Title, req.Description, req.Mandatory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, t)
}

func (h *Handler) ListTrainings(c *gin.Context) {
	list, err := h.service.ListTrainings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trainings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"trainings": list})
}

func (h *Handler) Enroll(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training id"})
		return
	}

	e, err := h.service.Enroll(c.Request.Context(), id, c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrAlreadyEnrolled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enroll"})
		}
		return
	}

	c.JSON(http.StatusCreated, e)
}

func (h *Handler) ListEnrollments(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid training id"})
		return
	}

	list, err := h.service.Enrollments(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list enrollments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"enrollments": list})
}

type completeRequest struct {
	Score int `json:"score"`
}

func (h *Handler) Complete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid enrollment id"})
		return
	}

	var req completeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	e, err := h.service.Complete(c.Request.Context(), id, c.GetString("userID"), req.Score)
	if err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound), errors.Is(err, ErrTrainingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotInstructor):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, e)
}
