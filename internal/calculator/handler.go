package calculator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"precinct/internal/penalcode"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, penalcode.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// --------------------------------------------------
// Stateless computation
// --------------------------------------------------

type summaryRequest struct {
	Lines        []LineInput `json:"lines"`
	IsAccomplice bool        `json:"is_accomplice"`
}

func (h *Handler) Summary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	sum, err := h.service.Summary(req.Lines, req.IsAccomplice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sum)
}

type commandsRequest struct {
	Lines        []LineInput `json:"lines"`
	IsAccomplice bool        `json:"is_accomplice"`
	SuspectID    string      `json:"suspect_id"`
	Fine         *int        `json:"fine"`
	Jail         *int        `json:"jail"`
}

func (h *Handler) Commands(c *gin.Context) {
	var req commandsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	cmds, sum, err := h.service.Commands(req.Lines, CommandOptions{
		SuspectID:    req.SuspectID,
		Fine:         req.Fine,
		Jail:         req.Jail,
		IsAccomplice: req.IsAccomplice,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"commands": cmds,
		"summary":  sum,
	})
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (h *Handler) GetHistory(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{"history": h.service.History(c.Request.Context(), userID)})
}

type saveHistoryRequest struct {
	Lines        []SnapshotLine `json:"lines"`
	SuspectID    string         `json:"suspect_id"`
	SuspectName  string         `json:"suspect_name"`
	IsAccomplice bool           `json:"is_accomplice"`
	Fine         int            `json:"fine"`
	Jail         int            `json:"jail"`
}

func (h *Handler) SaveHistory(c *gin.Context) {
	var req saveHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := c.GetString("userID")
	history, err := h.service.SaveHistory(c.Request.Context(), userID, Snapshot{
		Lines:        req.Lines,
		SuspectID:    req.SuspectID,
		SuspectName:  req.SuspectName,
		IsAccomplice: req.IsAccomplice,
		Fine:         req.Fine,
		Jail:         req.Jail,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"history": history})
}

// --------------------------------------------------
// Favorites
// --------------------------------------------------

func (h *Handler) GetFavorites(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{"favorites": h.service.Favorites(c.Request.Context(), userID)})
}

func (h *Handler) ToggleFavorite(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	userID := c.GetString("userID")
	favorites, nowFavorite, err := h.service.ToggleFavorite(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"favorites": favorites,
		"favorite":  nowFavorite,
	})
}

// --------------------------------------------------
// Templates
// --------------------------------------------------

func (h *Handler) GetTemplates(c *gin.Context) {
	userID := c.GetString("userID")
	c.JSON(http.StatusOK, gin.H{"templates": h.service.Templates(c.Request.Context(), userID)})
}

type saveTemplateRequest struct {
	Name  string      `json:"name"`
	Lines []LineInput `json:"lines"`
}

func (h *Handler) SaveTemplate(c *gin.Context) {
	var req saveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := c.GetString("userID")
	template, err := h.service.SaveTemplate(c.Request.Context(), userID, req.Name, req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, template)
}

func (h *Handler) DeleteTemplate(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.service.DeleteTemplate(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type applyTemplateRequest struct {
	Lines []LineInput `json:"lines"`
}

func (h *Handler) ApplyTemplate(c *gin.Context) {
	var req applyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID := c.GetString("userID")
	lines, err := h.service.ApplyTemplate(c.Request.Context(), userID, c.Param("id"), req.Lines)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lines": lines})
}
