package cases

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"precinct/internal/auth"
	"precinct/internal/storage"
)

type Handler struct {
	service *Service
	files   *storage.R2Client
}

func NewHandler(service *Service, files *storage.R2Client) *Handler {
	return &Handler{service: service, files: files}
}

func isSupervisor(c *gin.Context) bool {
	role := c.GetString("userRole")
	return role == auth.RoleSupervisor || role == auth.RoleAdmin
}

// --------------------------------------------------
// Cases
// --------------------------------------------------

type createCaseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	SuspectName string `json:"suspect_name"`
}

func (h *Handler) CreateCase(c *gin.Context) {
	var req createCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	created, err := h.service.CreateCase(
		c.Request.Context(),
		c.GetString("userID"),
		req.Title,
		req.Description,
		req.SuspectName,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) ListCases(c *gin.Context) {
	all := c.Query("all") == "true" && isSupervisor(c)

	list, err := h.service.ListCases(c.Request.Context(), c.GetString("userID"), all)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list cases"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cases": list})
}

func (h *Handler) GetCase(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}

	found, err := h.service.GetCase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
		return
	}

	evidence, err := h.service.ListEvidence(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load evidence"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"case": found, "evidence": evidence})
}

type changeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}

	var req changeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.ChangeStatus(
		c.Request.Context(),
		id,
		c.GetString("userID"),
		isSupervisor(c),
		req.Status,
	)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotCaseOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// --------------------------------------------------
// Evidence
// --------------------------------------------------

func (h *Handler) UploadEvidence(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	if h.files == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "file storage is not configured"})
		return
	}

	key := fmt.Sprintf("evidence/%d/%s%s", id, uuid.New().String(), filepath.Ext(file.Filename))

	url, err := storage.UploadMultipartFile(c.Request.Context(), h.files, key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file"})
		return
	}

	e, err := h.service.AttachEvidence(c.Request.Context(), id, c.GetString("userID"), file.Filename, url)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, e)
}

// --------------------------------------------------
// Warrants
// --------------------------------------------------

type requestWarrantRequest struct {
	SuspectName string `json:"suspect_name"`
	Reason      string `json:"reason" binding:"required"`
}

func (h *Handler) RequestWarrant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid case id"})
		return
	}

	var req requestWarrantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	w, err := h.service.RequestWarrant(
		c.Request.Context(),
		id,
		c.GetString("userID"),
		req.SuspectName,
		req.Reason,
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *Handler) PendingWarrants(c *gin.Context) {
	list, err := h.service.PendingWarrants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list warrants"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"warrants": list})
}

type decideWarrantRequest struct {
	Note string `json:"note"`
}

func (h *Handler) ApproveWarrant(c *gin.Context) {
	h.decideWarrant(c, true)
}

func (h *Handler) RejectWarrant(c *gin.Context) {
	h.decideWarrant(c, false)
}

func (h *Handler) decideWarrant(c *gin.Context, approve bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid warrant id"})
		return
	}

	var req decideWarrantRequest
	_ = c.ShouldBindJSON(&req)

	w, err := h.service.DecideWarrant(c.Request.Context(), id, c.GetString("userID"), req.Note, approve)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, w)
}
