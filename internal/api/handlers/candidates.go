package handlers

import (
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/storage/blob"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// maxImageSize bounds candidate picture uploads.
const maxImageSize = 5 << 20

// CandidateHandler holds dependencies for candidate operations.
type CandidateHandler struct {
	service   services.CandidateService
	validator *validation.Validator
}

// NewCandidateHandler creates a new CandidateHandler.
func NewCandidateHandler(service services.CandidateService, v *validation.Validator) *CandidateHandler {
	return &CandidateHandler{service: service, validator: v}
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Most recent application first, optionally filtered by search, stage and role.
// @Tags         candidates
// @Produce      json
// @Success      200 {array} models.Candidate
// @Router       /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	var req dto.ListCandidatesRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	candidates, err := h.service.ListCandidates(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "list candidates")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(candidates))
}

func (h *CandidateHandler) ListRoles(c *gin.Context) {
	roles, err := h.service.Roles(c.Request.Context())
	if err != nil {
		respondError(c, err, "list roles")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(roles))
}

func (h *CandidateHandler) GetCandidateByID(c *gin.Context) {
	candidate, err := h.service.GetCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve candidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

// CreateCandidate godoc
// @Summary      Add a candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate body dto.CreateCandidateRequest true "Candidate details"
// @Success      201 {object} models.Candidate
// @Failure      400 {object} map[string]any "Validation failed"
// @Router       /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	var req dto.CreateCandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.service.CreateCandidate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create candidate")
		return
	}
	c.JSON(http.StatusCreated, candidate)
}

func (h *CandidateHandler) UpdateCandidate(c *gin.Context) {
	var req dto.UpdateCandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.service.UpdateCandidate(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update candidate")
		return
	}
	c.JSON(http.StatusOK, candidate)
}

func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	if err := h.service.DeleteCandidate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete candidate")
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary      Upload a candidate picture
// @Description  Replaces any previous picture and returns its public URL.
// @Tags         candidates
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Candidate ID"
// @Param        file formData file true "Image file"
// @Success      200 {object} dto.UploadImageResponse
// @Router       /candidates/{id}/image [post]
func (h *CandidateHandler) UploadImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImageSize)

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file: " + err.Error()})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
		return
	}
	defer file.Close()

	contentType, err := blob.DetectContentType(file, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(), c.Param("id"), header.Filename, contentType, file)
	if err != nil {
		respondError(c, err, "upload image")
		return
	}
	c.JSON(http.StatusOK, dto.UploadImageResponse{ImageURL: url})
}
