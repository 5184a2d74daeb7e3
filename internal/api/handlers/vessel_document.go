package handlers

import (
	"net/http"
	"strconv"

	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VesselDocumentHandler handles HTTP requests for vessel documents
type VesselDocumentHandler struct {
	service service.VesselDocumentServiceInterface
}

// NewVesselDocumentHandler creates a new vessel document handler
func NewVesselDocumentHandler(service service.VesselDocumentServiceInterface) *VesselDocumentHandler {
	return &VesselDocumentHandler{service: service}
}

// CreateDocument handles POST /api/v1/vessel-documents
// @Summary Create a vessel document
// @Tags vessel-documents
// @Accept json
// @Produce json
// @Param document body service.CreateVesselDocumentRequest true "Document data"
// @Success 201 {object} service.VesselDocumentResponse "Successfully created document"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessel-documents [post]
func (h *VesselDocumentHandler) CreateDocument(c *gin.Context) {
	var req service.CreateVesselDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doc, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// GetDocument handles GET /api/v1/vessel-documents/:id
// @Summary Get vessel document by ID
// @Tags vessel-documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.VesselDocumentResponse "Successfully retrieved document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessel-documents/{id} [get]
func (h *VesselDocumentHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	doc, err := h.service.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListByVessel handles GET /api/v1/vessels/:id/documents
// @Summary List documents of a vessel
// @Tags vessel-documents
// @Produce json
// @Param id path string true "Vessel ID (UUID)"
// @Success 200 {array} service.VesselDocumentResponse "Documents with expiration badges"
// @Failure 400 {object} map[string]interface{} "Invalid vessel ID"
// @Failure 404 {object} map[string]interface{} "Vessel not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessels/{id}/documents [get]
func (h *VesselDocumentHandler) ListByVessel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vessel ID: invalid UUID format"})
		return
	}

	docs, err := h.service.ListByVessel(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// ListExpiring handles GET /api/v1/vessel-documents/expiring
// @Summary List expiring documents
// @Description List documents fleet-wide that are expired or expire within the given days
// @Tags vessel-documents
// @Produce json
// @Param within query int false "Expiry horizon in days" default(60)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.VesselDocumentListResponse "Expiring documents"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessel-documents/expiring [get]
func (h *VesselDocumentHandler) ListExpiring(c *gin.Context) {
	withinDays, _ := strconv.Atoi(c.DefaultQuery("within", "60"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	docs, err := h.service.ListExpiring(withinDays, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list expiring documents", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// UpdateDocument handles PUT /api/v1/vessel-documents/:id
// @Summary Update a vessel document
// @Tags vessel-documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param document body service.UpdateVesselDocumentRequest true "Fields to update"
// @Success 200 {object} service.VesselDocumentResponse "Successfully updated document"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessel-documents/{id} [put]
func (h *VesselDocumentHandler) UpdateDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	var req service.UpdateVesselDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	doc, err := h.service.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// DeleteDocument handles DELETE /api/v1/vessel-documents/:id
// @Summary Delete a vessel document
// @Tags vessel-documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 204 "Document deleted"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /vessel-documents/{id} [delete]
func (h *VesselDocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid document ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
