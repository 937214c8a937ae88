package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/usage-billing-api/internal/api/dto"
	"github.com/kingrain94/usage-billing-api/internal/domain"
)

const defaultSearchSize = 5

//go:generate mockery --name TenantDocService --output ../mocks
type TenantDocService interface {
	Create(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error)
	UpdateEntries(ctx context.Context, tenantID, docName string, numEntries int) (*domain.TenantDoc, error)
	Delete(ctx context.Context, tenantID, docName string) error
	List(ctx context.Context, tenantID string) ([]domain.TenantDoc, error)
	Entries(ctx context.Context, tenantID, docName string) ([]domain.KnowledgeEntry, error)
	Search(ctx context.Context, tenantID, text string, size int) ([]domain.KnowledgeHit, error)
}

type TenantDocHandler struct {
	*BaseHandler
	service TenantDocService
}

func NewTenantDocHandler(service TenantDocService) *TenantDocHandler {
	return &TenantDocHandler{service: service}
}

// CreateDoc godoc
// @Summary Register an ingested document
// @Tags tenant_docs
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantDocRequest true "Document"
// @Success 201 {object} dto.TenantDocResponse
// @Failure 400 {object} dto.Error
// @Router /tenant_docs [post]
func (h *TenantDocHandler) CreateDoc(c *gin.Context) {
	var req dto.CreateTenantDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Create(h.RequestCtx(c), req.TenantID, req.DocName, req.NumEntries)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTenantDoc(doc))
}

// UpdateDoc godoc
// @Summary Update a document's entry count
// @Tags tenant_docs
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param doc_name path string true "Document name"
// @Param body body dto.UpdateTenantDocRequest true "Entry count"
// @Success 200 {object} dto.TenantDocResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /tenant_docs/{tenant_id}/{doc_name} [patch]
func (h *TenantDocHandler) UpdateDoc(c *gin.Context) {
	var req dto.UpdateTenantDocRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.UpdateEntries(h.RequestCtx(c), h.TenantID(c), c.Param("doc_name"), *req.NumEntries)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenantDoc(doc))
}

// DeleteDoc godoc
// @Summary Delete a document and its indexed entries
// @Tags tenant_docs
// @Param tenant_id path string true "Tenant ID"
// @Param doc_name path string true "Document name"
// @Success 204
// @Failure 404 {object} dto.Error
// @Router /tenant_docs/{tenant_id}/{doc_name} [delete]
func (h *TenantDocHandler) DeleteDoc(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), h.TenantID(c), c.Param("doc_name")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDocs godoc
// @Summary List a tenant's documents
// @Tags tenant_docs
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} dto.TenantDocResponse
// @Failure 404 {object} dto.Error
// @Router /tenant_docs/{tenant_id} [get]
func (h *TenantDocHandler) ListDocs(c *gin.Context) {
	docs, err := h.service.List(h.RequestCtx(c), h.TenantID(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenantDocs(docs))
}

// DocEntries godoc
// @Summary List the indexed entries of a document
// @Tags tenant_docs
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param doc_name path string true "Document name"
// @Success 200 {array} dto.KnowledgeEntryResponse
// @Failure 500 {object} dto.Error
// @Router /tenant_docs/{tenant_id}/{doc_name}/entries [get]
func (h *TenantDocHandler) DocEntries(c *gin.Context) {
	entries, err := h.service.Entries(h.RequestCtx(c), h.TenantID(c), c.Param("doc_name"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromKnowledgeEntries(entries))
}

// Search godoc
// @Summary Search a tenant's knowledge base
// @Tags knowledge
// @Produce json
// @Param tenant_id query string true "Tenant ID"
// @Param q query string true "Search text"
// @Param size query int false "Maximum hits" default(5)
// @Success 200 {array} dto.KnowledgeHitResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /knowledge/search [get]
func (h *TenantDocHandler) Search(c *gin.Context) {
	size, err := queryInt(c, "size", defaultSearchSize)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	hits, err := h.service.Search(h.RequestCtx(c), h.TenantID(c), c.Query("q"), size)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromKnowledgeHits(hits))
}
