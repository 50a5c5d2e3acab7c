package crm

import (
	"net/http"
	"strconv"

	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("crm.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("crm.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("crm request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseParamID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) CreateCompany(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateCompany(c.Request.Context(), agencyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetCompany(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetCompany(c.Request.Context(), agencyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdateCompany(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeleteCompany(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCompany(c.Request.Context(), agencyID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ListCompanies(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	q := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	items, total, err := h.service.ListCompanies(c.Request.Context(), agencyID, q, page, size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) AddContact(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	companyID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.AddContact(c.Request.Context(), agencyID, companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListContacts(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	companyID, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListContacts(c.Request.Context(), agencyID, companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "contactId")
	if !ok {
		return
	}

	if err := h.service.DeleteContact(c.Request.Context(), agencyID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreatePosition(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var req CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreatePosition(c.Request.Context(), agencyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetPosition(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	resp, err := h.service.GetPosition(c.Request.Context(), agencyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdatePosition(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var req UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdatePosition(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeletePosition(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeletePosition(c.Request.Context(), agencyID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) ListPositions(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	var companyID *uuid.UUID
	if raw := c.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid company id", nil)
			return
		}
		companyID = &id
	}

	items, total, err := h.service.ListPositions(c.Request.Context(), agencyID, companyID, page, size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) AssignConsultant(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var req AssignConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.AssignConsultant(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddPoolCandidate(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	var req AddPoolCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.AddPoolCandidate(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListPool(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "id")
	if !ok {
		return
	}

	items, err := h.service.ListPool(c.Request.Context(), agencyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) UpdatePoolResult(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseParamID(c, "entryId")
	if !ok {
		return
	}

	var req UpdatePoolResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdatePoolResult(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
