package candidate

import (
	"net/http"
	"strconv"

	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"
	"go-recruit/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const avatarMaxBytes = 5 << 20

type Handler struct {
	service Service
	files   storage.Storage
	logger  *zap.Logger
}

func NewHandler(service Service, files storage.Storage, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("candidate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("candidate.handler")
	}
	return &Handler{service: service, files: files, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("candidate request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func parseCandidateID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid candidate id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var req CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), agencyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseCandidateID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), agencyID, id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseCandidateID(c)
	if !ok {
		return
	}

	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), agencyID, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseCandidateID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), agencyID, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// Directory answers GET /candidates with the full predicate set bound
// from the query string plus page/size.
func (h *Handler) Directory(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var f FilterState
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid filter parameters", err.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	items, total, err := h.service.Directory(c.Request.Context(), agencyID, f, page, size)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(int64(total), page, size)
	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) FilterOptions(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	opts, err := h.service.FilterOptions(c.Request.Context(), agencyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, opts, nil)
}

// UploadAvatar stores the photo through the storage backend and keeps
// its public URL on the candidate row.
func (h *Handler) UploadAvatar(c *gin.Context) {
	agencyID := c.GetString("agency_id")
	id, ok := parseCandidateID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Missing avatar file", nil)
		return
	}
	defer file.Close()

	if header.Size > avatarMaxBytes {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Avatar exceeds 5MB", nil)
		return
	}

	path := "avatars/" + id.String() + "/" + header.Filename
	url, err := h.files.Upload(c.Request.Context(), path, file)
	if err != nil {
		h.logger.Error("avatar upload failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.SetAvatar(c.Request.Context(), agencyID, id, url); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, nil)
}
