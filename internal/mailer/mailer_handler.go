package mailer

import (
	"io"
	"net/http"

	"go-recruit/internal/shared/apperror"
	"go-recruit/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const attachmentMaxBytes = 10 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("mailer.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("mail request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// SendCandidateResult accepts a multipart form: the result fields plus
// an optional "attachment" file.
func (h *Handler) SendCandidateResult(c *gin.Context) {
	agencyID := c.GetString("agency_id")

	var req CandidateResultMailRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	var attachment *Attachment
	if file, header, err := c.Request.FormFile("attachment"); err == nil {
		defer file.Close()
		if header.Size > attachmentMaxBytes {
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Attachment exceeds 10MB", nil)
			return
		}
		content, err := io.ReadAll(file)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		attachment = &Attachment{Filename: header.Filename, Content: content}
	}

	if err := h.service.SendCandidateResult(c.Request.Context(), agencyID, req, attachment); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true}, nil)
}

func (h *Handler) SendInvite(c *gin.Context) {
	var req InviteMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.SendInvite(c.Request.Context(), req.To, req.Name, req.TempPassword); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sent": true}, nil)
}
