package handler

import (
	"net/http"
	"strings"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// IdempotencyHeader lets clients retry an upload without a second credit
const IdempotencyHeader = "Idempotency-Key"

// multipartOverhead is allowed on top of the image for form fields and boundaries
const multipartOverhead = 1 << 20

// UploadHandler handles odometer uploads and their read views
type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
	maxImageBytes int64
	logger        coreport.Logger
}

// NewUploadHandler creates a new upload handler instance
func NewUploadHandler(uploadUseCase usecase.UploadUseCase, maxImageBytes int64, logger coreport.Logger) *UploadHandler {
	return &UploadHandler{
		uploadUseCase: uploadUseCase,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// SubmitUpload handles POST /api/upload. A replayed idempotency key
// answers 200 with the original upload instead of 201.
func (h *UploadHandler) SubmitUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+multipartOverhead)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, h.logger, "submit_upload", formFileError(err))
		return
	}
	defer file.Close()

	rawUserID := strings.TrimSpace(c.PostForm("userId"))
	if rawUserID == "" {
		respondInvalidID(c, "User ID is required")
		return
	}
	userID, err := parseID(rawUserID)
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	result, err := h.uploadUseCase.SubmitUpload(c.Request.Context(), usecase.SubmitUploadRequest{
		UserID:         userID,
		Filename:       header.Filename,
		Body:           file,
		IdempotencyKey: c.GetHeader(IdempotencyHeader),
	})
	if err != nil {
		respondError(c, h.logger, "submit_upload", err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, dto.NewUploadResponse(result.Upload))
}

// GetUpload handles GET /api/upload/:uploadId
func (h *UploadHandler) GetUpload(c *gin.Context) {
	uploadID, err := parseID(c.Param("uploadId"))
	if err != nil {
		respondInvalidID(c, "Invalid upload ID format")
		return
	}

	upload, err := h.uploadUseCase.GetUpload(c.Request.Context(), uploadID)
	if err != nil {
		respondError(c, h.logger, "get_upload", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUploadResponse(upload))
}

// ListUploads handles GET /api/uploads/:userId
func (h *UploadHandler) ListUploads(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	uploads, err := h.uploadUseCase.ListUploads(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list_uploads", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUploadListResponse(uploads))
}

// GetStats handles GET /api/stats/:userId
func (h *UploadHandler) GetStats(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	stats, err := h.uploadUseCase.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "get_stats", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsResponse(stats))
}
