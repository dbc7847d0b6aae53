package handler

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles onboarding and profile requests
type UserHandler struct {
	userUseCase   usecase.UserUseCase
	maxImageBytes int64
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase usecase.UserUseCase, maxImageBytes int64, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase:   userUseCase,
		maxImageBytes: maxImageBytes,
		logger:        logger,
	}
}

// GetUser handles GET /api/user/:email
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUseCase.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.logger, "get_user", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser handles POST /api/user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), usecase.CreateUserRequest{
		Email:       req.Email,
		Name:        req.Name,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		respondError(c, h.logger, "create_user", err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser handles PATCH /api/user/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userUseCase.UpdateUser(c.Request.Context(), userID, usecase.UpdateUserRequest{
		Name:        req.Name,
		VehicleType: req.VehicleType,
	})
	if err != nil {
		respondError(c, h.logger, "update_user", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// AttachRegistration handles POST /api/user/:userId/registration
func (h *UserHandler) AttachRegistration(c *gin.Context) {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		respondInvalidID(c, "Invalid user ID format")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+multipartOverhead)
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, h.logger, "attach_registration", formFileError(err))
		return
	}
	defer file.Close()

	user, err := h.userUseCase.AttachRegistrationDocument(c.Request.Context(), userID, file)
	if err != nil {
		respondError(c, h.logger, "attach_registration", err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// formFileError turns multipart failures into domain errors
func formFileError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return errs.ErrImageTooLarge
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return errs.ErrMissingImage
	default:
		return errs.ErrInvalidRequest
	}
}
