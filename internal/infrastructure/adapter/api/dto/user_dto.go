package dto

import (
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// CreateUserRequest is the onboarding body. Email is ignored when the
// caller is authenticated; the token's email wins.
type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	VehicleType string `json:"vehicleType" binding:"required,vehicletype"`
	Email       string `json:"email" binding:"omitempty,email"`
}

// UpdateUserRequest is a partial profile change
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	VehicleType *string `json:"vehicleType" binding:"omitempty,vehicletype"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID            uint64    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	VehicleType   string    `json:"vehicleType"`
	RCImageID     *string   `json:"rcImageId"`
	CarbonCredits string    `json:"carbonCredits"`
	BalanceINR    string    `json:"balanceINR"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		VehicleType:   string(u.VehicleType),
		RCImageID:     u.RCImageID,
		CarbonCredits: u.GetCarbonCredits(),
		BalanceINR:    u.GetBalance(),
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
