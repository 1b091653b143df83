package dto

import "github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"

// CreateUserRequest registers a new user.
type CreateUserRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Username    string `json:"username" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Level       int    `json:"level"`
	Company     string `json:"company"`
	CompanyCode string `json:"companyCode"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	TeamGroup   string `json:"teamGroup"`
	TeamRole    string `json:"teamRole"`
	Role        string `json:"role"`
	FlowID      string `json:"flowId"`
}

// UpdateUserRequest updates mutable user attributes.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Level       *int    `json:"level"`
	Company     *string `json:"company"`
	CompanyCode *string `json:"companyCode"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	Team        *string `json:"team"`
	TeamGroup   *string `json:"teamGroup"`
	TeamRole    *string `json:"teamRole"`
	Role        *string `json:"role"`
	FlowID      *string `json:"flowId"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID      string `json:"userID"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Username    string `json:"username"`
	Level       int    `json:"level"`
	Company     string `json:"company"`
	CompanyCode string `json:"companyCode"`
	Department  string `json:"department"`
	Position    string `json:"position"`
	Team        string `json:"team"`
	TeamGroup   string `json:"teamGroup"`
	TeamRole    string `json:"teamRole"`
	Role        string `json:"role"`
	FlowID      string `json:"flowId,omitempty"`
}

// ToUserResponse maps a domain user to its public shape.
func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Username:    u.Username,
		Level:       u.Level,
		Company:     u.Company,
		CompanyCode: u.CompanyCode,
		Department:  u.Department,
		Position:    u.Position,
		Team:        u.Team,
		TeamGroup:   u.TeamGroup,
		TeamRole:    string(u.TeamRole),
		Role:        string(u.Role),
		FlowID:      u.FlowID,
	}
}
