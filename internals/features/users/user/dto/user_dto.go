package dto

import (
	"strings"

	userModel "coursedesk_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateUserRequest struct {
	UserName string               `json:"user_name" validate:"required,max=50"`
	Email    string               `json:"email" validate:"required,loose_email,max=255"`
	Password string               `json:"password" validate:"required,min=6,max=72"`
	Avatar   string               `json:"avatar"`
	IsAdmin  bool                 `json:"is_admin"`
	IsActive *bool                `json:"is_active"`
	Roles    []userModel.UserRole `json:"roles"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(r.Email)
	r.Avatar = strings.TrimSpace(r.Avatar)
}

// ToModel builds the row; password hash, avatar and roles are filled by the caller.
func (r *CreateUserRequest) ToModel() *userModel.UserModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &userModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		IsAdmin:  r.IsAdmin,
		IsActive: active,
	}
}

// UpdateUserRequest is partial: nil fields stay as they are, an empty password keeps the old one.
type UpdateUserRequest struct {
	UserName *string              `json:"user_name" validate:"omitempty,notblank,max=50"`
	Email    *string              `json:"email" validate:"omitempty,loose_email,max=255"`
	Password string               `json:"password" validate:"omitempty,min=6,max=72"`
	Avatar   string               `json:"avatar"`
	IsAdmin  *bool                `json:"is_admin"`
	IsActive *bool                `json:"is_active"`
	Roles    []userModel.UserRole `json:"roles"`
}

func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(*r.Email)
		r.Email = &v
	}
	r.Avatar = strings.TrimSpace(r.Avatar)
}

// Apply copies the plain fields onto m.
func (r *UpdateUserRequest) Apply(m *userModel.UserModel) {
	if r.UserName != nil {
		m.UserName = *r.UserName
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.IsAdmin != nil {
		m.IsAdmin = *r.IsAdmin
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
