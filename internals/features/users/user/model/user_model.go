package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"coursedesk_backend/internals/constants"
)

type RoleActions struct {
	Permission bool `json:"permission"`
}

// UserRole grants (or not) access to one dashboard section.
type UserRole struct {
	Name    string      `json:"name"`
	Actions RoleActions `json:"actions"`
}

// UserModel is a dashboard account.
type UserModel struct {
	ID        uuid.UUID                     `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserName  string                        `gorm:"column:user_name;size:50;not null;uniqueIndex" json:"user_name"`
	Email     string                        `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password  string                        `gorm:"column:password;not null" json:"-"`
	GoogleID  *string                       `gorm:"column:google_id;size:255;uniqueIndex" json:"google_id,omitempty"`
	Avatar    string                        `gorm:"column:avatar;type:text" json:"avatar"`
	IsAdmin   bool                          `gorm:"column:is_admin;not null" json:"is_admin"`
	IsActive  bool                          `gorm:"column:is_active;not null" json:"is_active"`
	Roles     datatypes.JSONSlice[UserRole] `gorm:"column:roles" json:"roles"`
	CreatedAt time.Time                     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Roles == nil {
		u.Roles = DefaultRoles()
	}
	return nil
}

// HasPermission reports whether the user may open the given section.
// Admins can open every section.
func (u *UserModel) HasPermission(section string) bool {
	if u.IsAdmin {
		return true
	}
	return RolesAllow(u.Roles, section)
}

func RolesAllow(roles []UserRole, section string) bool {
	for _, r := range roles {
		if r.Name == section {
			return r.Actions.Permission
		}
	}
	return false
}

// DefaultRoles returns every section with permission off.
func DefaultRoles() []UserRole {
	out := make([]UserRole, 0, len(constants.Sections))
	for _, s := range constants.Sections {
		out = append(out, UserRole{Name: s})
	}
	return out
}

// VisibleMenu filters the sidebar down to the sections the user may open.
func (u *UserModel) VisibleMenu() []constants.MenuItem {
	out := make([]constants.MenuItem, 0, len(constants.Menu))
	for _, item := range constants.Menu {
		if u.HasPermission(item.Section) {
			out = append(out, item)
		}
	}
	return out
}
