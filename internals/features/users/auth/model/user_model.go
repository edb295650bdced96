package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"column:user_school_id;type:uuid;not null;index:idx_users_school_id" json:"user_school_id"`

	UserName     string `gorm:"column:user_name;type:varchar(255);not null" json:"user_name"`
	UserEmail    string `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex:ux_users_email" json:"user_email"`
	UserPassword string `gorm:"column:user_password;type:varchar(255);not null" json:"-"`

	// viewer | staff | bursar | admin | owner
	UserRole     string `gorm:"column:user_role;type:varchar(20);not null;default:'viewer'" json:"user_role"`
	UserIsActive bool   `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;type:timestamptz;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
