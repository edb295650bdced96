package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StaffModel struct {
	StaffID       uuid.UUID `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`
	StaffSchoolID uuid.UUID `gorm:"column:staff_school_id;type:uuid;not null;index:idx_staff_school_id" json:"staff_school_id"`
	StaffUserID   uuid.UUID `gorm:"column:staff_user_id;type:uuid;index:idx_staff_user_id" json:"staff_user_id"`

	StaffName  string         `gorm:"column:staff_name;type:varchar(255);not null" json:"staff_name"`
	StaffEmail string         `gorm:"column:staff_email;type:varchar(255);not null;uniqueIndex:ux_staff_email" json:"staff_email"`
	StaffPhone string         `gorm:"column:staff_phone;type:varchar(20)" json:"staff_phone"`
	StaffRoles pq.StringArray `gorm:"column:staff_roles;type:text[]" json:"staff_roles"`

	StaffMonthlySalary float64 `gorm:"column:staff_monthly_salary;type:numeric(14,2);not null;default:0" json:"staff_monthly_salary"`
	StaffBankName      string  `gorm:"column:staff_bank_name;type:varchar(100)" json:"staff_bank_name"`
	StaffBankAccount   string  `gorm:"column:staff_bank_account;type:varchar(30)" json:"staff_bank_account"`

	// active | on_leave | exited
	StaffStatus string `gorm:"column:staff_status;type:varchar(20);not null;default:'active'" json:"staff_status"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;type:timestamptz;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"column:staff_updated_at;type:timestamptz;autoUpdateTime" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;type:timestamptz;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string {
	return "staff"
}
