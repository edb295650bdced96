package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index:idx_students_school_id" json:"student_school_id"`

	StudentName            string     `gorm:"column:student_name;type:varchar(255);not null" json:"student_name"`
	StudentAdmissionNumber string     `gorm:"column:student_admission_number;type:varchar(50);not null" json:"student_admission_number"`
	StudentClassName       string     `gorm:"column:student_class_name;type:varchar(100)" json:"student_class_name"`
	StudentArmName         string     `gorm:"column:student_arm_name;type:varchar(100)" json:"student_arm_name"`
	StudentEmail           string     `gorm:"column:student_email;type:varchar(255)" json:"student_email"`
	StudentDateOfBirth     *time.Time `gorm:"column:student_date_of_birth;type:date" json:"student_date_of_birth,omitempty"`
	StudentParentPhone1    string     `gorm:"column:student_parent_phone_1;type:varchar(20)" json:"student_parent_phone_1"`
	StudentParentPhone2    string     `gorm:"column:student_parent_phone_2;type:varchar(20)" json:"student_parent_phone_2"`

	// active | alumni | suspended
	StudentStatus string `gorm:"column:student_status;type:varchar(20);not null;default:'active'" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;type:timestamptz;index" json:"student_deleted_at,omitempty"`

	// NOTE:
	// - Admission number unique per school (case-insensitive) via migration:
	//   CREATE UNIQUE INDEX ux_students_admission_per_school
	//   ON students (student_school_id, LOWER(student_admission_number));
}

func (StudentModel) TableName() string {
	return "students"
}
