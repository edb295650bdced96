package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportModel struct {
	ReportID       uuid.UUID `gorm:"column:report_id;type:uuid;default:gen_random_uuid();primaryKey" json:"report_id"`
	ReportSchoolID uuid.UUID `gorm:"column:report_school_id;type:uuid;not null;index:idx_reports_school_id" json:"report_school_id"`
	ReportAuthorID uuid.UUID `gorm:"column:report_author_id;type:uuid;not null;index:idx_reports_author_id" json:"report_author_id"`

	// optional: which student the report concerns (feeds at-risk scoring)
	ReportStudentID *uuid.UUID `gorm:"column:report_student_id;type:uuid;index:idx_reports_student_id" json:"report_student_id,omitempty"`

	// observation | incident | safeguarding | praise | general
	ReportType string `gorm:"column:report_type;type:varchar(50);not null" json:"report_type"`
	ReportText string `gorm:"column:report_text;type:text;not null" json:"report_text"`

	// {"sentiment":"Positive","model":"...","analyzed_at":"..."}; null until
	// classification ran. Immutable once set; only the response is appended.
	ReportAnalysis datatypes.JSON `gorm:"column:report_analysis;type:jsonb" json:"report_analysis,omitempty"`

	ReportResponse string `gorm:"column:report_response;type:text" json:"report_response"`

	ReportCreatedAt time.Time      `gorm:"column:report_created_at;type:timestamptz;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time      `gorm:"column:report_updated_at;type:timestamptz;autoUpdateTime" json:"report_updated_at"`
	ReportDeletedAt gorm.DeletedAt `gorm:"column:report_deleted_at;type:timestamptz;index" json:"report_deleted_at,omitempty"`
}

func (ReportModel) TableName() string {
	return "reports"
}
