package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/students/model"
	csvimport "school360_backend/internals/helpers/csvimport"
)

type ImportItemResult struct {
	Row    int    `json:"row"`
	Name   string `json:"name"`
	Status string `json:"status"` // created | failed
	Error  string `json:"error,omitempty"`
}

type ImportSummary struct {
	ValidCount   int                          `json:"valid_count"`
	InvalidCount int                          `json:"invalid_count"`
	Errors       []csvimport.ValidationError  `json:"errors"`
	Items        []ImportItemResult           `json:"items,omitempty"`
	DryRun       bool                         `json:"dry_run"`
}

// ImportStudents parses + validates the uploaded CSV and, unless dryRun,
// creates one student per valid row. Rows are processed independently: a
// failed insert marks that row failed and the batch continues.
func ImportStudents(db *gorm.DB, schoolID uuid.UUID, csvText string, dryRun bool) (*ImportSummary, error) {
	rows, err := csvimport.Parse(csvText)
	if err != nil {
		return nil, err
	}

	res := csvimport.ValidateRows(rows)
	summary := &ImportSummary{
		ValidCount:   res.ValidCount,
		InvalidCount: res.InvalidCount,
		Errors:       res.Errors,
		DryRun:       dryRun,
	}
	if dryRun {
		return summary, nil
	}

	for i, row := range res.Valid {
		item := ImportItemResult{Row: i + 2, Name: row["name"], Status: "created"}

		m := &model.StudentModel{
			StudentSchoolID:        schoolID,
			StudentName:            row["name"],
			StudentAdmissionNumber: row["admission_number"],
			StudentClassName:       row["class_name"],
			StudentArmName:         row["arm_name"],
			StudentEmail:           row["email"],
			StudentParentPhone1:    row["parent_phone_number_1"],
			StudentParentPhone2:    row["parent_phone_number_2"],
			StudentStatus:          "active",
		}
		if dob := row["date_of_birth"]; dob != "" {
			if t, err := time.Parse("2006-01-02", dob); err == nil {
				m.StudentDateOfBirth = &t
			}
		}

		if err := db.Create(m).Error; err != nil {
			item.Status = "failed"
			item.Error = err.Error()
		}
		summary.Items = append(summary.Items, item)
	}
	return summary, nil
}
