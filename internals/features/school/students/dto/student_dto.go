package dto

import (
	"time"

	"github.com/google/uuid"

	"school360_backend/internals/features/school/students/model"
)

type StudentRequest struct {
	StudentName            string     `json:"student_name" validate:"required,min=2,max=255"`
	StudentAdmissionNumber string     `json:"student_admission_number" validate:"required,max=50"`
	StudentClassName       string     `json:"student_class_name" validate:"max=100"`
	StudentArmName         string     `json:"student_arm_name" validate:"max=100"`
	StudentEmail           string     `json:"student_email" validate:"omitempty,email"`
	StudentDateOfBirth     *time.Time `json:"student_date_of_birth"`
	StudentParentPhone1    string     `json:"student_parent_phone_1" validate:"max=20"`
	StudentParentPhone2    string     `json:"student_parent_phone_2" validate:"max=20"`
}

type StudentUpdateRequest struct {
	StudentName         *string    `json:"student_name"`
	StudentClassName    *string    `json:"student_class_name"`
	StudentArmName      *string    `json:"student_arm_name"`
	StudentEmail        *string    `json:"student_email"`
	StudentDateOfBirth  *time.Time `json:"student_date_of_birth"`
	StudentParentPhone1 *string    `json:"student_parent_phone_1"`
	StudentParentPhone2 *string    `json:"student_parent_phone_2"`
	StudentStatus       *string    `json:"student_status"`
}

type StudentResponse struct {
	StudentID              uuid.UUID `json:"student_id"`
	StudentName            string    `json:"student_name"`
	StudentAdmissionNumber string    `json:"student_admission_number"`
	StudentClassName       string    `json:"student_class_name"`
	StudentArmName         string    `json:"student_arm_name"`
	StudentEmail           string    `json:"student_email"`
	StudentDateOfBirth     string    `json:"student_date_of_birth,omitempty"`
	StudentParentPhone1    string    `json:"student_parent_phone_1"`
	StudentParentPhone2    string    `json:"student_parent_phone_2"`
	StudentStatus          string    `json:"student_status"`
	StudentCreatedAt       string    `json:"student_created_at"`
}

func (r *StudentRequest) ToModel(schoolID uuid.UUID) *model.StudentModel {
	return &model.StudentModel{
		StudentSchoolID:        schoolID,
		StudentName:            r.StudentName,
		StudentAdmissionNumber: r.StudentAdmissionNumber,
		StudentClassName:       r.StudentClassName,
		StudentArmName:         r.StudentArmName,
		StudentEmail:           r.StudentEmail,
		StudentDateOfBirth:     r.StudentDateOfBirth,
		StudentParentPhone1:    r.StudentParentPhone1,
		StudentParentPhone2:    r.StudentParentPhone2,
		StudentStatus:          "active",
	}
}

func ToStudentResponse(m *model.StudentModel) *StudentResponse {
	dob := ""
	if m.StudentDateOfBirth != nil {
		dob = m.StudentDateOfBirth.Format("2006-01-02")
	}
	return &StudentResponse{
		StudentID:              m.StudentID,
		StudentName:            m.StudentName,
		StudentAdmissionNumber: m.StudentAdmissionNumber,
		StudentClassName:       m.StudentClassName,
		StudentArmName:         m.StudentArmName,
		StudentEmail:           m.StudentEmail,
		StudentDateOfBirth:     dob,
		StudentParentPhone1:    m.StudentParentPhone1,
		StudentParentPhone2:    m.StudentParentPhone2,
		StudentStatus:          m.StudentStatus,
		StudentCreatedAt:       m.StudentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToStudentResponseList(models []model.StudentModel) []StudentResponse {
	result := make([]StudentResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToStudentResponse(&m))
	}
	return result
}
