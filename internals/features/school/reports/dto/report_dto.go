package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"school360_backend/internals/features/school/reports/model"
)

var ReportTypes = []string{"observation", "incident", "safeguarding", "praise", "general"}

type ReportRequest struct {
	ReportType      string     `json:"report_type" validate:"required,oneof=observation incident safeguarding praise general"`
	ReportText      string     `json:"report_text" validate:"required,min=3"`
	ReportStudentID *uuid.UUID `json:"report_student_id"`
}

type ReportRespondRequest struct {
	ReportResponse string `json:"report_response" validate:"required,min=1"`
}

type SummarizeRequest struct {
	From string `json:"from" validate:"required,datetime=2006-01-02"`
	To   string `json:"to" validate:"required,datetime=2006-01-02"`
}

type Analysis struct {
	Sentiment  string    `json:"sentiment"`
	Model      string    `json:"model,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at"`
}

type ReportResponse struct {
	ReportID        uuid.UUID  `json:"report_id"`
	ReportAuthorID  uuid.UUID  `json:"report_author_id"`
	ReportStudentID *uuid.UUID `json:"report_student_id,omitempty"`
	ReportType      string     `json:"report_type"`
	ReportText      string     `json:"report_text"`
	Sentiment       string     `json:"sentiment,omitempty"`
	Response        string     `json:"response,omitempty"`
	ReportCreatedAt string     `json:"report_created_at"`
}

func (r *ReportRequest) ToModel(schoolID, authorID uuid.UUID) *model.ReportModel {
	return &model.ReportModel{
		ReportSchoolID:  schoolID,
		ReportAuthorID:  authorID,
		ReportStudentID: r.ReportStudentID,
		ReportType:      r.ReportType,
		ReportText:      r.ReportText,
	}
}

func MarshalAnalysis(a Analysis) datatypes.JSON {
	raw, _ := json.Marshal(a)
	return datatypes.JSON(raw)
}

// SentimentOf pulls the sentiment label out of the JSONB analysis;
// empty when never analyzed or unparsable.
func SentimentOf(m *model.ReportModel) string {
	if len(m.ReportAnalysis) == 0 {
		return ""
	}
	var a Analysis
	if err := json.Unmarshal(m.ReportAnalysis, &a); err != nil {
		return ""
	}
	return a.Sentiment
}

func ToReportResponse(m *model.ReportModel) *ReportResponse {
	return &ReportResponse{
		ReportID:        m.ReportID,
		ReportAuthorID:  m.ReportAuthorID,
		ReportStudentID: m.ReportStudentID,
		ReportType:      m.ReportType,
		ReportText:      m.ReportText,
		Sentiment:       SentimentOf(m),
		Response:        m.ReportResponse,
		ReportCreatedAt: m.ReportCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToReportResponseList(models []model.ReportModel) []ReportResponse {
	result := make([]ReportResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToReportResponse(&m))
	}
	return result
}
