package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/analytics/service"
	reportDTO "school360_backend/internals/features/school/reports/dto"
	reportModel "school360_backend/internals/features/school/reports/model"
	taskModel "school360_backend/internals/features/school/tasks/model"
	helper "school360_backend/internals/helpers"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{DB: db}
}

// 🟢 GET /api/a/analytics/heatmap
func (ctrl *AnalyticsController) GetHeatmap(c *fiber.Ctx) error {
	records, err := ctrl.loadReportRecords(c)
	if err != nil {
		return err
	}
	hm := service.Heatmap(records)
	return helper.JsonOK(c, "Heatmap computed", hm)
}

// 🟢 GET /api/a/analytics/sentiment-trend
func (ctrl *AnalyticsController) GetSentimentTrend(c *fiber.Ctx) error {
	records, err := ctrl.loadReportRecords(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Sentiment trend computed", service.SentimentOverTime(records, time.Now()))
}

// 🟢 GET /api/a/analytics/task-trend
func (ctrl *AnalyticsController) GetTaskTrend(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var tasks []taskModel.TaskModel
	if err := ctrl.DB.
		Where("task_school_id = ? AND task_created_at >= ?", schoolID, time.Now().AddDate(0, 0, -60)).
		Find(&tasks).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load tasks")
	}

	records := make([]service.TaskRecord, 0, len(tasks))
	for i := range tasks {
		records = append(records, service.TaskRecord{
			Status:    tasks[i].TaskStatus,
			CreatedAt: tasks[i].TaskCreatedAt.Format(time.RFC3339),
			UpdatedAt: tasks[i].TaskUpdatedAt.Format(time.RFC3339),
		})
	}
	return helper.JsonOK(c, "Task trend computed", service.TaskTrend(records, time.Now()))
}

// 🟢 GET /api/a/analytics/at-risk
func (ctrl *AnalyticsController) GetAtRisk(c *fiber.Ctx) error {
	records, err := ctrl.loadReportRecords(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "At-risk list computed", service.AtRiskScores(records))
}

// loadReportRecords pulls the school's recent reports (with student names
// joined) into the flat shape the aggregators consume.
func (ctrl *AnalyticsController) loadReportRecords(c *fiber.Ctx) ([]service.ReportRecord, error) {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return nil, helper.FromFiberError(c, err)
	}

	var reports []reportModel.ReportModel
	if err := ctrl.DB.
		Where("report_school_id = ? AND report_created_at >= ?", schoolID, time.Now().AddDate(0, 0, -90)).
		Find(&reports).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reports")
	}

	names := map[string]string{}
	type nameRow struct {
		StudentID   string
		StudentName string
	}
	var rows []nameRow
	if err := ctrl.DB.Table("students").
		Select("student_id, student_name").
		Where("student_school_id = ?", schoolID).
		Scan(&rows).Error; err == nil {
		for _, r := range rows {
			names[r.StudentID] = r.StudentName
		}
	}

	records := make([]service.ReportRecord, 0, len(reports))
	for i := range reports {
		rec := service.ReportRecord{
			ReportType: reports[i].ReportType,
			Sentiment:  reportDTO.SentimentOf(&reports[i]),
			CreatedAt:  reports[i].ReportCreatedAt.Format(time.RFC3339),
		}
		if reports[i].ReportStudentID != nil {
			rec.StudentID = reports[i].ReportStudentID.String()
			rec.StudentName = names[rec.StudentID]
		}
		records = append(records, rec)
	}
	return records, nil
}
