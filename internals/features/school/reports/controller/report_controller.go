package controller

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/reports/dto"
	"school360_backend/internals/features/school/reports/model"
	"school360_backend/internals/features/school/reports/service"
	helper "school360_backend/internals/helpers"
	"school360_backend/internals/helpers/export"
)

type ReportController struct {
	DB *gorm.DB
	AI *service.AIService
}

func NewReportController(db *gorm.DB, aiSvc *service.AIService) *ReportController {
	return &ReportController{DB: db, AI: aiSvc}
}

// 🟢 POST /api/u/reports
// Sentiment classification is best effort: a vendor failure stores a null
// analysis and the report is still accepted.
func (ctrl *ReportController) CreateReport(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	newReport := req.ToModel(schoolID, authorID)

	if sentiment, err := ctrl.AI.Classify(c.UserContext(), req.ReportText); err != nil {
		log.Printf("[WARN] sentiment classification failed, saving without analysis: %v", err)
	} else {
		newReport.ReportAnalysis = dto.MarshalAnalysis(dto.Analysis{
			Sentiment:  sentiment,
			Model:      ctrl.AI.Model,
			AnalyzedAt: time.Now(),
		})
	}

	if err := ctrl.DB.Create(newReport).Error; err != nil {
		log.Printf("[ERROR] create report: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save report")
	}
	return helper.JsonCreated(c, "Report submitted", dto.ToReportResponse(newReport))
}

// 🟢 GET /api/u/reports?type=&sentiment=&format=csv|xlsx
func (ctrl *ReportController) ListReports(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.ReportModel{}).Where("report_school_id = ?", schoolID)
	if t := c.Query("type"); t != "" {
		q = q.Where("report_type = ?", t)
	}
	if s := c.Query("sentiment"); s != "" {
		q = q.Where("report_analysis->>'sentiment' = ?", s)
	}

	if format := c.Query("format"); format == "csv" || format == "xlsx" {
		var all []model.ReportModel
		if err := q.Order("report_created_at DESC").Find(&all).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reports")
		}
		return ctrl.writeExport(c, all, format)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count reports")
	}
	var reports []model.ReportModel
	if err := q.Order("report_created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reports")
	}
	return helper.JsonList(c, "Reports loaded", dto.ToReportResponseList(reports), helper.BuildPagination(paging, total))
}

func (ctrl *ReportController) writeExport(c *fiber.Ctx, reports []model.ReportModel, format string) error {
	rows := make([]map[string]any, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		rows = append(rows, map[string]any{
			"created_at": r.ReportCreatedAt.Format("2006-01-02 15:04"),
			"type":       r.ReportType,
			"text":       r.ReportText,
			"sentiment":  dto.SentimentOf(r),
			"response":   r.ReportResponse,
		})
	}

	if format == "csv" {
		csvText := export.ToCSV(rows, []string{"created_at", "type", "text", "sentiment", "response"})
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename("reports", "csv", true)+`"`)
		return c.SendString(csvText)
	}

	wb, err := export.ToWorkbook([]export.Sheet{{
		Data:      rows,
		SheetName: "Reports",
		Columns: []export.Column{
			{Key: "created_at", Header: "Submitted", Width: 18, Type: export.TypeString},
			{Key: "type", Header: "Type", Width: 16, Type: export.TypeString},
			{Key: "text", Header: "Report", Width: 60, Type: export.TypeString},
			{Key: "sentiment", Header: "Sentiment", Width: 12, Type: export.TypeString},
			{Key: "response", Header: "Response", Width: 40, Type: export.TypeString},
		},
	}})
	if err != nil {
		log.Printf("[ERROR] build workbook: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build workbook")
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to serialize workbook")
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename("reports", "xlsx", true)+`"`)
	return c.Send(buf.Bytes())
}

// 🟢 GET /api/u/reports/:id
func (ctrl *ReportController) GetReportByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Report ID is required")
	}
	var r model.ReportModel
	if err := ctrl.DB.Where("report_id = ?", id).First(&r).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	return helper.JsonOK(c, "Report found", dto.ToReportResponse(&r))
}

// 🟡 PATCH /api/a/reports/:id/response
// The only mutation allowed after analysis: append/replace the response.
func (ctrl *ReportController) RespondToReport(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Report ID is required")
	}
	var r model.ReportModel
	if err := ctrl.DB.Where("report_id = ?", id).First(&r).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	var req dto.ReportRespondRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	if err := ctrl.DB.Model(&r).Update("report_response", req.ReportResponse).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save response")
	}
	r.ReportResponse = req.ReportResponse
	return helper.JsonUpdated(c, "Response saved", dto.ToReportResponse(&r))
}

// 🟢 POST /api/a/reports/:id/draft-response
func (ctrl *ReportController) DraftResponse(c *fiber.Ctx) error {
	return ctrl.draftFor(c, ctrl.AI.DraftResponse)
}

// 🟢 POST /api/a/reports/:id/action-plan
func (ctrl *ReportController) ActionPlan(c *fiber.Ctx) error {
	return ctrl.draftFor(c, ctrl.AI.ActionPlan)
}

func (ctrl *ReportController) draftFor(c *fiber.Ctx, gen func(ctx context.Context, r *model.ReportModel) (string, error)) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Report ID is required")
	}
	var r model.ReportModel
	if err := ctrl.DB.Where("report_id = ?", id).First(&r).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}
	text, err := gen(c.UserContext(), &r)
	if err != nil {
		log.Printf("[ERROR] model draft: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "Draft generated", fiber.Map{"draft": text})
}

// 🟢 POST /api/a/reports/summarize
func (ctrl *ReportController) Summarize(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}
	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)
	if to.Before(from) {
		return helper.JsonError(c, fiber.StatusBadRequest, "'to' must not be before 'from'")
	}

	var reports []model.ReportModel
	if err := ctrl.DB.
		Where("report_school_id = ? AND report_created_at >= ? AND report_created_at < ?",
			schoolID, from, to.AddDate(0, 0, 1)).
		Order("report_created_at ASC").
		Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load reports")
	}
	if len(reports) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No reports in that range")
	}

	summary, err := ctrl.AI.Summarize(c.UserContext(), reports, from, to)
	if err != nil {
		log.Printf("[ERROR] summarize: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.JsonOK(c, "Summary generated", fiber.Map{"summary": summary})
}
