package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/payroll/dto"
	"school360_backend/internals/features/payroll/model"
	"school360_backend/internals/features/payroll/service"
	helper "school360_backend/internals/helpers"
	"school360_backend/internals/helpers/export"
)

type PayrollController struct {
	DB      *gorm.DB
	Payroll *service.PayrollService
}

func NewPayrollController(db *gorm.DB, svc *service.PayrollService) *PayrollController {
	return &PayrollController{DB: db, Payroll: svc}
}

// 🟢 POST /api/a/payroll/runs
func (ctrl *PayrollController) GenerateRun(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.GenerateRunRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}
	month, _ := time.Parse("2006-01", req.Month)

	run, err := ctrl.Payroll.GenerateRun(schoolID, month)
	if err != nil {
		log.Printf("[ERROR] generate payroll run: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonCreated(c, "Payroll run ready", dto.ToPayrollRunResponse(run))
}

// 🟢 GET /api/a/payroll/runs
func (ctrl *PayrollController) ListRuns(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var runs []model.PayrollRunModel
	if err := ctrl.DB.Preload("Payslips").
		Where("payroll_run_school_id = ?", schoolID).
		Order("payroll_run_month DESC").
		Find(&runs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payroll runs")
	}

	out := make([]dto.PayrollRunResponse, 0, len(runs))
	for i := range runs {
		out = append(out, *dto.ToPayrollRunResponse(&runs[i]))
	}
	return helper.JsonOK(c, "Payroll runs loaded", out)
}

// 🟡 PATCH /api/a/payroll/runs/:id/approve
func (ctrl *PayrollController) ApproveRun(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Run ID is required")
	}
	var run model.PayrollRunModel
	if err := ctrl.DB.Where("payroll_run_id = ?", id).First(&run).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payroll run not found")
	}
	if run.PayrollRunStatus != model.RunStatusDraft {
		return helper.JsonError(c, fiber.StatusConflict, "Only a draft run can be approved")
	}
	if err := ctrl.DB.Model(&run).Update("payroll_run_status", model.RunStatusApproved).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve run")
	}
	run.PayrollRunStatus = model.RunStatusApproved
	return helper.JsonUpdated(c, "Payroll run approved", dto.ToPayrollRunResponse(&run))
}

// 🟢 GET /api/a/payroll/payslips/:id/pdf
func (ctrl *PayrollController) DownloadPayslipPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payslip ID is required")
	}
	var slip model.PayslipModel
	if err := ctrl.DB.Where("payslip_id = ?", id).First(&slip).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payslip not found")
	}
	var run model.PayrollRunModel
	if err := ctrl.DB.Where("payroll_run_id = ?", slip.PayslipRunID).First(&run).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payroll run not found")
	}

	raw, err := ctrl.Payroll.RenderPayslipPDF(c.UserContext(), &slip, run.PayrollRunMonth)
	if err != nil {
		log.Printf("[ERROR] render payslip: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	// remember where the rendered slip can be fetched again
	if slip.PayslipPdfURL == "" {
		downloadPath := "/api/a/payroll/payslips/" + slip.PayslipID.String() + "/pdf"
		if err := ctrl.DB.Model(&slip).Update("payslip_pdf_url", downloadPath).Error; err != nil {
			log.Printf("[ERROR] save payslip pdf url: %v", err)
		}
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		`attachment; filename="`+export.Filename("payslip_"+slip.PayslipStaffName, "pdf", false)+`"`)
	return c.Send(raw)
}
