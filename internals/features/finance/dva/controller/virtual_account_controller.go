package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"school360_backend/internals/features/finance/dva/dto"
	"school360_backend/internals/features/finance/dva/model"
	"school360_backend/internals/features/finance/dva/service"
	helper "school360_backend/internals/helpers"
)

type VirtualAccountController struct {
	DB *gorm.DB
	VA *service.VirtualAccountService
}

func NewVirtualAccountController(db *gorm.DB, svc *service.VirtualAccountService) *VirtualAccountController {
	return &VirtualAccountController{DB: db, VA: svc}
}

// 🟢 POST /api/a/virtual-accounts
func (ctrl *VirtualAccountController) CreateVirtualAccount(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateVARequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	va := req.ToModel(schoolID)
	// The row ID doubles as the gateway order ID, so mint it up front.
	va.VirtualAccountID = uuid.New()

	if err := ctrl.VA.OpenVA(va); err != nil {
		log.Printf("[ERROR] open virtual account: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment gateway rejected the virtual account request")
	}
	if err := ctrl.DB.Create(va).Error; err != nil {
		log.Printf("[ERROR] persist virtual account: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save virtual account")
	}
	return helper.JsonCreated(c, "Virtual account opened", dto.ToVirtualAccountResponse(va))
}

// 🟢 GET /api/a/virtual-accounts?student_id=&status=
func (ctrl *VirtualAccountController) ListVirtualAccounts(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.VirtualAccountModel{}).
		Where("virtual_account_school_id = ?", schoolID)
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		q = q.Where("virtual_account_student_id = ?", id)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		q = q.Where("virtual_account_status = ?", strings.ToLower(st))
	}

	paging := helper.ResolvePaging(c, 20, 200)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count virtual accounts")
	}

	var rows []model.VirtualAccountModel
	if err := q.Order("virtual_account_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load virtual accounts")
	}

	out := make([]*dto.VirtualAccountResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToVirtualAccountResponse(&rows[i]))
	}
	return helper.JsonList(c, "Virtual accounts loaded", out, helper.BuildPagination(paging, total))
}

// 🟢 GET /api/a/virtual-accounts/:id
func (ctrl *VirtualAccountController) GetVirtualAccountByID(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var va model.VirtualAccountModel
	if err := ctrl.DB.
		Where("virtual_account_id = ? AND virtual_account_school_id = ?", c.Params("id"), schoolID).
		First(&va).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Virtual account not found")
	}
	return helper.JsonOK(c, "Virtual account detail", dto.ToVirtualAccountResponse(&va))
}

// 🔴 PATCH /api/a/virtual-accounts/:id/close
func (ctrl *VirtualAccountController) CloseVirtualAccount(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var va model.VirtualAccountModel
	if err := ctrl.DB.
		Where("virtual_account_id = ? AND virtual_account_school_id = ?", c.Params("id"), schoolID).
		First(&va).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Virtual account not found")
	}
	if va.VirtualAccountStatus == model.VAStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "A paid virtual account cannot be closed")
	}
	if err := ctrl.DB.Model(&va).
		Update("virtual_account_status", model.VAStatusClosed).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to close virtual account")
	}
	va.VirtualAccountStatus = model.VAStatusClosed
	return helper.JsonUpdated(c, "Virtual account closed", dto.ToVirtualAccountResponse(&va))
}
