package controller

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"school360_backend/internals/constants"
	"school360_backend/internals/features/school/staff/dto"
	"school360_backend/internals/features/school/staff/model"
	userModel "school360_backend/internals/features/users/auth/model"
	helper "school360_backend/internals/helpers"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// 🟢 POST /api/a/staff
func (ctrl *StaffController) CreateStaff(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	created, _, err := ctrl.provisionOne(schoolID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "ux_") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		log.Printf("[ERROR] create staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create staff")
	}
	return helper.JsonCreated(c, "Staff created", dto.ToStaffResponse(created))
}

// 🟢 POST /api/a/staff/bulk
// Each row is provisioned independently; a failing row is reported in its
// slot and the batch carries on (no exception escapes the batch).
func (ctrl *StaffController) BulkCreateStaff(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.BulkStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	results := make([]dto.BulkItemResult, 0, len(req.Items))
	for i := range req.Items {
		item := &req.Items[i]
		res := dto.BulkItemResult{Index: i, Email: item.StaffEmail, Status: "created"}

		_, tempPwd, err := ctrl.provisionOne(schoolID, item)
		if err != nil {
			res.Status = "failed"
			res.Error = err.Error()
		} else {
			res.TempPassword = tempPwd
		}
		results = append(results, res)
	}
	return helper.JsonOK(c, "Bulk provisioning processed", fiber.Map{"results": results})
}

// provisionOne creates the login account and the staff record in one
// transaction, returning the generated temp password.
func (ctrl *StaffController) provisionOne(schoolID uuid.UUID, req *dto.StaffRequest) (*model.StaffModel, string, error) {
	tempPwd, err := generatePassword()
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPwd), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	var created *model.StaffModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		usr := &userModel.UserModel{
			UserSchoolID: schoolID,
			UserName:     req.StaffName,
			UserEmail:    strings.ToLower(req.StaffEmail),
			UserPassword: string(hash),
			UserRole:     constants.RoleStaff,
			UserIsActive: true,
		}
		if err := tx.Create(usr).Error; err != nil {
			return err
		}
		created = req.ToModel(schoolID, usr.UserID)
		return tx.Create(created).Error
	})
	if err != nil {
		return nil, "", err
	}
	return created, tempPwd, nil
}

// 🟢 GET /api/u/staff
func (ctrl *StaffController) ListStaff(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.StaffModel{}).Where("staff_school_id = ?", schoolID)
	if status := c.Query("status"); status != "" {
		q = q.Where("staff_status = ?", status)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count staff")
	}
	var staff []model.StaffModel
	if err := q.Order("staff_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&staff).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load staff")
	}
	return helper.JsonList(c, "Staff loaded", dto.ToStaffResponseList(staff), helper.BuildPagination(paging, total))
}

// 🟢 GET /api/u/staff/:id
func (ctrl *StaffController) GetStaffByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Staff ID is required")
	}
	var st model.StaffModel
	if err := ctrl.DB.Where("staff_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Staff not found")
	}
	return helper.JsonOK(c, "Staff found", dto.ToStaffResponse(&st))
}

// 🟡 PATCH /api/a/staff/:id
func (ctrl *StaffController) UpdateStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Staff ID is required")
	}
	var st model.StaffModel
	if err := ctrl.DB.Where("staff_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Staff not found")
	}

	var req dto.StaffUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.StaffName != nil {
		updates["staff_name"] = *req.StaffName
	}
	if req.StaffPhone != nil {
		updates["staff_phone"] = *req.StaffPhone
	}
	if req.StaffRoles != nil {
		updates["staff_roles"] = pq.StringArray(*req.StaffRoles)
	}
	if req.StaffMonthlySalary != nil {
		if *req.StaffMonthlySalary < 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Salary cannot be negative")
		}
		updates["staff_monthly_salary"] = *req.StaffMonthlySalary
	}
	if req.StaffBankName != nil {
		updates["staff_bank_name"] = *req.StaffBankName
	}
	if req.StaffBankAccount != nil {
		updates["staff_bank_account"] = *req.StaffBankAccount
	}
	if req.StaffStatus != nil {
		switch *req.StaffStatus {
		case "active", "on_leave", "exited":
			updates["staff_status"] = *req.StaffStatus
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff status")
		}
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&st).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update staff: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update staff")
	}
	if err := ctrl.DB.Where("staff_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload staff")
	}
	return helper.JsonUpdated(c, "Staff updated", dto.ToStaffResponse(&st))
}

// 🔴 DELETE /api/a/staff/:id (soft delete)
func (ctrl *StaffController) DeleteStaff(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Staff ID is required")
	}
	if err := ctrl.DB.Where("staff_id = ?", id).Delete(&model.StaffModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete staff")
	}
	return helper.JsonDeleted(c, "Staff deleted", fiber.Map{"staff_id": id})
}

func generatePassword() (string, error) {
	raw := make([]byte, 9)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
