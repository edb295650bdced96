package controller

import (
	"io"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/students/dto"
	"school360_backend/internals/features/school/students/model"
	"school360_backend/internals/features/school/students/service"
	helper "school360_backend/internals/helpers"
	"school360_backend/internals/helpers/export"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// 🟢 POST /api/a/students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.StudentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ERROR] student body parser: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	newStudent := req.ToModel(schoolID)
	if err := ctrl.DB.Create(newStudent).Error; err != nil {
		if strings.Contains(err.Error(), "ux_students_admission_per_school") {
			return helper.JsonError(c, fiber.StatusConflict, "Admission number already exists for this school")
		}
		log.Printf("[ERROR] create student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save student")
	}

	return helper.JsonCreated(c, "Student created", dto.ToStudentResponse(newStudent))
}

// 🟢 GET /api/u/students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	var st model.StudentModel
	if err := ctrl.DB.Where("student_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "Student found", dto.ToStudentResponse(&st))
}

// 🟢 GET /api/u/students?q=&class=&status=&format=csv|xlsx
func (ctrl *StudentController) ListStudents(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.StudentModel{}).Where("student_school_id = ?", schoolID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(student_name) LIKE ? OR LOWER(student_admission_number) LIKE ?", like, like)
	}
	if class := c.Query("class"); class != "" {
		q = q.Where("student_class_name = ?", class)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("student_status = ?", status)
	}

	// export shortcut bypasses pagination: callers want the whole filtered set
	if format := c.Query("format"); format == "csv" || format == "xlsx" {
		var all []model.StudentModel
		if err := q.Order("student_name ASC").Find(&all).Error; err != nil {
			log.Printf("[ERROR] list students for export: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
		}
		return ctrl.writeExport(c, all, format)
	}

	paging := helper.ResolvePaging(c, 20, 100)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := q.Order("student_name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&students).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonList(c, "Students loaded", dto.ToStudentResponseList(students), helper.BuildPagination(paging, total))
}

// 🟡 PATCH /api/a/students/:id
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}

	var st model.StudentModel
	if err := ctrl.DB.Where("student_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var req dto.StudentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = *req.StudentName
	}
	if req.StudentClassName != nil {
		updates["student_class_name"] = *req.StudentClassName
	}
	if req.StudentArmName != nil {
		updates["student_arm_name"] = *req.StudentArmName
	}
	if req.StudentEmail != nil {
		updates["student_email"] = *req.StudentEmail
	}
	if req.StudentDateOfBirth != nil {
		updates["student_date_of_birth"] = *req.StudentDateOfBirth
	}
	if req.StudentParentPhone1 != nil {
		updates["student_parent_phone_1"] = *req.StudentParentPhone1
	}
	if req.StudentParentPhone2 != nil {
		updates["student_parent_phone_2"] = *req.StudentParentPhone2
	}
	if req.StudentStatus != nil {
		switch *req.StudentStatus {
		case "active", "alumni", "suspended":
			updates["student_status"] = *req.StudentStatus
		default:
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student status")
		}
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&st).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	if err := ctrl.DB.Where("student_id = ?", id).First(&st).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload student")
	}
	return helper.JsonUpdated(c, "Student updated", dto.ToStudentResponse(&st))
}

// 🔴 DELETE /api/a/students/:id (soft delete)
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student ID is required")
	}
	if err := ctrl.DB.Where("student_id = ?", id).Delete(&model.StudentModel{}).Error; err != nil {
		log.Printf("[ERROR] delete student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}

// 🟢 POST /api/a/students/import (multipart "file", ?dry_run=true)
func (ctrl *StudentController) ImportStudents(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "CSV file is required (multipart field 'file')")
	}
	f, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot open uploaded file")
	}
	defer f.Close()
	raw, err := io.ReadAll(io.LimitReader(f, 5<<20))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cannot read uploaded file")
	}

	dryRun := c.Query("dry_run") == "true"
	summary, err := service.ImportStudents(ctrl.DB, schoolID, string(raw), dryRun)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "Import processed", summary)
}

func (ctrl *StudentController) writeExport(c *fiber.Ctx, students []model.StudentModel, format string) error {
	rows := make([]map[string]any, 0, len(students))
	for i := range students {
		st := &students[i]
		var dob any
		if st.StudentDateOfBirth != nil {
			dob = *st.StudentDateOfBirth
		}
		rows = append(rows, map[string]any{
			"name":                  st.StudentName,
			"admission_number":      st.StudentAdmissionNumber,
			"class_name":            st.StudentClassName,
			"arm_name":              st.StudentArmName,
			"email":                 st.StudentEmail,
			"date_of_birth":         dob,
			"parent_phone_number_1": st.StudentParentPhone1,
			"status":                st.StudentStatus,
		})
	}

	if format == "csv" {
		csvText := export.ToCSV(rows, []string{
			"name", "admission_number", "class_name", "arm_name",
			"email", "parent_phone_number_1", "status",
		})
		c.Set(fiber.HeaderContentType, "text/csv")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename("students", "csv", true)+`"`)
		return c.SendString(csvText)
	}

	wb, err := export.ToWorkbook([]export.Sheet{{
		Data:      rows,
		SheetName: "Students",
		Columns: []export.Column{
			{Key: "name", Header: "Name", Width: 30, Type: export.TypeString},
			{Key: "admission_number", Header: "Admission No", Width: 16, Type: export.TypeString},
			{Key: "class_name", Header: "Class", Width: 12, Type: export.TypeString},
			{Key: "arm_name", Header: "Arm", Width: 10, Type: export.TypeString},
			{Key: "email", Header: "Email", Width: 28, Type: export.TypeString},
			{Key: "date_of_birth", Header: "Date of Birth", Width: 14, Type: export.TypeDate},
			{Key: "parent_phone_number_1", Header: "Parent Phone", Width: 18, Type: export.TypeString},
			{Key: "status", Header: "Status", Width: 12, Type: export.TypeString},
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
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename("students", "xlsx", true)+`"`)
	return c.Send(buf.Bytes())
}
