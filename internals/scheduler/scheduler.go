// file: internals/scheduler/scheduler.go
//
// Cron host for the two background jobs: the monthly payroll draft and
// the daily operations digest. Specs come from Settings so deployments
// can reschedule without a rebuild.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	payrollService "school360_backend/internals/features/payroll/service"
	"school360_backend/internals/platform/sms"
)

type Scheduler struct {
	engine          *cron.Cron
	db              *gorm.DB
	payroll         *payrollService.PayrollService
	sender          sms.Sender
	payrollCronSpec string
	digestCronSpec  string
}

func New(db *gorm.DB, payroll *payrollService.PayrollService, sender sms.Sender, payrollSpec, digestSpec string) *Scheduler {
	return &Scheduler{
		engine:          cron.New(cron.WithLocation(time.Local)),
		db:              db,
		payroll:         payroll,
		sender:          sender,
		payrollCronSpec: payrollSpec,
		digestCronSpec:  digestSpec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.engine.AddFunc(s.payrollCronSpec, s.runPayrollDrafts); err != nil {
		return fmt.Errorf("payroll cron spec %q: %w", s.payrollCronSpec, err)
	}
	if _, err := s.engine.AddFunc(s.digestCronSpec, s.runDailyDigest); err != nil {
		return fmt.Errorf("digest cron spec %q: %w", s.digestCronSpec, err)
	}
	s.engine.Start()
	log.Println("⏰ Scheduler started (payroll:", s.payrollCronSpec, "| digest:", s.digestCronSpec+")")
	return nil
}

// Stop waits for in-flight jobs before returning.
func (s *Scheduler) Stop() {
	<-s.engine.Stop().Done()
	log.Println("⏰ Scheduler stopped")
}

// runPayrollDrafts creates this month's draft run for every school with
// active staff. GenerateRun is idempotent per school+month, so a retry
// after a crash never duplicates a run.
func (s *Scheduler) runPayrollDrafts() {
	log.Println("[INFO] payroll draft job triggered")
	now := time.Now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	schoolIDs, err := s.activeSchoolIDs()
	if err != nil {
		log.Printf("[ERROR] payroll draft job: list schools: %v", err)
		return
	}
	for _, schoolID := range schoolIDs {
		if _, err := s.payroll.GenerateRun(schoolID, month); err != nil {
			log.Printf("[ERROR] payroll draft for school %s: %v", schoolID, err)
			continue
		}
		log.Printf("[INFO] payroll draft ready for school %s (%s)", schoolID, month.Format("2006-01"))
	}
}

// runDailyDigest texts each school's admins yesterday's report volume
// and the open task count. Per-school failures are logged and skipped.
func (s *Scheduler) runDailyDigest() {
	log.Println("[INFO] daily digest job triggered")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	schoolIDs, err := s.activeSchoolIDs()
	if err != nil {
		log.Printf("[ERROR] digest job: list schools: %v", err)
		return
	}

	since := time.Now().Add(-24 * time.Hour)
	for _, schoolID := range schoolIDs {
		var newReports, openTasks int64
		if err := s.db.Table("reports").
			Where("report_school_id = ? AND report_created_at >= ?", schoolID, since).
			Count(&newReports).Error; err != nil {
			log.Printf("[ERROR] digest for school %s: count reports: %v", schoolID, err)
			continue
		}
		if err := s.db.Table("tasks").
			Where("task_school_id = ? AND task_status IN ?", schoolID, []string{"ToDo", "InProgress"}).
			Count(&openTasks).Error; err != nil {
			log.Printf("[ERROR] digest for school %s: count tasks: %v", schoolID, err)
			continue
		}

		body := fmt.Sprintf("School360 digest: %d new report(s) in the last 24h, %d task(s) open.", newReports, openTasks)
		for _, phone := range s.adminPhones(schoolID) {
			if _, err := s.sender.Send(ctx, phone, body, sms.ChannelSMS); err != nil {
				log.Printf("[WARN] digest to %s failed: %v", phone, err)
			}
		}
	}
}

func (s *Scheduler) activeSchoolIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Table("staff").
		Where("staff_status = ? AND staff_deleted_at IS NULL", "active").
		Distinct("staff_school_id").
		Pluck("staff_school_id", &ids).Error
	return ids, err
}

func (s *Scheduler) adminPhones(schoolID uuid.UUID) []string {
	var phones []string
	if err := s.db.Table("staff").
		Where("staff_school_id = ? AND staff_status = ? AND staff_deleted_at IS NULL", schoolID, "active").
		Where("'admin' = ANY(staff_roles) AND staff_phone <> ''").
		Pluck("staff_phone", &phones).Error; err != nil {
		log.Printf("[ERROR] digest: load admin phones for school %s: %v", schoolID, err)
	}
	return phones
}
