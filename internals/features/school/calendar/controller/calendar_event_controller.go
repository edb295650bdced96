package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school360_backend/internals/features/school/calendar/dto"
	"school360_backend/internals/features/school/calendar/model"
	helper "school360_backend/internals/helpers"
	"school360_backend/internals/helpers/export"
	"school360_backend/internals/helpers/ics"
)

type CalendarEventController struct {
	DB *gorm.DB
}

func NewCalendarEventController(db *gorm.DB) *CalendarEventController {
	return &CalendarEventController{DB: db}
}

// 🟢 POST /api/a/calendar-events
func (ctrl *CalendarEventController) CreateEvent(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate(c, &req); err != nil {
		return err
	}

	newEvent := req.ToModel(schoolID, userID)
	// enforce the range invariant here, not just in the form
	if newEvent.CalendarEventEndTime.Before(newEvent.CalendarEventStartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End time must not be before start time")
	}

	if err := ctrl.DB.Create(newEvent).Error; err != nil {
		log.Printf("[ERROR] create calendar event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save event")
	}
	return helper.JsonCreated(c, "Event created", dto.ToCalendarEventResponse(newEvent))
}

// 🟢 GET /api/u/calendar-events?from=&to=
func (ctrl *CalendarEventController) ListEvents(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.CalendarEventModel{}).Where("calendar_event_school_id = ?", schoolID)
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("calendar_event_start_time >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("calendar_event_start_time < ?", t.AddDate(0, 0, 1))
		}
	}

	var events []model.CalendarEventModel
	if err := q.Order("calendar_event_start_time ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Events loaded", dto.ToCalendarEventResponseList(events))
}

// 🟡 PATCH /api/a/calendar-events/:id
func (ctrl *CalendarEventController) UpdateEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}
	var ev model.CalendarEventModel
	if err := ctrl.DB.Where("calendar_event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var req dto.CalendarEventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	updates := map[string]interface{}{}
	start := ev.CalendarEventStartTime
	end := ev.CalendarEventEndTime
	if req.CalendarEventTitle != nil {
		updates["calendar_event_title"] = *req.CalendarEventTitle
	}
	if req.CalendarEventDescription != nil {
		updates["calendar_event_description"] = *req.CalendarEventDescription
	}
	if req.CalendarEventStartTime != nil {
		start = *req.CalendarEventStartTime
		updates["calendar_event_start_time"] = start
	}
	if req.CalendarEventEndTime != nil {
		end = *req.CalendarEventEndTime
		updates["calendar_event_end_time"] = end
	}
	if req.CalendarEventIsAllDay != nil {
		updates["calendar_event_is_all_day"] = *req.CalendarEventIsAllDay
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End time must not be before start time")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}
	if err := ctrl.DB.Where("calendar_event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload event")
	}
	return helper.JsonUpdated(c, "Event updated", dto.ToCalendarEventResponse(&ev))
}

// 🔴 DELETE /api/a/calendar-events/:id
func (ctrl *CalendarEventController) DeleteEvent(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}
	if err := ctrl.DB.Where("calendar_event_id = ?", id).Delete(&model.CalendarEventModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"calendar_event_id": id})
}

// 🟢 GET /api/u/calendar-events/:id/ics
func (ctrl *CalendarEventController) DownloadEventICS(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event ID is required")
	}
	var ev model.CalendarEventModel
	if err := ctrl.DB.Where("calendar_event_id = ?", id).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	return writeICS(c, "event.ics", []ics.Event{toICSEvent(&ev)})
}

// 🟢 GET /api/u/calendar-events/ics?from=&to=
func (ctrl *CalendarEventController) DownloadCalendarICS(c *fiber.Ctx) error {
	schoolID, err := helper.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.CalendarEventModel{}).Where("calendar_event_school_id = ?", schoolID)
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("calendar_event_start_time >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("calendar_event_start_time < ?", t.AddDate(0, 0, 1))
		}
	}

	var events []model.CalendarEventModel
	if err := q.Order("calendar_event_start_time ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	icsEvents := make([]ics.Event, 0, len(events))
	for i := range events {
		icsEvents = append(icsEvents, toICSEvent(&events[i]))
	}
	return writeICS(c, export.Filename("school_calendar", "ics", true), icsEvents)
}

func toICSEvent(ev *model.CalendarEventModel) ics.Event {
	end := ev.CalendarEventEndTime
	return ics.Event{
		Title:       ev.CalendarEventTitle,
		Description: ev.CalendarEventDescription,
		StartDate:   ev.CalendarEventStartTime,
		EndDate:     &end,
		IsAllDay:    ev.CalendarEventIsAllDay,
	}
}

func writeICS(c *fiber.Ctx, filename string, events []ics.Event) error {
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.SendString(ics.Calendar(events))
}
