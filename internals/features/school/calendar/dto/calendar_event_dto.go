package dto

import (
	"time"

	"github.com/google/uuid"

	"school360_backend/internals/features/school/calendar/model"
)

type CalendarEventRequest struct {
	CalendarEventTitle       string     `json:"calendar_event_title" validate:"required,min=1,max=255"`
	CalendarEventDescription string     `json:"calendar_event_description"`
	CalendarEventStartTime   time.Time  `json:"calendar_event_start_time" validate:"required"`
	CalendarEventEndTime     *time.Time `json:"calendar_event_end_time"`
	CalendarEventIsAllDay    bool       `json:"calendar_event_is_all_day"`
}

type CalendarEventUpdateRequest struct {
	CalendarEventTitle       *string    `json:"calendar_event_title"`
	CalendarEventDescription *string    `json:"calendar_event_description"`
	CalendarEventStartTime   *time.Time `json:"calendar_event_start_time"`
	CalendarEventEndTime     *time.Time `json:"calendar_event_end_time"`
	CalendarEventIsAllDay    *bool      `json:"calendar_event_is_all_day"`
}

type CalendarEventResponse struct {
	CalendarEventID          uuid.UUID `json:"calendar_event_id"`
	CalendarEventTitle       string    `json:"calendar_event_title"`
	CalendarEventDescription string    `json:"calendar_event_description"`
	CalendarEventStartTime   time.Time `json:"calendar_event_start_time"`
	CalendarEventEndTime     time.Time `json:"calendar_event_end_time"`
	CalendarEventIsAllDay    bool      `json:"calendar_event_is_all_day"`
	CalendarEventCreatedBy   uuid.UUID `json:"calendar_event_created_by"`
}

// ToModel fills the model, defaulting a missing end time the same way the
// ICS generator does: +1 day for all-day, +1 hour for timed.
func (r *CalendarEventRequest) ToModel(schoolID, createdBy uuid.UUID) *model.CalendarEventModel {
	end := r.CalendarEventEndTime
	if end == nil {
		var e time.Time
		if r.CalendarEventIsAllDay {
			e = r.CalendarEventStartTime.AddDate(0, 0, 1)
		} else {
			e = r.CalendarEventStartTime.Add(time.Hour)
		}
		end = &e
	}
	return &model.CalendarEventModel{
		CalendarEventSchoolID:    schoolID,
		CalendarEventTitle:       r.CalendarEventTitle,
		CalendarEventDescription: r.CalendarEventDescription,
		CalendarEventStartTime:   r.CalendarEventStartTime,
		CalendarEventEndTime:     *end,
		CalendarEventIsAllDay:    r.CalendarEventIsAllDay,
		CalendarEventCreatedBy:   createdBy,
	}
}

func ToCalendarEventResponse(m *model.CalendarEventModel) *CalendarEventResponse {
	return &CalendarEventResponse{
		CalendarEventID:          m.CalendarEventID,
		CalendarEventTitle:       m.CalendarEventTitle,
		CalendarEventDescription: m.CalendarEventDescription,
		CalendarEventStartTime:   m.CalendarEventStartTime,
		CalendarEventEndTime:     m.CalendarEventEndTime,
		CalendarEventIsAllDay:    m.CalendarEventIsAllDay,
		CalendarEventCreatedBy:   m.CalendarEventCreatedBy,
	}
}

func ToCalendarEventResponseList(models []model.CalendarEventModel) []CalendarEventResponse {
	result := make([]CalendarEventResponse, 0, len(models))
	for _, m := range models {
		result = append(result, *ToCalendarEventResponse(&m))
	}
	return result
}
