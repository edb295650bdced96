package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventModel struct {
	CalendarEventID       uuid.UUID `gorm:"column:calendar_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"calendar_event_id"`
	CalendarEventSchoolID uuid.UUID `gorm:"column:calendar_event_school_id;type:uuid;not null;index:idx_calendar_events_school_id" json:"calendar_event_school_id"`

	CalendarEventTitle       string    `gorm:"column:calendar_event_title;type:varchar(255);not null" json:"calendar_event_title"`
	CalendarEventDescription string    `gorm:"column:calendar_event_description;type:text" json:"calendar_event_description"`
	CalendarEventStartTime   time.Time `gorm:"column:calendar_event_start_time;type:timestamptz;not null" json:"calendar_event_start_time"`
	CalendarEventEndTime     time.Time `gorm:"column:calendar_event_end_time;type:timestamptz;not null" json:"calendar_event_end_time"`
	CalendarEventIsAllDay    bool      `gorm:"column:calendar_event_is_all_day;not null;default:false" json:"calendar_event_is_all_day"`
	CalendarEventCreatedBy   uuid.UUID `gorm:"column:calendar_event_created_by;type:uuid;not null" json:"calendar_event_created_by"`

	CalendarEventCreatedAt time.Time      `gorm:"column:calendar_event_created_at;type:timestamptz;autoCreateTime" json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time      `gorm:"column:calendar_event_updated_at;type:timestamptz;autoUpdateTime" json:"calendar_event_updated_at"`
	CalendarEventDeletedAt gorm.DeletedAt `gorm:"column:calendar_event_deleted_at;type:timestamptz;index" json:"calendar_event_deleted_at,omitempty"`

	// No recurrence model: each occurrence is its own record.
	// end >= start is also guarded in the migration:
	//   ALTER TABLE calendar_events ADD CONSTRAINT chk_calendar_events_range
	//   CHECK (calendar_event_end_time >= calendar_event_start_time);
}

func (CalendarEventModel) TableName() string {
	return "calendar_events"
}
