package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToModelDefaultsEndTime(t *testing.T) {
	schoolID, createdBy := uuid.New(), uuid.New()
	start := time.Date(2024, 8, 20, 14, 0, 0, 0, time.UTC)

	timed := (&CalendarEventRequest{
		CalendarEventTitle:     "Staff briefing",
		CalendarEventStartTime: start,
	}).ToModel(schoolID, createdBy)
	assert.Equal(t, start.Add(time.Hour), timed.CalendarEventEndTime)

	allDay := (&CalendarEventRequest{
		CalendarEventTitle:     "Sports Day",
		CalendarEventStartTime: start,
		CalendarEventIsAllDay:  true,
	}).ToModel(schoolID, createdBy)
	assert.Equal(t, start.AddDate(0, 0, 1), allDay.CalendarEventEndTime)
}

func TestToModelKeepsExplicitEndTime(t *testing.T) {
	start := time.Date(2024, 8, 20, 14, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)

	m := (&CalendarEventRequest{
		CalendarEventTitle:     "Open day",
		CalendarEventStartTime: start,
		CalendarEventEndTime:   &end,
	}).ToModel(uuid.New(), uuid.New())

	assert.Equal(t, end, m.CalendarEventEndTime)
}
