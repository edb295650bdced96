// file: internals/helpers/ics/ics.go
//
// Minimal iCalendar (RFC 5545 subset) generator. Output is meant for
// download-and-import into standard calendar clients; there is no parser
// and no schema validation here.
package ics

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	prodID    = "-//School360//Operations Dashboard//EN"
	uidDomain = "school360.app"
	crlf      = "\r\n"

	// Fold threshold per RFC 5545 §3.1. We chunk by raw byte count,
	// which is what every tested client tolerates.
	foldAt = 75
)

type Event struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time // nil: inferred (+1 day all-day, +1 hour timed)
	IsAllDay    bool
}

// Calendar renders one VCALENDAR wrapping every event block.
func Calendar(events []Event) string {
	var b strings.Builder
	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	now := time.Now()
	for i := range events {
		writeEvent(&b, &events[i], now)
	}
	writeLine(&b, "END:VCALENDAR")
	return b.String()
}

func writeEvent(b *strings.Builder, ev *Event, now time.Time) {
	writeLine(b, "BEGIN:VEVENT")
	writeLine(b, "UID:"+newUID(now))
	writeLine(b, "DTSTAMP:"+formatUTC(now))

	end := ev.EndDate
	if ev.IsAllDay {
		// iCal all-day DTEND is exclusive: a one-day event ends the next
		// calendar day. Local date components on purpose, so picking
		// "Aug 20" stays Aug 20 whatever the timezone offset.
		if end == nil {
			e := ev.StartDate.AddDate(0, 0, 1)
			end = &e
		}
		writeLine(b, "DTSTART;VALUE=DATE:"+formatLocalDate(ev.StartDate))
		writeLine(b, "DTEND;VALUE=DATE:"+formatLocalDate(*end))
	} else {
		if end == nil {
			e := ev.StartDate.Add(time.Hour)
			end = &e
		}
		writeLine(b, "DTSTART:"+formatUTC(ev.StartDate))
		writeLine(b, "DTEND:"+formatUTC(*end))
	}

	writeLine(b, "SUMMARY:"+escapeText(ev.Title))
	writeLine(b, "DESCRIPTION:"+escapeText(ev.Description))
	writeLine(b, "END:VEVENT")
}

// newUID: timestamp + random suffix + fixed domain, globally unique.
func newUID(now time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("%d-%s@%s", now.UnixNano(), suffix, uidDomain)
}

// formatUTC renders a timed value as YYYYMMDDTHHMMSSZ (absolute time).
func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405") + "Z"
}

// formatLocalDate renders the event's local calendar date, not UTC.
func formatLocalDate(t time.Time) string {
	return t.Format("20060102")
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

// writeLine folds anything over the threshold with CRLF + one space.
func writeLine(b *strings.Builder, line string) {
	for len(line) > foldAt {
		b.WriteString(line[:foldAt])
		b.WriteString(crlf)
		b.WriteString(" ")
		line = line[foldAt:]
	}
	b.WriteString(line)
	b.WriteString(crlf)
}
