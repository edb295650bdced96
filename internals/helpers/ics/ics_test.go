package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, crlf), crlf)
}

// unfold reverses RFC 5545 folding so assertions can look at whole
// properties again.
func unfold(s string) string {
	return strings.ReplaceAll(s, crlf+" ", "")
}

func TestCalendarEnvelope(t *testing.T) {
	out := Calendar(nil)

	assert.Equal(t, []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"END:VCALENDAR",
	}, lines(out))
}

func TestAllDayEventUsesExclusiveNextDayEnd(t *testing.T) {
	start := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	out := unfold(Calendar([]Event{{Title: "Sports Day", StartDate: start, IsAllDay: true}}))

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240820"+crlf)
	assert.Contains(t, out, "DTEND;VALUE=DATE:20240821"+crlf)
}

func TestAllDayEventKeepsLocalCalendarDate(t *testing.T) {
	// UTC+14: midnight local is the previous day in UTC. The rendered
	// date must stay the one the user picked.
	loc := time.FixedZone("UTC+14", 14*3600)
	start := time.Date(2024, 8, 20, 0, 0, 0, 0, loc)
	out := unfold(Calendar([]Event{{Title: "Term opens", StartDate: start, IsAllDay: true}}))

	assert.Contains(t, out, "DTSTART;VALUE=DATE:20240820"+crlf)
}

func TestTimedEventDefaultsToOneHour(t *testing.T) {
	start := time.Date(2024, 8, 20, 14, 30, 0, 0, time.UTC)
	out := unfold(Calendar([]Event{{Title: "Staff briefing", StartDate: start}}))

	assert.Contains(t, out, "DTSTART:20240820T143000Z"+crlf)
	assert.Contains(t, out, "DTEND:20240820T153000Z"+crlf)
}

func TestTimedEventRendersInUTC(t *testing.T) {
	lagos := time.FixedZone("WAT", 3600)
	start := time.Date(2024, 8, 20, 9, 0, 0, 0, lagos)
	end := time.Date(2024, 8, 20, 10, 30, 0, 0, lagos)
	out := unfold(Calendar([]Event{{Title: "PTA meeting", StartDate: start, EndDate: &end}}))

	assert.Contains(t, out, "DTSTART:20240820T080000Z"+crlf)
	assert.Contains(t, out, "DTEND:20240820T093000Z"+crlf)
}

func TestExplicitAllDayEndIsKeptVerbatim(t *testing.T) {
	start := time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 8, 23, 0, 0, 0, 0, time.UTC)
	out := unfold(Calendar([]Event{{Title: "Mid-term break", StartDate: start, EndDate: &end, IsAllDay: true}}))

	assert.Contains(t, out, "DTEND;VALUE=DATE:20240823"+crlf)
}

func TestDescriptionNewlinesBecomeLiteralSequences(t *testing.T) {
	start := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)
	out := unfold(Calendar([]Event{{
		Title:       "Assembly",
		Description: "Bring:\r\n- flags\n- banners",
		StartDate:   start,
	}}))

	assert.Contains(t, out, `DESCRIPTION:Bring:\n- flags\n- banners`+crlf)
	assert.NotContains(t, out, "banners\n"+crlf)
}

func TestLongLinesAreFoldedAt75Bytes(t *testing.T) {
	start := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)
	long := strings.Repeat("x", 200)
	out := Calendar([]Event{{Title: long, StartDate: start}})

	for _, l := range lines(out) {
		if strings.HasPrefix(l, " ") {
			// continuation: one marker space plus at most one chunk
			assert.LessOrEqual(t, len(l), foldAt+1, l)
		} else {
			assert.LessOrEqual(t, len(l), foldAt, l)
		}
	}
	// unfolding restores the full property
	assert.Contains(t, unfold(out), "SUMMARY:"+long)
}

func TestUIDShape(t *testing.T) {
	start := time.Date(2024, 8, 20, 9, 0, 0, 0, time.UTC)
	out := unfold(Calendar([]Event{{Title: "One", StartDate: start}, {Title: "Two", StartDate: start}}))

	var uids []string
	for _, l := range lines(out) {
		if strings.HasPrefix(l, "UID:") {
			uids = append(uids, l)
		}
	}
	assert.Len(t, uids, 2)
	for _, uid := range uids {
		assert.True(t, strings.HasSuffix(uid, "@"+uidDomain), uid)
		assert.Contains(t, uid, "-")
	}
	assert.NotEqual(t, uids[0], uids[1])
}
