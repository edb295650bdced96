// file: internals/features/analytics/service/aggregator_service.go
//
// Engagement aggregation for the dashboard widgets. Every function here
// is pure: full input in, fresh output out, no shared state, safe to call
// on every request. Records arrive with raw timestamp strings (the shape
// the dashboard API serves); anything malformed is silently excluded from
// all buckets; dashboards are best effort, never 500s.
package service

import (
	"sort"
	"strconv"
	"time"
)

const trailingWindowDays = 30

// heatmap dimensions: 7 weekdays x 6 four-hour slots
const (
	HeatmapDays  = 7
	HeatmapSlots = 6
)

type ReportRecord struct {
	StudentID   string `json:"student_id,omitempty"`
	StudentName string `json:"student_name,omitempty"`
	ReportType  string `json:"report_type,omitempty"`
	Sentiment   string `json:"sentiment,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type TaskRecord struct {
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type HeatmapResult struct {
	// Grid[day][slot], day 0 = Sunday, slot = hour/4
	Grid [HeatmapDays][HeatmapSlots]int `json:"grid"`
	Max  int                            `json:"max"`
}

type DailySentiment struct {
	Date     string `json:"date"`
	Positive int    `json:"Positive"`
	Negative int    `json:"Negative"`
	Neutral  int    `json:"Neutral"`
}

type DailyPerformance struct {
	Date      string `json:"date"`
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

type AtRiskEntry struct {
	StudentID   string   `json:"student_id"`
	StudentName string   `json:"student_name"`
	Score       int      `json:"score"`
	Reasons     []string `json:"reasons"`
}

// parseTime accepts the two shapes the API emits. Second return is false
// for anything malformed.
func parseTime(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Heatmap buckets records into the 42-cell week grid and tracks the max
// cell (color normalization). Empty input: all-zero grid, max 0.
func Heatmap(records []ReportRecord) HeatmapResult {
	var out HeatmapResult
	for _, r := range records {
		t, ok := parseTime(r.CreatedAt)
		if !ok {
			continue
		}
		day := int(t.Weekday())
		slot := t.Hour() / 4
		out.Grid[day][slot]++
		if out.Grid[day][slot] > out.Max {
			out.Max = out.Grid[day][slot]
		}
	}
	return out
}

// Opacity maps a cell value to its color intensity. Zero cells get no
// baseline; max 0 is treated as 1 so empty grids never divide by zero.
func Opacity(value, max int) float64 {
	if value <= 0 {
		return 0
	}
	if max <= 0 {
		max = 1
	}
	op := float64(value) / float64(max)
	if op < 0.1 {
		return 0.1
	}
	if op > 1 {
		return 1
	}
	return op
}

// SentimentOverTime counts labeled records per day over the trailing
// 30-day window ending today (inclusive). Every date is pre-seeded so
// sparse data still yields exactly 30 ascending entries. Records outside
// the window, without a recognized label, or with a malformed timestamp
// are skipped.
func SentimentOverTime(records []ReportRecord, today time.Time) []DailySentiment {
	days, index := seedWindow(today)
	out := make([]DailySentiment, len(days))
	for i, d := range days {
		out[i] = DailySentiment{Date: d}
	}

	for _, r := range records {
		t, ok := parseTime(r.CreatedAt)
		if !ok {
			continue
		}
		i, ok := index[t.Format("2006-01-02")]
		if !ok {
			continue
		}
		switch r.Sentiment {
		case "Positive":
			out[i].Positive++
		case "Negative":
			out[i].Negative++
		case "Neutral":
			out[i].Neutral++
		}
	}
	return out
}

// TaskTrend tracks flow, not snapshot state: creations count on the
// created_at date, completions on the updated_at date (only for tasks
// currently Completed). A task created and finished on different days
// increments different days' counters on purpose.
func TaskTrend(tasks []TaskRecord, today time.Time) []DailyPerformance {
	days, index := seedWindow(today)
	out := make([]DailyPerformance, len(days))
	for i, d := range days {
		out[i] = DailyPerformance{Date: d}
	}

	for _, task := range tasks {
		if t, ok := parseTime(task.CreatedAt); ok {
			if i, ok := index[t.Format("2006-01-02")]; ok {
				out[i].Created++
			}
		}
		if task.Status != "Completed" {
			continue
		}
		if t, ok := parseTime(task.UpdatedAt); ok {
			if i, ok := index[t.Format("2006-01-02")]; ok {
				out[i].Completed++
			}
		}
	}
	return out
}

func seedWindow(today time.Time) ([]string, map[string]int) {
	days := make([]string, trailingWindowDays)
	index := make(map[string]int, trailingWindowDays)
	start := today.AddDate(0, 0, -(trailingWindowDays - 1))
	for i := 0; i < trailingWindowDays; i++ {
		d := start.AddDate(0, 0, i).Format("2006-01-02")
		days[i] = d
		index[d] = i
	}
	return days, index
}

// at-risk weights
const (
	weightSevereType        = 5 // incident, safeguarding
	weightNegativeSentiment = 3
	weightBase              = 1
)

func severeType(reportType string) bool {
	return reportType == "incident" || reportType == "safeguarding"
}

// AtRiskScores aggregates negative signals per student into a severity-
// sorted list. No size bound: the caller truncates/searches client-side.
// Records without a student or with malformed timestamps are skipped.
func AtRiskScores(records []ReportRecord) []AtRiskEntry {
	type acc struct {
		entry     AtRiskEntry
		negative  int
		severe    int
		total     int
		lastSeen  time.Time
	}
	byStudent := map[string]*acc{}

	for _, r := range records {
		if r.StudentID == "" {
			continue
		}
		t, ok := parseTime(r.CreatedAt)
		if !ok {
			continue
		}
		a, exists := byStudent[r.StudentID]
		if !exists {
			a = &acc{entry: AtRiskEntry{StudentID: r.StudentID, StudentName: r.StudentName}}
			byStudent[r.StudentID] = a
		}
		if severeType(r.ReportType) {
			a.entry.Score += weightSevereType
			a.severe++
		} else {
			a.entry.Score += weightBase
		}
		if r.Sentiment == "Negative" {
			a.entry.Score += weightNegativeSentiment
			a.negative++
		}
		a.total++
		if t.After(a.lastSeen) {
			a.lastSeen = t
		}
	}

	out := make([]AtRiskEntry, 0, len(byStudent))
	lastSeen := make(map[string]time.Time, len(byStudent))
	for _, a := range byStudent {
		a.entry.Reasons = buildReasons(a.total, a.negative, a.severe)
		out = append(out, a.entry)
		lastSeen[a.entry.StudentID] = a.lastSeen
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return lastSeen[out[i].StudentID].After(lastSeen[out[j].StudentID])
	})
	return out
}

func buildReasons(total, negative, severe int) []string {
	reasons := []string{plural(total, "report") + " filed"}
	if negative > 0 {
		reasons = append(reasons, plural(negative, "negative report"))
	}
	if severe > 0 {
		reasons = append(reasons, plural(severe, "incident/safeguarding report"))
	}
	return reasons
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
