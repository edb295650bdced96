package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHeatmapEmptyInput(t *testing.T) {
	out := Heatmap(nil)

	assert.Equal(t, 0, out.Max)
	for d := 0; d < HeatmapDays; d++ {
		for s := 0; s < HeatmapSlots; s++ {
			assert.Equal(t, 0, out.Grid[d][s])
		}
	}
}

func TestHeatmapBucketsByWeekdayAndSlot(t *testing.T) {
	// 2024-08-19 is a Monday
	records := []ReportRecord{
		{CreatedAt: "2024-08-19T09:15:00Z"}, // Mon, slot 2 (08-12)
		{CreatedAt: "2024-08-19T11:59:59Z"}, // Mon, slot 2
		{CreatedAt: "2024-08-19T12:00:00Z"}, // Mon, slot 3
		{CreatedAt: "2024-08-18T00:30:00Z"}, // Sun, slot 0
		{CreatedAt: "not a timestamp"},      // skipped
	}
	out := Heatmap(records)

	assert.Equal(t, 2, out.Grid[1][2])
	assert.Equal(t, 1, out.Grid[1][3])
	assert.Equal(t, 1, out.Grid[0][0])
	assert.Equal(t, 2, out.Max)

	total := 0
	for d := 0; d < HeatmapDays; d++ {
		for s := 0; s < HeatmapSlots; s++ {
			total += out.Grid[d][s]
		}
	}
	assert.Equal(t, 4, total, "malformed row must not land in any bucket")
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		name  string
		value int
		max   int
		want  float64
	}{
		{name: "zero value", value: 0, max: 10, want: 0},
		{name: "negative value", value: -3, max: 10, want: 0},
		{name: "zero max treated as one", value: 2, max: 0, want: 1},
		{name: "floor at 0.1", value: 1, max: 100, want: 0.1},
		{name: "proportional", value: 5, max: 10, want: 0.5},
		{name: "full", value: 10, max: 10, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Opacity(tt.value, tt.max), 1e-9)
		})
	}
}

func TestSentimentOverTimeWindow(t *testing.T) {
	today := day("2024-08-31")
	records := []ReportRecord{
		{Sentiment: "Positive", CreatedAt: "2024-08-31T10:00:00Z"},
		{Sentiment: "Positive", CreatedAt: "2024-08-31T11:00:00Z"},
		{Sentiment: "Negative", CreatedAt: "2024-08-02 08:00:00"},
		{Sentiment: "Neutral", CreatedAt: "2024-08-02"},
		{Sentiment: "Positive", CreatedAt: "2024-08-01T10:00:00Z"}, // before window
		{Sentiment: "Positive", CreatedAt: "garbage"},              // skipped
		{Sentiment: "mixed", CreatedAt: "2024-08-31T12:00:00Z"},    // unknown label
	}

	out := SentimentOverTime(records, today)

	assert.Len(t, out, 30)
	assert.Equal(t, "2024-08-02", out[0].Date)
	assert.Equal(t, "2024-08-31", out[29].Date)
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i-1].Date < out[i].Date, "dates must ascend")
	}

	assert.Equal(t, 2, out[29].Positive)
	assert.Equal(t, 1, out[0].Negative)
	assert.Equal(t, 1, out[0].Neutral)

	sum := 0
	for _, d := range out {
		sum += d.Positive + d.Negative + d.Neutral
	}
	assert.Equal(t, 4, sum)
}

func TestSentimentOverTimeSparseDataStillSeedsEveryDay(t *testing.T) {
	out := SentimentOverTime(nil, day("2024-02-29"))

	assert.Len(t, out, 30)
	assert.Equal(t, "2024-01-31", out[0].Date)
	assert.Equal(t, "2024-02-29", out[29].Date)
	for _, d := range out {
		assert.Zero(t, d.Positive+d.Negative+d.Neutral)
	}
}

func TestTaskTrendCountsFlowNotState(t *testing.T) {
	today := day("2024-08-31")
	tasks := []TaskRecord{
		// created and completed on different days: both days move
		{Status: "Completed", CreatedAt: "2024-08-10T09:00:00Z", UpdatedAt: "2024-08-12T17:00:00Z"},
		// still open: creation only
		{Status: "InProgress", CreatedAt: "2024-08-10T10:00:00Z", UpdatedAt: "2024-08-11T10:00:00Z"},
		// created before the window, finished inside it
		{Status: "Completed", CreatedAt: "2024-07-01T09:00:00Z", UpdatedAt: "2024-08-12T09:00:00Z"},
		{Status: "Completed", CreatedAt: "bad", UpdatedAt: "also bad"},
	}

	out := TaskTrend(tasks, today)
	assert.Len(t, out, 30)

	byDate := map[string]DailyPerformance{}
	for _, d := range out {
		byDate[d.Date] = d
	}
	assert.Equal(t, 2, byDate["2024-08-10"].Created)
	assert.Equal(t, 0, byDate["2024-08-10"].Completed)
	assert.Equal(t, 2, byDate["2024-08-12"].Completed)
	assert.Equal(t, 0, byDate["2024-08-11"].Completed, "open tasks never count as completed")
}

func TestAtRiskScoresWeightsAndOrder(t *testing.T) {
	records := []ReportRecord{
		// s1: one safeguarding report with negative sentiment: 5 + 3
		{StudentID: "s1", StudentName: "Amina", ReportType: "safeguarding", Sentiment: "Negative", CreatedAt: "2024-08-20T10:00:00Z"},
		// s2: two plain reports, one negative: 1 + 1 + 3
		{StudentID: "s2", StudentName: "Bola", ReportType: "academic", Sentiment: "Negative", CreatedAt: "2024-08-21T10:00:00Z"},
		{StudentID: "s2", StudentName: "Bola", ReportType: "academic", Sentiment: "Neutral", CreatedAt: "2024-08-22T10:00:00Z"},
		// s3: one plain positive report: 1
		{StudentID: "s3", StudentName: "Chidi", ReportType: "pastoral", Sentiment: "Positive", CreatedAt: "2024-08-23T10:00:00Z"},
		// no student attached: skipped
		{ReportType: "incident", Sentiment: "Negative", CreatedAt: "2024-08-23T10:00:00Z"},
		// malformed timestamp: skipped
		{StudentID: "s3", ReportType: "incident", Sentiment: "Negative", CreatedAt: "yesterday"},
	}

	out := AtRiskScores(records)

	assert.Len(t, out, 3)
	assert.Equal(t, "s1", out[0].StudentID)
	assert.Equal(t, 8, out[0].Score)
	assert.Equal(t, "s2", out[1].StudentID)
	assert.Equal(t, 5, out[1].Score)
	assert.Equal(t, "s3", out[2].StudentID)
	assert.Equal(t, 1, out[2].Score)
}

func TestAtRiskScoresTieBreaksOnRecency(t *testing.T) {
	records := []ReportRecord{
		{StudentID: "old", ReportType: "academic", CreatedAt: "2024-08-01T10:00:00Z"},
		{StudentID: "recent", ReportType: "academic", CreatedAt: "2024-08-25T10:00:00Z"},
	}

	out := AtRiskScores(records)

	assert.Len(t, out, 2)
	assert.Equal(t, out[0].Score, out[1].Score)
	assert.Equal(t, "recent", out[0].StudentID)
}

func TestAtRiskReasons(t *testing.T) {
	records := []ReportRecord{
		{StudentID: "s1", ReportType: "incident", Sentiment: "Negative", CreatedAt: "2024-08-20T10:00:00Z"},
		{StudentID: "s1", ReportType: "academic", Sentiment: "Negative", CreatedAt: "2024-08-21T10:00:00Z"},
	}

	out := AtRiskScores(records)

	assert.Len(t, out, 1)
	assert.Equal(t, []string{
		"2 reports filed",
		"2 negative reports",
		"1 incident/safeguarding report",
	}, out[0].Reasons)
}

func TestParseTimeLayouts(t *testing.T) {
	for _, s := range []string{"2024-08-20T10:00:00Z", "2024-08-20 10:00:00", "2024-08-20"} {
		_, ok := parseTime(s)
		assert.True(t, ok, s)
	}
	for _, s := range []string{"", "20/08/2024", "2024-13-99", "next tuesday"} {
		_, ok := parseTime(s)
		assert.False(t, ok, s)
	}
}
