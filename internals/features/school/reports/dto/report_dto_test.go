package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"school360_backend/internals/features/school/reports/model"
)

func TestSentimentOfRoundTrip(t *testing.T) {
	m := &model.ReportModel{
		ReportAnalysis: MarshalAnalysis(Analysis{
			Sentiment:  "Negative",
			Model:      "gpt-4o-mini",
			AnalyzedAt: time.Now(),
		}),
	}

	assert.Equal(t, "Negative", SentimentOf(m))
}

func TestSentimentOfMissingOrBrokenAnalysis(t *testing.T) {
	assert.Equal(t, "", SentimentOf(&model.ReportModel{}), "never analyzed")
	assert.Equal(t, "", SentimentOf(&model.ReportModel{
		ReportAnalysis: datatypes.JSON(`{not json`),
	}), "unparsable analysis degrades to empty")
}

func TestToReportResponseCarriesSentiment(t *testing.T) {
	m := &model.ReportModel{
		ReportType:     "incident",
		ReportText:     "Fight in the corridor",
		ReportAnalysis: MarshalAnalysis(Analysis{Sentiment: "Negative"}),
	}

	out := ToReportResponse(m)

	assert.Equal(t, "incident", out.ReportType)
	assert.Equal(t, "Negative", out.Sentiment)
}
