package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"school360_backend/internals/features/school/reports/model"
)

type recordingCompleter struct {
	system string
	user   string
	out    string
	err    error
}

func (r *recordingCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	r.system, r.user = system, user
	return r.out, r.err
}

func TestClassifyNormalizesLabel(t *testing.T) {
	svc := NewAIService(&recordingCompleter{out: "POSITIVE, clearly."}, "m")

	got, err := svc.Classify(context.Background(), "Great assembly today")

	assert.NoError(t, err)
	assert.Equal(t, "Positive", got)
}

func TestClassifyPropagatesUpstreamError(t *testing.T) {
	svc := NewAIService(&recordingCompleter{err: errors.New("boom")}, "m")

	_, err := svc.Classify(context.Background(), "text")
	assert.Error(t, err)
}

func TestDraftResponsePromptCarriesReport(t *testing.T) {
	c := &recordingCompleter{out: "Thank you for flagging this."}
	svc := NewAIService(c, "m")
	r := &model.ReportModel{ReportType: "incident", ReportText: "Broken window in lab 2"}

	out, err := svc.DraftResponse(context.Background(), r)

	assert.NoError(t, err)
	assert.Equal(t, "Thank you for flagging this.", out)
	assert.Contains(t, c.user, "incident")
	assert.Contains(t, c.user, "Broken window in lab 2")
}

func TestSummarizePromptListsEveryReport(t *testing.T) {
	c := &recordingCompleter{out: "brief"}
	svc := NewAIService(c, "m")
	when := time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC)
	reports := []model.ReportModel{
		{ReportType: "praise", ReportText: "Choir won regionals", ReportCreatedAt: when},
		{ReportType: "incident", ReportText: "Bus arrived late", ReportCreatedAt: when.AddDate(0, 0, 1)},
	}

	_, err := svc.Summarize(context.Background(), reports,
		time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Contains(t, c.user, "2024-08-01")
	assert.Contains(t, c.user, "2024-08-31")
	assert.Contains(t, c.user, "Choir won regionals")
	assert.Contains(t, c.user, "[2024-08-21] incident: Bus arrived late")
}
