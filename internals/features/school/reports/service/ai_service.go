package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"school360_backend/internals/features/school/reports/model"
	"school360_backend/internals/platform/ai"
)

// Thin prompt builders over the injected completion client. No state.
type AIService struct {
	Completer ai.Completer
	Model     string
}

func NewAIService(completer ai.Completer, modelName string) *AIService {
	return &AIService{Completer: completer, Model: modelName}
}

// Classify labels a freshly submitted report. Callers treat an error as
// "leave analysis null", never as a reason to reject the report.
func (s *AIService) Classify(ctx context.Context, reportText string) (string, error) {
	return ai.ClassifySentiment(ctx, s.Completer, reportText)
}

// DraftResponse proposes a reply the responder can edit before saving.
func (s *AIService) DraftResponse(ctx context.Context, r *model.ReportModel) (string, error) {
	return s.Completer.Complete(ctx,
		"You help school leadership draft short, professional, empathetic responses to staff reports. Reply with the response text only.",
		fmt.Sprintf("Report type: %s\n\nReport:\n%s", r.ReportType, r.ReportText),
	)
}

// Summarize condenses a date range of reports into a leadership brief.
func (s *AIService) Summarize(ctx context.Context, reports []model.ReportModel, from, to time.Time) (string, error) {
	var b strings.Builder
	for i := range reports {
		fmt.Fprintf(&b, "- [%s] %s: %s\n",
			reports[i].ReportCreatedAt.Format("2006-01-02"),
			reports[i].ReportType,
			reports[i].ReportText)
	}
	return s.Completer.Complete(ctx,
		"You summarize school reports for leadership. Produce a short brief: key themes, notable incidents, suggested follow-ups.",
		fmt.Sprintf("Reports from %s to %s:\n%s",
			from.Format("2006-01-02"), to.Format("2006-01-02"), b.String()),
	)
}

// ActionPlan drafts concrete follow-up steps for one report.
func (s *AIService) ActionPlan(ctx context.Context, r *model.ReportModel) (string, error) {
	return s.Completer.Complete(ctx,
		"You draft short, numbered action plans for school incidents. 3-6 concrete steps, each with an owner role.",
		fmt.Sprintf("Report type: %s\n\nReport:\n%s", r.ReportType, r.ReportText),
	)
}
