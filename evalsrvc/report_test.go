package evalsrvc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sortify-ai/backend/evalsrvc"
)

func TestGenerateBasicReport(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	report := srvc.GenerateReport(context.Background(), sampleTranscript, 5.2)

	assert.True(t, strings.HasPrefix(report, "# Technical Interview Evaluation Report"))
	assert.Contains(t, report, "Final Score: **5.20/10**")
	assert.Contains(t, report, "Do Not Hire")
	assert.Contains(t, report, "Number of questions: 2")
	assert.Contains(t, report, "Highest score: 8/10")
	assert.Contains(t, report, "Lowest score: 6/10")
	assert.Contains(t, report, "Score distribution: 8, 6")
}

func TestGenerateBasicReportNoScores(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(nil)

	report := srvc.GenerateReport(context.Background(), "empty interview", 0)
	assert.Contains(t, report, "No scores recorded")
}

func TestGenerateReportPrefixesHeading(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(fixedGen{text: "The candidate did well overall."})

	report := srvc.GenerateReport(context.Background(), sampleTranscript, 7.5)

	// A model answer without a Markdown heading gets one prepended.
	assert.True(t, strings.HasPrefix(report, "# Interview Evaluation Report"))
	assert.Contains(t, report, "## Final Score: 7.50/10")
	assert.Contains(t, report, "The candidate did well overall.")
}

func TestGenerateReportFallsBackOnError(t *testing.T) {
	srvc := evalsrvc.NewEvalSrvc(failingGen{})

	report := srvc.GenerateReport(context.Background(), sampleTranscript, 8.4)
	assert.Contains(t, report, "Strong Hire")
}

func TestRecommendationBands(t *testing.T) {
	assert.Contains(t, evalsrvc.Recommendation(9.1), "Strong Hire")
	assert.Contains(t, evalsrvc.Recommendation(8.0), "Strong Hire")
	assert.Contains(t, evalsrvc.Recommendation(6.5), "Consider with Training")
	assert.Contains(t, evalsrvc.Recommendation(5.9), "Do Not Hire")
}
