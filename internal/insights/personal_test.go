package insights

import (
	"fmt"
	"testing"
	"time"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func oid(n byte) bson.ObjectID {
	var id bson.ObjectID
	id[11] = n
	return id
}

func day(n int) time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestBuildPersonalEmptyScope(t *testing.T) {
	a := sentiment.NewAnalyzer()
	got := BuildPersonal(a, nil, oid(1))

	if got.HasHistory {
		t.Error("HasHistory = true, want false")
	}
	if got.TotalFeedback != 0 {
		t.Errorf("TotalFeedback = %d, want 0", got.TotalFeedback)
	}
	if got.RiskLevel != sentiment.RiskLow {
		t.Errorf("RiskLevel = %v, want %v", got.RiskLevel, sentiment.RiskLow)
	}
	if got.RecentFeedback == nil || got.Topics == nil || got.Insights == nil {
		t.Error("slices must be empty, not nil")
	}
}

// Documents rating only other dishes must not count as history.
func TestBuildPersonalIgnoresOtherItems(t *testing.T) {
	a := sentiment.NewAnalyzer()
	dish, other := oid(1), oid(2)

	docs := []models.Feedback{
		{
			OrderID:   oid(10),
			CreatedAt: day(0),
			Items:     []models.FeedbackItem{{MenuItemID: other, Rating: 1, Comment: "terrible"}},
		},
	}
	got := BuildPersonal(a, docs, dish)
	if got.HasHistory {
		t.Errorf("HasHistory = true for docs without the dish: %+v", got)
	}
}

func TestBuildPersonalExtractsMatchingLineItem(t *testing.T) {
	a := sentiment.NewAnalyzer()
	dish, other := oid(1), oid(2)

	docs := []models.Feedback{
		{
			OrderID:   oid(10),
			CreatedAt: day(0),
			Items: []models.FeedbackItem{
				{MenuItemID: dish, Rating: 5, Comment: "delicious"},
				{MenuItemID: other, Rating: 1, Comment: "disgusting"},
			},
		},
		{
			OrderID:   oid(11),
			CreatedAt: day(1),
			Items:     []models.FeedbackItem{{MenuItemID: dish, Rating: 4}},
		},
	}
	got := BuildPersonal(a, docs, dish)

	if !got.HasHistory {
		t.Fatal("HasHistory = false, want true")
	}
	if got.TotalFeedback != 2 {
		t.Errorf("TotalFeedback = %d, want 2", got.TotalFeedback)
	}
	if got.AverageRating != 4.5 {
		t.Errorf("AverageRating = %v, want 4.5 (other dish's rating leaked in?)", got.AverageRating)
	}
	// Only the matching line item's comment is scored.
	if got.SentimentAnalysis.SentimentBreakdown.Negative != 0 {
		t.Errorf("Negative = %d, want 0", got.SentimentAnalysis.SentimentBreakdown.Negative)
	}
}

func TestBuildPersonalRecentThreeMostRecent(t *testing.T) {
	a := sentiment.NewAnalyzer()
	dish := oid(1)

	var docs []models.Feedback
	for i := 0; i < 5; i++ {
		docs = append(docs, models.Feedback{
			OrderID:   oid(byte(10 + i)),
			CreatedAt: day(i),
			Items:     []models.FeedbackItem{{MenuItemID: dish, Rating: i + 1}},
		})
	}
	got := BuildPersonal(a, docs, dish)

	if len(got.RecentFeedback) != 3 {
		t.Fatalf("len(RecentFeedback) = %d, want 3", len(got.RecentFeedback))
	}
	for i := 1; i < len(got.RecentFeedback); i++ {
		if got.RecentFeedback[i].Date.After(got.RecentFeedback[i-1].Date) {
			t.Errorf("RecentFeedback not in descending date order: %v", got.RecentFeedback)
		}
	}
	if got.RecentFeedback[0].OrderID != oid(14) {
		t.Errorf("most recent OrderID = %v, want %v", got.RecentFeedback[0].OrderID, oid(14))
	}
	if got.TotalFeedback != 5 {
		t.Errorf("TotalFeedback = %d, want 5 (recent slice must not shrink the total)", got.TotalFeedback)
	}
}

func TestBuildPersonalDuplicatesSummaryFields(t *testing.T) {
	a := sentiment.NewAnalyzer()
	dish := oid(1)
	docs := []models.Feedback{
		{
			OrderID:   oid(10),
			CreatedAt: day(0),
			Items:     []models.FeedbackItem{{MenuItemID: dish, Rating: 2, Comment: "cold and bland"}},
		},
	}
	got := BuildPersonal(a, docs, dish)

	if got.RiskLevel != got.SentimentAnalysis.RiskLevel {
		t.Error("RiskLevel must mirror SentimentAnalysis.RiskLevel")
	}
	if got.OverallSentiment != got.SentimentAnalysis.OverallSentiment {
		t.Error("OverallSentiment must mirror SentimentAnalysis.OverallSentiment")
	}
	if got.AverageRating != got.SentimentAnalysis.AverageRating {
		t.Error("AverageRating must mirror SentimentAnalysis.AverageRating")
	}
	if fmt.Sprint(got.Insights) != fmt.Sprint(got.SentimentAnalysis.Insights) {
		t.Error("Insights must mirror SentimentAnalysis.Insights")
	}
}
