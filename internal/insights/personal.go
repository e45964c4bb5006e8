// Package insights assembles the chef- and admin-facing analytic views:
// per-customer dish history, per-dish aggregate insight, and the
// restaurant-wide trend dashboard. All builders are pure functions over
// records the caller has already fetched.
package insights

import (
	"sort"
	"time"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const recentLimit = 3

// RecentFeedback is one historical rating shown verbatim in the
// personalized view.
type RecentFeedback struct {
	Rating  int           `json:"rating"`
	Comment string        `json:"comment,omitempty"`
	Date    time.Time     `json:"date"`
	OrderID bson.ObjectID `json:"orderId"`
}

// PersonalInsight is the chef's view of one customer's history with one dish.
type PersonalInsight struct {
	HasHistory        bool                `json:"hasHistory"`
	TotalFeedback     int                 `json:"totalFeedback"`
	RecentFeedback    []RecentFeedback    `json:"recentFeedback"`
	SentimentAnalysis sentiment.Summary   `json:"sentimentAnalysis"`
	Topics            []sentiment.Topic   `json:"topics"`
	RiskLevel         sentiment.RiskLevel `json:"riskLevel"`
	OverallSentiment  sentiment.Sentiment `json:"overallSentiment"`
	AverageRating     float64             `json:"averageRating"`
	Insights          []string            `json:"insights"`
}

// BuildPersonal summarizes one user's feedback documents for one menu item.
// Each document may cover several dishes; only the matching line item is
// extracted. An empty scope reports hasHistory=false and nothing else.
func BuildPersonal(a *sentiment.Analyzer, docs []models.Feedback, menuItemID bson.ObjectID) PersonalInsight {
	var records []sentiment.Record
	var recent []RecentFeedback
	var comments []string

	for _, doc := range docs {
		item, ok := doc.ItemFor(menuItemID)
		if !ok {
			continue
		}
		records = append(records, sentiment.Record{
			Rating:  item.Rating,
			Comment: item.Comment,
			Date:    doc.CreatedAt,
		})
		recent = append(recent, RecentFeedback{
			Rating:  item.Rating,
			Comment: item.Comment,
			Date:    doc.CreatedAt,
			OrderID: doc.OrderID,
		})
		if item.Comment != "" {
			comments = append(comments, item.Comment)
		}
	}

	if len(records) == 0 {
		return PersonalInsight{
			HasHistory:       false,
			RecentFeedback:   []RecentFeedback{},
			Topics:           []sentiment.Topic{},
			Insights:         []string{},
			RiskLevel:        sentiment.RiskLow,
			OverallSentiment: sentiment.Neutral,
		}
	}

	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}

	summary := a.Summarize(records)

	return PersonalInsight{
		HasHistory:        true,
		TotalFeedback:     summary.TotalFeedback,
		RecentFeedback:    recent,
		SentimentAnalysis: summary,
		Topics:            sentiment.ExtractTopics(comments),
		RiskLevel:         summary.RiskLevel,
		OverallSentiment:  summary.OverallSentiment,
		AverageRating:     summary.AverageRating,
		Insights:          summary.Insights,
	}
}
