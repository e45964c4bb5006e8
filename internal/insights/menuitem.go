package insights

import (
	"sort"
	"time"

	"dineflow-backend/internal/models"
	"dineflow-backend/internal/sentiment"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// feedbackLimit bounds the raw feedback list returned for display.
const feedbackLimit = 20

// ItemFeedback is one customer's rating of the dish, with their display name.
type ItemFeedback struct {
	UserID   bson.ObjectID `json:"userId"`
	UserName string        `json:"userName"`
	Rating   int           `json:"rating"`
	Comment  string        `json:"comment,omitempty"`
	Date     time.Time     `json:"date"`
}

// MenuItemInsight is the aggregate chef view of one dish across all customers.
type MenuItemInsight struct {
	TotalFeedback     int                 `json:"totalFeedback"`
	Feedback          []ItemFeedback      `json:"feedback"`
	SentimentAnalysis sentiment.Summary   `json:"sentimentAnalysis"`
	Topics            []sentiment.Topic   `json:"topics"`
	RiskLevel         sentiment.RiskLevel `json:"riskLevel"`
	OverallSentiment  sentiment.Sentiment `json:"overallSentiment"`
	AverageRating     float64             `json:"averageRating"`
	Insights          []string            `json:"insights"`
}

// BuildMenuItem summarizes every customer's feedback on one menu item.
// userNames resolves submitter ids to display names; unknown ids keep an
// empty name rather than dropping the record.
func BuildMenuItem(a *sentiment.Analyzer, docs []models.Feedback, menuItemID bson.ObjectID, userNames map[bson.ObjectID]string) MenuItemInsight {
	var records []sentiment.Record
	var entries []ItemFeedback
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
		entries = append(entries, ItemFeedback{
			UserID:   doc.UserID,
			UserName: userNames[doc.UserID],
			Rating:   item.Rating,
			Comment:  item.Comment,
			Date:     doc.CreatedAt,
		})
		if item.Comment != "" {
			comments = append(comments, item.Comment)
		}
	}

	summary := a.Summarize(records)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	if len(entries) > feedbackLimit {
		entries = entries[:feedbackLimit]
	}
	if entries == nil {
		entries = []ItemFeedback{}
	}

	return MenuItemInsight{
		TotalFeedback:     summary.TotalFeedback,
		Feedback:          entries,
		SentimentAnalysis: summary,
		Topics:            sentiment.ExtractTopics(comments),
		RiskLevel:         summary.RiskLevel,
		OverallSentiment:  summary.OverallSentiment,
		AverageRating:     summary.AverageRating,
		Insights:          summary.Insights,
	}
}
