package sentiment

import (
	"math"
	"strings"
	"time"
)

// RiskLevel is the chef-facing severity label for a dish's recent feedback.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Advisory strings appended by the insight rules, in evaluation order.
const (
	insightLowRating    = "Low average rating - consider improving this dish"
	insightMoreNegative = "More negative feedback than positive - customer satisfaction needs attention"
	insightSomeNegative = "Some customers have expressed concerns - review feedback for improvement areas"
	insightWellReceived = "Generally well-received dish with positive feedback"
)

// Record is one rating with its optional comment, assembled per request
// from stored feedback documents.
type Record struct {
	Rating  int
	Comment string
	Date    time.Time
}

// Breakdown counts comment classifications per polarity. Records without a
// comment contribute to rating math only.
type Breakdown struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// Summary is the aggregate view over all records in one scope.
type Summary struct {
	OverallSentiment      Sentiment `json:"overallSentiment"`
	AverageRating         float64   `json:"averageRating"`
	TotalFeedback         int       `json:"totalFeedback"`
	SentimentBreakdown    Breakdown `json:"sentimentBreakdown"`
	Insights              []string  `json:"insights"`
	RiskLevel             RiskLevel `json:"riskLevel"`
	AverageSentimentScore float64   `json:"averageSentimentScore"`
}

// Summarize aggregates records into a Summary: average rating, sentiment
// breakdown over commented records, advisory insights, and a risk level.
// An empty slice yields the zero neutral summary with low risk.
func (a *Analyzer) Summarize(records []Record) Summary {
	if len(records) == 0 {
		return Summary{
			OverallSentiment: Neutral,
			RiskLevel:        RiskLow,
			Insights:         []string{},
		}
	}

	var totalRating, totalScore float64
	var breakdown Breakdown

	for _, rec := range records {
		totalRating += float64(rec.Rating)

		// A blank comment is the same as no comment at all.
		if strings.TrimSpace(rec.Comment) != "" {
			result := a.Score(rec.Comment)
			totalScore += result.Score
			switch result.Sentiment {
			case Positive:
				breakdown.Positive++
			case Negative:
				breakdown.Negative++
			default:
				breakdown.Neutral++
			}
		}
	}

	averageRating := totalRating / float64(len(records))
	// The sentiment average divides by the full record count, so uncommented
	// ratings dilute it toward zero. Kept as-is pending product review.
	averageScore := totalScore / float64(len(records))

	overall := Neutral
	if averageScore > a.cfg.OverallPositive {
		overall = Positive
	} else if averageScore < a.cfg.OverallNegative {
		overall = Negative
	}

	insights := []string{}
	if averageRating < a.cfg.LowRating {
		insights = append(insights, insightLowRating)
	}
	if breakdown.Negative > breakdown.Positive {
		insights = append(insights, insightMoreNegative)
	}
	if breakdown.Negative > 0 {
		insights = append(insights, insightSomeNegative)
	}
	if averageRating >= a.cfg.GoodRating && breakdown.Positive > 0 {
		insights = append(insights, insightWellReceived)
	}

	// High takes precedence over medium even when both match.
	risk := RiskLow
	if averageRating < a.cfg.HighRiskRating || breakdown.Negative > breakdown.Positive {
		risk = RiskHigh
	} else if averageRating < a.cfg.MedRiskRating || breakdown.Negative > 0 {
		risk = RiskMedium
	}

	return Summary{
		OverallSentiment:      overall,
		AverageRating:         Round2(averageRating),
		TotalFeedback:         len(records),
		SentimentBreakdown:    breakdown,
		Insights:              insights,
		RiskLevel:             risk,
		AverageSentimentScore: Round2(averageScore),
	}
}

// SafeRatio divides num by den, returning 0 for a zero denominator. Every
// percentage and average in the analytics path goes through here so a
// zero-denominator never leaks a NaN or Inf into a response.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
