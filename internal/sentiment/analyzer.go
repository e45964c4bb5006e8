// Package sentiment classifies free-text dish feedback and aggregates
// per-item ratings into chef-facing summaries.
//
// Classification is lexicon-based: a fixed food-domain keyword list drives
// the primary signal, and a general-purpose VADER polarity score is added
// as a supplementary signal. No model, no I/O — every function here is pure
// and safe for concurrent use.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Sentiment is the coarse polarity label assigned to a comment.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Result is the outcome of scoring a single comment.
type Result struct {
	Sentiment     Sentiment `json:"sentiment"`
	Score         float64   `json:"score"`
	Confidence    float64   `json:"confidence"`
	PositiveCount int       `json:"positiveCount"`
	NegativeCount int       `json:"negativeCount"`
	NeutralCount  int       `json:"neutralCount"`
}

// Analyzer scores comments against an immutable keyword config plus a
// shared VADER analyzer. Construct once and reuse across requests.
type Analyzer struct {
	cfg   Config
	vader *govader.SentimentIntensityAnalyzer
}

func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

func NewAnalyzerWithConfig(cfg Config) *Analyzer {
	return &Analyzer{
		cfg:   cfg,
		vader: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Score classifies one comment. Empty or whitespace-only text short-circuits
// to a zero neutral result without scanning the lexicon.
func (a *Analyzer) Score(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Sentiment: Neutral}
	}

	lower := strings.ToLower(text)

	var score float64
	var positiveCount, negativeCount, neutralCount int

	// Substring matches on purpose: "overcooked!" and "overcooked-ish"
	// should both count.
	for _, kw := range a.cfg.PositiveKeywords {
		if strings.Contains(lower, kw) {
			score++
			positiveCount++
		}
	}
	for _, kw := range a.cfg.NegativeKeywords {
		if strings.Contains(lower, kw) {
			score--
			negativeCount++
		}
	}
	for _, kw := range a.cfg.NeutralKeywords {
		if strings.Contains(lower, kw) {
			neutralCount++
		}
	}

	// Supplementary generic polarity signal, additive to the keyword score.
	score += a.polarity(text)

	totalHits := positiveCount + negativeCount + neutralCount

	var sentiment Sentiment
	var dominant int
	switch {
	case score > a.cfg.PositiveScore:
		sentiment = Positive
		dominant = positiveCount
	case score < a.cfg.NegativeScore:
		sentiment = Negative
		dominant = negativeCount
	default:
		sentiment = Neutral
		dominant = neutralCount
	}

	confidence := math.Min(1, SafeRatio(float64(dominant), float64(totalHits))+a.cfg.ConfidenceBias)

	return Result{
		Sentiment:     sentiment,
		Score:         Round2(score),
		Confidence:    Round2(confidence),
		PositiveCount: positiveCount,
		NegativeCount: negativeCount,
		NeutralCount:  neutralCount,
	}
}

// polarity returns the VADER compound score for text. One malformed comment
// must not sink a whole batch, so any panic from the underlying analyzer
// falls back to 0 (keyword-only scoring).
func (a *Analyzer) polarity(text string) (compound float64) {
	defer func() {
		if r := recover(); r != nil {
			compound = 0
		}
	}()
	return a.vader.PolarityScores(text).Compound
}
