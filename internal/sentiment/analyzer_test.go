package sentiment

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name     string
		input    string
		wantSent Sentiment
		minPos   int
		minNeg   int
	}{
		{
			name:     "empty input",
			input:    "",
			wantSent: Neutral,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			wantSent: Neutral,
		},
		{
			name:     "strongly positive",
			input:    "This was delicious and amazing",
			wantSent: Positive,
			minPos:   2,
		},
		{
			name:     "strongly negative",
			input:    "This was terrible and disgusting",
			wantSent: Negative,
			minNeg:   2,
		},
		{
			name:     "mixed leaning negative",
			input:    "The sauce was good but the meat was burnt, overcooked and cold",
			wantSent: Negative,
			minPos:   1,
			minNeg:   3,
		},
		{
			name:     "substring match inside larger word",
			input:    "absolutely loved it",
			wantSent: Positive,
			minPos:   1, // "love" inside "loved"
		},
		{
			name:     "no sentiment words",
			input:    "we sat near the window",
			wantSent: Neutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Score(tt.input)
			if got.Sentiment != tt.wantSent {
				t.Errorf("Sentiment = %v, want %v (score=%.2f, pos=%d, neg=%d, neu=%d)",
					got.Sentiment, tt.wantSent, got.Score, got.PositiveCount, got.NegativeCount, got.NeutralCount)
			}
			if got.PositiveCount < tt.minPos {
				t.Errorf("PositiveCount = %d, want >= %d", got.PositiveCount, tt.minPos)
			}
			if got.NegativeCount < tt.minNeg {
				t.Errorf("NegativeCount = %d, want >= %d", got.NegativeCount, tt.minNeg)
			}
		})
	}
}

func TestScoreEmptyIsZero(t *testing.T) {
	a := NewAnalyzer()
	for _, input := range []string{"", "   ", "\t\n"} {
		got := a.Score(input)
		if got.Sentiment != Neutral || got.Score != 0 || got.Confidence != 0 {
			t.Errorf("Score(%q) = %+v, want zero neutral result", input, got)
		}
	}
}

func TestScoreConfidenceRange(t *testing.T) {
	a := NewAnalyzer()
	inputs := []string{
		"",
		"delicious",
		"terrible awful worst",
		"okay I guess",
		"the quick brown fox jumps over the lazy dog",
		strings.Repeat("amazing ", 50),
		"cold cold cold but tasty",
		"!!!???",
	}
	for _, input := range inputs {
		got := a.Score(input)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Score(%q).Confidence = %.3f, want in [0,1]", input, got.Confidence)
		}
	}
}

// With no keyword hits at all, the dominant-share ratio is defined as 0 and
// confidence collapses to the bias term.
func TestScoreConfidenceNoKeywordHits(t *testing.T) {
	a := NewAnalyzer()
	got := a.Score("we sat near the window")
	if got.PositiveCount+got.NegativeCount+got.NeutralCount != 0 {
		t.Fatalf("expected zero keyword hits, got %+v", got)
	}
	if got.Confidence != 0.3 {
		t.Errorf("Confidence = %v, want 0.3", got.Confidence)
	}
}

func TestScorePure(t *testing.T) {
	a := NewAnalyzer()
	first := a.Score("delicious but the rice was soggy")
	second := a.Score("delicious but the rice was soggy")
	if first != second {
		t.Errorf("repeated Score diverged: %+v vs %+v", first, second)
	}
}
