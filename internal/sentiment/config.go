package sentiment

// Config carries the keyword lexicon and the classification thresholds.
// Every Analyzer gets its own copy at construction, so tuning a config
// never races with in-flight scoring.
type Config struct {
	PositiveKeywords []string
	NegativeKeywords []string
	NeutralKeywords  []string

	// Per-comment classification thresholds on the combined score.
	PositiveScore float64
	NegativeScore float64

	// Confidence gets this flat bias on top of the dominant-category share.
	ConfidenceBias float64

	// Aggregate-level thresholds on the average sentiment score.
	OverallPositive float64
	OverallNegative float64

	// Rating thresholds driving insights and risk classification.
	LowRating      float64
	GoodRating     float64
	HighRiskRating float64
	MedRiskRating  float64
}

// DefaultConfig returns the production lexicon and thresholds.
func DefaultConfig() Config {
	return Config{
		PositiveKeywords: []string{
			"delicious", "amazing", "excellent", "fantastic", "great", "good", "tasty",
			"yummy", "love", "perfect", "wonderful", "outstanding", "superb", "best",
			"awesome", "incredible", "fabulous", "brilliant", "satisfied", "happy",
		},
		NegativeKeywords: []string{
			"terrible", "awful", "bad", "disgusting", "horrible", "worst", "hate",
			"disappointed", "unhappy", "sad", "angry", "upset", "frustrated", "annoyed",
			"poor", "mediocre", "bland", "tasteless", "cold", "burnt", "overcooked",
			"undercooked", "salty", "spicy", "dry", "soggy",
		},
		NeutralKeywords: []string{
			"okay", "fine", "average", "normal", "regular", "standard", "decent",
			"acceptable", "satisfactory", "adequate", "reasonable",
		},
		PositiveScore:   0.5,
		NegativeScore:   -0.5,
		ConfidenceBias:  0.3,
		OverallPositive: 0.3,
		OverallNegative: -0.3,
		LowRating:       3,
		GoodRating:      4,
		HighRiskRating:  2.5,
		MedRiskRating:   3.5,
	}
}
