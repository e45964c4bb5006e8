package sentiment

import (
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
)

const topicLimit = 5

// Topic is a recurring talking point across a comment set.
type Topic struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// ExtractTopics tallies the nouns and adjectives across all comments and
// returns the five most frequent. Ties keep first-appearance order.
// Returns an empty slice when there is nothing to extract.
func ExtractTopics(comments []string) []Topic {
	if len(comments) == 0 {
		return []Topic{}
	}

	doc, err := prose.NewDocument(strings.Join(comments, " "), prose.WithExtraction(false))
	if err != nil {
		// Tagging failure only costs the topics list, never the summary.
		return []Topic{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, tok := range doc.Tokens() {
		// Penn tags: NN* nouns, JJ* adjectives.
		if !strings.HasPrefix(tok.Tag, "NN") && !strings.HasPrefix(tok.Tag, "JJ") {
			continue
		}
		word := strings.TrimSpace(strings.ToLower(tok.Text))
		if len(word) <= 2 {
			continue
		}
		if _, seen := counts[word]; !seen {
			firstSeen[word] = len(firstSeen)
		}
		counts[word]++
	}

	topics := make([]Topic, 0, len(counts))
	for word, count := range counts {
		topics = append(topics, Topic{Topic: word, Count: count})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return firstSeen[topics[i].Topic] < firstSeen[topics[j].Topic]
	})

	if len(topics) > topicLimit {
		topics = topics[:topicLimit]
	}
	return topics
}
