package sentiment

import "testing"

func TestExtractTopicsEmpty(t *testing.T) {
	if got := ExtractTopics(nil); len(got) != 0 {
		t.Errorf("ExtractTopics(nil) = %v, want empty", got)
	}
	if got := ExtractTopics([]string{}); len(got) != 0 {
		t.Errorf("ExtractTopics([]) = %v, want empty", got)
	}
}

func TestExtractTopicsFrequency(t *testing.T) {
	got := ExtractTopics([]string{"The sauce was great, the sauce was fresh"})
	if len(got) == 0 {
		t.Fatal("expected topics, got none")
	}
	if got[0].Topic != "sauce" {
		t.Errorf("top topic = %q, want %q (all: %v)", got[0].Topic, "sauce", got)
	}
	if got[0].Count < 2 {
		t.Errorf("top topic count = %d, want >= 2", got[0].Count)
	}
}

func TestExtractTopicsLimit(t *testing.T) {
	got := ExtractTopics([]string{
		"The pasta sauce was creamy and the bread was warm",
		"Crispy chicken, fresh salad, cold soup, tender beef, spicy rice",
	})
	if len(got) > 5 {
		t.Errorf("got %d topics, want at most 5", len(got))
	}
}

func TestExtractTopicsDropsShortTokens(t *testing.T) {
	got := ExtractTopics([]string{"it is an ok pie"})
	for _, topic := range got {
		if len(topic.Topic) <= 2 {
			t.Errorf("topic %q has length <= 2, should have been dropped", topic.Topic)
		}
	}
}
