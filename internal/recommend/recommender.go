package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yclin/fabtrainer/internal/ledger"
)

// MaxRecommendations caps how many topics a single recommendation pass
// returns.
const MaxRecommendations = 5

// Recommendation is one ranked review topic with the evidence behind it.
type Recommendation struct {
	Topic            string
	Priority         Priority
	Score            int
	Reasons          []string
	Rationale        string
	EstimatedMinutes int
}

// candidate accumulates evidence for one topic while merging the
// failure and gap analyses.
type candidate struct {
	priority Priority
	score    int
	reasons  []string
	accuracy float64
}

// RecommendTopics merges the failed-operation and knowledge-gap
// analyses into a ranked list of review topics. Topics inherit their
// category's base priority and are upgraded when a gap is severe;
// ordering is by priority, then lower accuracy, then accumulated score.
// A non-positive max falls back to MaxRecommendations.
func RecommendTopics(failedOps []FailedOperation, gaps []ledger.KnowledgeGap, max int) []Recommendation {
	if max <= 0 {
		max = MaxRecommendations
	}

	candidates := make(map[string]*candidate)
	get := func(topic string) *candidate {
		c, ok := candidates[topic]
		if !ok {
			c = &candidate{priority: PriorityLow, accuracy: 100}
			candidates[topic] = c
		}
		return c
	}

	if len(failedOps) > 0 {
		analysis := AnalyzeFailedOperations(failedOps)
		for id, count := range analysis.ByCategory {
			cat := GetCategory(id)
			for _, topic := range cat.Topics {
				c := get(topic)
				c.score += count * cat.Priority.Score()
				c.reasons = append(c.reasons, fmt.Sprintf("%d failed operations in %s tasks", count, strings.ToLower(cat.Label)))
				if cat.Priority.higher(c.priority) {
					c.priority = cat.Priority
				}
			}
		}
	}

	if len(gaps) > 0 {
		analysis := AnalyzeKnowledgeGaps(gaps)
		for _, g := range analysis.Critical {
			c := get(g.Topic)
			c.score += 10
			c.reasons = append(c.reasons, fmt.Sprintf("accuracy only %.0f%% over %d attempts", g.Accuracy, g.Attempts))
			c.priority = PriorityCritical
			if g.Accuracy < c.accuracy {
				c.accuracy = g.Accuracy
			}
		}
		for _, g := range analysis.Moderate {
			c := get(g.Topic)
			c.score += 5
			c.reasons = append(c.reasons, fmt.Sprintf("accuracy %.0f%% over %d attempts", g.Accuracy, g.Attempts))
			if PriorityHigh.higher(c.priority) {
				c.priority = PriorityHigh
			}
			if g.Accuracy < c.accuracy {
				c.accuracy = g.Accuracy
			}
		}
	}

	topics := make([]string, 0, len(candidates))
	for topic := range candidates {
		topics = append(topics, topic)
	}
	sort.Slice(topics, func(i, j int) bool {
		a, b := candidates[topics[i]], candidates[topics[j]]
		if a.priority != b.priority {
			return a.priority.Score() > b.priority.Score()
		}
		if a.accuracy != b.accuracy {
			return a.accuracy < b.accuracy
		}
		if a.score != b.score {
			return a.score > b.score
		}
		return topics[i] < topics[j]
	})

	if len(topics) > max {
		topics = topics[:max]
	}

	recs := make([]Recommendation, 0, len(topics))
	for _, topic := range topics {
		c := candidates[topic]
		recs = append(recs, Recommendation{
			Topic:            topic,
			Priority:         c.priority,
			Score:            c.score,
			Reasons:          c.reasons,
			Rationale:        rationaleText(topic, c.priority, c.reasons),
			EstimatedMinutes: StudyMinutes(topic),
		})
	}
	return recs
}

// rationaleText renders a short human-readable recommendation line,
// citing at most two supporting reasons.
func rationaleText(topic string, priority Priority, reasons []string) string {
	var prefix string
	switch priority {
	case PriorityCritical:
		prefix = "Review immediately"
	case PriorityHigh:
		prefix = "Prioritize reviewing"
	default:
		prefix = "Consider reviewing"
	}

	if len(reasons) > 2 {
		reasons = reasons[:2]
	}
	if len(reasons) == 0 {
		return fmt.Sprintf("%s %q", prefix, topic)
	}
	return fmt.Sprintf("%s %q: %s", prefix, topic, strings.Join(reasons, "; "))
}
