package recommend

import (
	"sort"

	"github.com/yclin/fabtrainer/internal/ledger"
)

// FailedOperation is one unsuccessful practice step as reported by the
// simulation layer.
type FailedOperation struct {
	Operation string
	Topic     string
	ErrorType string
}

// FailureAnalysis aggregates failed operations by taxonomy category.
type FailureAnalysis struct {
	TotalFailures int
	ByCategory    map[string]int
	Topics        []string
}

// AnalyzeFailedOperations matches each failed operation's description
// against the category keywords and collects the review topics of every
// category hit. One operation may count against several categories.
func AnalyzeFailedOperations(ops []FailedOperation) FailureAnalysis {
	analysis := FailureAnalysis{
		TotalFailures: len(ops),
		ByCategory:    make(map[string]int),
	}

	topicSet := make(map[string]bool)
	for _, op := range ops {
		for _, c := range CategoriesForText(op.Operation + " " + op.Topic) {
			analysis.ByCategory[c.ID]++
			for _, t := range c.Topics {
				topicSet[t] = true
			}
		}
	}

	analysis.Topics = make([]string, 0, len(topicSet))
	for t := range topicSet {
		analysis.Topics = append(analysis.Topics, t)
	}
	sort.Strings(analysis.Topics)
	return analysis
}

// GapAnalysis buckets knowledge gaps by severity.
type GapAnalysis struct {
	Critical []ledger.KnowledgeGap
	Moderate []ledger.KnowledgeGap
	Minor    []ledger.KnowledgeGap
}

// AnalyzeKnowledgeGaps classifies gaps reported by the interaction
// ledger: critical below 40% accuracy with at least 5 attempts,
// moderate below 60% with at least 3 attempts, minor otherwise.
func AnalyzeKnowledgeGaps(gaps []ledger.KnowledgeGap) GapAnalysis {
	var analysis GapAnalysis
	for _, g := range gaps {
		switch {
		case g.Accuracy < 40 && g.Attempts >= 5:
			analysis.Critical = append(analysis.Critical, g)
		case g.Accuracy < 60 && g.Attempts >= 3:
			analysis.Moderate = append(analysis.Moderate, g)
		default:
			analysis.Minor = append(analysis.Minor, g)
		}
	}
	return analysis
}
