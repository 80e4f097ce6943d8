package evaluation

import (
	"fmt"
	"strings"
)

// GenerateImprovementSuggestions maps an overall evaluation, plus the
// practice detail and theory weakness topics when available, to specific
// guidance text. The rule set is deterministic: the same inputs always
// produce the same suggestions.
func GenerateImprovementSuggestions(overall OverallEvaluation, practice *PracticeEvaluation, weaknesses []string) []string {
	var suggestions []string

	if overall.OverallScore < 60 {
		suggestions = append(suggestions, "Overall performance needs substantial improvement; work through the full curriculum again systematically.")
	}

	if !overall.Balanced {
		if overall.TheoryScore < overall.PracticeScore-balanceMargin {
			suggestions = append(suggestions, "Theory knowledge is the weak side; strengthen the conceptual foundation behind the procedures.")
		} else if overall.PracticeScore < overall.TheoryScore-balanceMargin {
			suggestions = append(suggestions, "Hands-on ability is the weak side; schedule more practice sessions on the simulator.")
		}
	}

	if practice != nil {
		if practice.DiagnosisScore < 70 {
			suggestions = append(suggestions, "Fault diagnosis needs work; review the fault analysis methodology.")
		}
		if practice.OperationScore < 70 {
			suggestions = append(suggestions, "Operation accuracy is low; re-study the standard operating procedures.")
		}
		if practice.TimeEfficiencyScore < 60 {
			suggestions = append(suggestions, "Troubleshooting is slow; repeated drills will build procedural fluency.")
		}

		if practice.TotalOperations > 0 {
			consultRate := float64(practice.ExpertConsults) / float64(practice.TotalOperations)
			if consultRate > 0.5 {
				suggestions = append(suggestions, "Heavy reliance on expert help; attempt independent reasoning before consulting.")
			} else if consultRate < 0.1 && practice.OperationScore < 80 {
				suggestions = append(suggestions, "When stuck, consult the expert advisor early rather than compounding mistakes.")
			}
		}
	}

	if len(weaknesses) > 0 {
		n := len(weaknesses)
		if n > 3 {
			n = 3
		}
		suggestions = append(suggestions, fmt.Sprintf("Focus review on these topics: %s.", strings.Join(weaknesses[:n], ", ")))
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Performance is on track. Consider attempting harder scenarios next.")
	}
	return suggestions
}
