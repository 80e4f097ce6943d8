package recommend

// PathStep is one entry in an ordered learning path.
type PathStep struct {
	Topic            string
	Priority         Priority
	Reasons          []string
	EstimatedMinutes int
}

// GenerateLearningPath expands each recommended topic into its
// prerequisite chain and orders the flattened set so every prerequisite
// precedes the topics that depend on it. Recommendations are visited in
// their ranked order, so higher-priority topics appear as early as
// their prerequisites allow. The prerequisite graph is validated
// acyclic at init, so the expansion always terminates.
func GenerateLearningPath(recs []Recommendation) []PathStep {
	var path []PathStep
	seen := make(map[string]bool)

	// A topic that is both recommended and a prerequisite of an earlier
	// recommendation keeps its own priority and rationale.
	recByTopic := make(map[string]Recommendation, len(recs))
	for _, rec := range recs {
		recByTopic[rec.Topic] = rec
	}

	var addPrereqs func(topic string)
	addPrereqs = func(topic string) {
		for _, dep := range Prerequisites(topic) {
			if seen[dep] {
				continue
			}
			addPrereqs(dep)
			seen[dep] = true
			step := PathStep{
				Topic:            dep,
				Priority:         PriorityPrereq,
				Reasons:          []string{"required before " + topic},
				EstimatedMinutes: StudyMinutes(dep),
			}
			if rec, ok := recByTopic[dep]; ok {
				step.Priority = rec.Priority
				step.Reasons = rec.Reasons
				step.EstimatedMinutes = rec.EstimatedMinutes
			}
			path = append(path, step)
		}
	}

	for _, rec := range recs {
		if seen[rec.Topic] {
			continue
		}
		addPrereqs(rec.Topic)
		seen[rec.Topic] = true
		path = append(path, PathStep{
			Topic:            rec.Topic,
			Priority:         rec.Priority,
			Reasons:          rec.Reasons,
			EstimatedMinutes: rec.EstimatedMinutes,
		})
	}
	return path
}

// TotalStudyMinutes sums the estimated review time over a path.
func TotalStudyMinutes(path []PathStep) int {
	total := 0
	for _, step := range path {
		total += step.EstimatedMinutes
	}
	return total
}
