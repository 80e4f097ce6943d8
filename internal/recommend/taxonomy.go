package recommend

import "strings"

// Priority ranks a remedial topic by urgency.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"

	// PriorityPrereq marks a topic inserted into a learning path only
	// because a recommended topic depends on it.
	PriorityPrereq Priority = "prerequisite"
)

// Score converts a priority into a numeric weight for ranking.
func (p Priority) Score() int {
	switch p {
	case PriorityCritical:
		return 100
	case PriorityHigh:
		return 50
	case PriorityMedium:
		return 20
	default:
		return 10
	}
}

// higher reports whether p outranks q.
func (p Priority) higher(q Priority) bool {
	return p.Score() > q.Score()
}

// Category groups related equipment faults and maps them to review topics.
type Category struct {
	ID       string
	Label    string
	Priority Priority
	Keywords []string
	Topics   []string
}

// registry is the package-level category registry, keyed by ID.
var registry map[string]*Category

// topicCategory indexes each topic by the category that owns it.
var topicCategory map[string]*Category

func init() {
	if err := validateTaxonomy(seedCategories, seedPrerequisites); err != nil {
		panic(err)
	}
	registry = make(map[string]*Category, len(seedCategories))
	topicCategory = make(map[string]*Category)
	for i := range seedCategories {
		c := &seedCategories[i]
		registry[c.ID] = c
		for _, t := range c.Topics {
			topicCategory[t] = c
		}
	}
}

// GetCategory returns a category by ID, or nil if not found.
func GetCategory(id string) *Category {
	return registry[id]
}

// AllCategories returns every category in the taxonomy.
func AllCategories() []*Category {
	result := make([]*Category, 0, len(registry))
	for i := range seedCategories {
		result = append(result, &seedCategories[i])
	}
	return result
}

// CategoriesForText returns all categories whose keywords appear in the
// given free-form text. Matching is case-insensitive substring search,
// so one operation description can hit several categories.
func CategoriesForText(text string) []*Category {
	lowered := strings.ToLower(text)
	var hits []*Category
	for i := range seedCategories {
		c := &seedCategories[i]
		for _, kw := range c.Keywords {
			if strings.Contains(lowered, kw) {
				hits = append(hits, c)
				break
			}
		}
	}
	return hits
}

// CategoryForTopic returns the category that owns a topic, or nil.
func CategoryForTopic(topic string) *Category {
	return topicCategory[topic]
}

// Prerequisites returns the direct prerequisite topics for a topic.
func Prerequisites(topic string) []string {
	return seedPrerequisites[topic]
}

// StudyMinutes estimates how long a review of the topic takes.
func StudyMinutes(topic string) int {
	if m, ok := seedStudyMinutes[topic]; ok {
		return m
	}
	return defaultStudyMinutes
}
