package recommend

import (
	"fmt"
	"strings"
)

// validateTaxonomy performs all structural checks on the category set
// and the topic prerequisite graph. Returns a combined error describing
// all problems found, or nil if valid.
func validateTaxonomy(categories []Category, prereqs map[string][]string) error {
	var errs []string

	idSet := make(map[string]bool, len(categories))
	topicSet := make(map[string]bool)

	// Check for duplicate category IDs and duplicate topic ownership
	for _, c := range categories {
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
		}
		idSet[c.ID] = true

		if len(c.Keywords) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no keywords", c.ID))
		}
		if len(c.Topics) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no topics", c.ID))
		}
		for _, t := range c.Topics {
			if topicSet[t] {
				errs = append(errs, fmt.Sprintf("topic %q claimed by more than one category", t))
			}
			topicSet[t] = true
		}
	}

	// Check for dangling prerequisites
	for topic, deps := range prereqs {
		if !topicSet[topic] {
			errs = append(errs, fmt.Sprintf("prerequisite entry for unknown topic %q", topic))
		}
		for _, dep := range deps {
			if !topicSet[dep] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", topic, dep))
			}
		}
	}

	// Check for cycles using Kahn's algorithm
	inDegree := make(map[string]int, len(topicSet))
	adjList := make(map[string][]string)
	for topic := range topicSet {
		inDegree[topic] = len(prereqs[topic])
		for _, dep := range prereqs[topic] {
			adjList[dep] = append(adjList[dep], topic)
		}
	}

	var queue []string
	for topic, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, topic)
		}
	}

	visited := 0
	for len(queue) > 0 {
		topic := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range adjList[topic] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if visited < len(topicSet) {
		var cycleNodes []string
		for topic := range topicSet {
			if inDegree[topic] > 0 {
				cycleNodes = append(cycleNodes, topic)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving topics: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("taxonomy validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the seeded taxonomy for structural issues.
func Validate() error {
	return validateTaxonomy(seedCategories, seedPrerequisites)
}
