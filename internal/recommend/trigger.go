package recommend

import "github.com/yclin/fabtrainer/internal/store"

// DefaultFailureThreshold is how many recent failures prompt an
// automatic recommendation.
const DefaultFailureThreshold = 3

// ShouldTriggerRecommendation reports whether the number of failures in
// the caller's recent window warrants generating recommendations. A
// non-positive threshold falls back to DefaultFailureThreshold. This is
// the sole automatic trigger; there is no time decay and no per-topic
// condition.
func ShouldTriggerRecommendation(recentFailures, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	return recentFailures >= threshold
}

// CountFailures counts records whose success flag is explicitly false.
// Records without a success flag are neutral.
func CountFailures(records []store.InteractionRecord) int {
	n := 0
	for _, r := range records {
		if r.Success != nil && !*r.Success {
			n++
		}
	}
	return n
}

// FailuresFromRecords extracts failed operations from interaction
// records so ledger history can feed the failure analyzer directly.
func FailuresFromRecords(records []store.InteractionRecord) []FailedOperation {
	var ops []FailedOperation
	for _, r := range records {
		if r.Success == nil || *r.Success {
			continue
		}
		ops = append(ops, FailedOperation{
			Operation: payloadString(r.Payload, "operation"),
			Topic:     payloadString(r.Payload, "topic"),
			ErrorType: payloadString(r.Payload, "error_type"),
		})
	}
	return ops
}

func payloadString(payload map[string]any, key string) string {
	if payload == nil {
		return ""
	}
	s, _ := payload[key].(string)
	return s
}
