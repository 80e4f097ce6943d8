package ledger

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ExportCSV writes the full interaction history as one row per record with
// payload fields flattened into their own columns, for external analysis
// tools. Column order: fixed record fields first, then payload keys sorted
// alphabetically across the whole history.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	records, err := s.events.Interactions(ctx, s.studentID)
	if err != nil {
		return err
	}

	// Collect the union of payload keys.
	keySet := make(map[string]bool)
	for _, rec := range records {
		for k := range rec.Payload {
			keySet[k] = true
		}
	}
	payloadKeys := make([]string, 0, len(keySet))
	for k := range keySet {
		payloadKeys = append(payloadKeys, k)
	}
	sort.Strings(payloadKeys)

	cw := csv.NewWriter(w)
	header := append([]string{"record_id", "timestamp", "student_id", "kind", "success", "score"}, payloadKeys...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.RecordID,
			rec.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
			rec.StudentID,
			rec.Kind,
			formatOptionalBool(rec.Success),
			formatOptionalFloat(rec.Score),
		}
		for _, k := range payloadKeys {
			row = append(row, formatPayloadValue(rec.Payload[k]))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatOptionalBool(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatPayloadValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
