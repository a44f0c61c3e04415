package schema

import (
	"fmt"
	"strconv"
	"time"
)

// dateLayouts are tried in order; the source's date attributes are either
// RFC3339 timestamps or bare "2024-01-01" dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// normalizeDate parses raw into a canonical RFC3339 string. Gremlin binding
// conversion to epoch milliseconds happens downstream of Normalize, keyed
// off the same ValueType.
func normalizeDate(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(time.RFC3339), nil
		}
	}
	return "", fmt.Errorf("schema: value %q is not a recognized date", raw)
}

// EpochMillis converts a canonical RFC3339 timestamp (as returned by
// Normalize for DateType) into epoch milliseconds.
func EpochMillis(canonical string) (int64, error) {
	t, err := time.Parse(time.RFC3339, canonical)
	if err != nil {
		if ms, intErr := strconv.ParseInt(canonical, 10, 64); intErr == nil {
			return ms, nil
		}
		return 0, fmt.Errorf("schema: %q is not a canonical RFC3339 timestamp: %w", canonical, err)
	}
	return t.UnixMilli(), nil
}
