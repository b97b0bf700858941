// Package results post-processes lookup records in memory: sorting by an
// arbitrary field and filtering by observation time.
package results

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hstern/dnsdb-query/internal/models"
)

// Sort stable-sorts recs in place by the named field. The field must be
// present on the first record; otherwise the error lists that record's
// field names as guidance. reverse inverts the order.
func Sort(recs []models.Record, field string, reverse bool) error {
	if len(recs) == 0 {
		return nil
	}
	if !recs[0].Has(field) {
		return fmt.Errorf("invalid sort key %q, valid sort keys are %s",
			field, strings.Join(recs[0].Keys(), ", "))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		a, _ := recs[i].Field(field)
		b, _ := recs[j].Field(field)
		if reverse {
			return less(b, a)
		}
		return less(a, b)
	})
	return nil
}

// less compares raw JSON-decoded values: numbers numerically, strings
// lexically, anything mixed by its printed form.
func less(a, b any) bool {
	if af, ok := a.(float64); ok {
		if bf, ok := b.(float64); ok {
			return af < bf
		}
	}
	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return as < bs
		}
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

// FilterBefore keeps records first seen strictly before bound. Sensor
// observations carry time_first; zone-file imports carry zone_time_first.
// Records with neither are kept.
func FilterBefore(recs []models.Record, bound int64) []models.Record {
	var out []models.Record
	for _, r := range recs {
		ts, ok := seenTime(r, "time_first", "zone_time_first")
		if !ok || ts < bound {
			out = append(out, r)
		}
	}
	return out
}

// FilterAfter keeps records last seen strictly after bound, symmetric to
// FilterBefore over time_last/zone_time_last.
func FilterAfter(recs []models.Record, bound int64) []models.Record {
	var out []models.Record
	for _, r := range recs {
		ts, ok := seenTime(r, "time_last", "zone_time_last")
		if !ok || ts > bound {
			out = append(out, r)
		}
	}
	return out
}

func seenTime(r models.Record, key, zoneKey string) (int64, bool) {
	if v, ok := r.Int64(key); ok {
		return v, true
	}
	if v, ok := r.Int64(zoneKey); ok {
		return v, true
	}
	return 0, false
}

// ParseTime parses a filter boundary as, in order: UNIX epoch seconds, a
// YYYY-MM-DD date at midnight UTC, or a YYYY-MM-DD HH:MM:SS timestamp
// interpreted as UTC.
func ParseTime(s string) (int64, error) {
	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		return epoch, nil
	}
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), nil
		}
	}
	return 0, fmt.Errorf("invalid time %q", s)
}
