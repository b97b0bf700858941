// Package format renders lookup records as zone-file-style text.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hstern/dnsdb-query/internal/models"
)

// SecToText formats a UNIX timestamp as UTC zone-file commentary time.
func SecToText(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05") + " -0000"
}

// RRsetText renders an rrset record: commented metadata lines for each
// present field, then one NAME IN TYPE RDATA line per rdata entry. The
// result carries a trailing newline so consecutive records print with a
// separating blank line.
func RRsetText(r models.Record) string {
	var b strings.Builder

	if v, ok := r.String("bailiwick"); ok {
		fmt.Fprintf(&b, ";;  bailiwick: %s\n", v)
	}
	if v, ok := r.Int64("count"); ok {
		fmt.Fprintf(&b, ";;      count: %s\n", humanize.Comma(v))
	}
	if v, ok := r.Int64("time_first"); ok {
		fmt.Fprintf(&b, ";; first seen: %s\n", SecToText(v))
	}
	if v, ok := r.Int64("time_last"); ok {
		fmt.Fprintf(&b, ";;  last seen: %s\n", SecToText(v))
	}
	if v, ok := r.Int64("zone_time_first"); ok {
		fmt.Fprintf(&b, ";; first seen in zone file: %s\n", SecToText(v))
	}
	if v, ok := r.Int64("zone_time_last"); ok {
		fmt.Fprintf(&b, ";;  last seen in zone file: %s\n", SecToText(v))
	}

	name, _ := r.String("rrname")
	rrtype, _ := r.String("rrtype")
	if rdata, ok := r.Strings("rdata"); ok {
		for _, rd := range rdata {
			fmt.Fprintf(&b, "%s IN %s %s\n", name, rrtype, rd)
		}
	}
	return b.String()
}

// RdataText renders an rdata record as a single NAME IN TYPE RDATA line.
func RdataText(r models.Record) string {
	name, _ := r.String("rrname")
	rrtype, _ := r.String("rrtype")
	rdata, _ := r.Strings("rdata")
	return fmt.Sprintf("%s IN %s %s", name, rrtype, strings.Join(rdata, " "))
}
