package format

import (
	"testing"

	"github.com/hstern/dnsdb-query/internal/models"
)

func mustRecord(t *testing.T, line string) models.Record {
	t.Helper()
	rec, err := models.ParseRecord([]byte(line))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestSecToText(t *testing.T) {
	if got := SecToText(1388534400); got != "2014-01-01 00:00:00 -0000" {
		t.Errorf("SecToText(1388534400) = %q", got)
	}
	if got := SecToText(0); got != "1970-01-01 00:00:00 -0000" {
		t.Errorf("SecToText(0) = %q", got)
	}
}

func TestRdataText(t *testing.T) {
	rec := mustRecord(t, `{"rrname":"x.test","rrtype":"A","rdata":["1.2.3.4"]}`)
	if got := RdataText(rec); got != "x.test IN A 1.2.3.4" {
		t.Errorf("RdataText = %q", got)
	}

	rec = mustRecord(t, `{"rrname":"x.test","rrtype":"NS","rdata":"ns.x.test."}`)
	if got := RdataText(rec); got != "x.test IN NS ns.x.test." {
		t.Errorf("RdataText = %q", got)
	}
}

func TestRRsetTextFull(t *testing.T) {
	rec := mustRecord(t, `{
		"rrname": "www.example.com",
		"rrtype": "A",
		"bailiwick": "example.com",
		"count": 1234567,
		"time_first": 1388534400,
		"time_last": 1388538000,
		"zone_time_first": 1388534400,
		"zone_time_last": 1388538000,
		"rdata": ["192.0.2.1", "192.0.2.2"]
	}`)

	want := ";;  bailiwick: example.com\n" +
		";;      count: 1,234,567\n" +
		";; first seen: 2014-01-01 00:00:00 -0000\n" +
		";;  last seen: 2014-01-01 01:00:00 -0000\n" +
		";; first seen in zone file: 2014-01-01 00:00:00 -0000\n" +
		";;  last seen in zone file: 2014-01-01 01:00:00 -0000\n" +
		"www.example.com IN A 192.0.2.1\n" +
		"www.example.com IN A 192.0.2.2\n"

	if got := RRsetText(rec); got != want {
		t.Errorf("RRsetText =\n%s\nwant\n%s", got, want)
	}
}

func TestRRsetTextOmitsAbsentFields(t *testing.T) {
	rec := mustRecord(t, `{"rrname":"www.example.com","rrtype":"A","rdata":["192.0.2.1"]}`)
	want := "www.example.com IN A 192.0.2.1\n"
	if got := RRsetText(rec); got != want {
		t.Errorf("RRsetText = %q, want %q", got, want)
	}
}

func TestRRsetTextNoRdata(t *testing.T) {
	rec := mustRecord(t, `{"bailiwick":"example.com","count":5}`)
	want := ";;  bailiwick: example.com\n;;      count: 5\n"
	if got := RRsetText(rec); got != want {
		t.Errorf("RRsetText = %q, want %q", got, want)
	}
}
