// Package normalize parses compound query specifications into their
// structured parts.
package normalize

import (
	"fmt"
	"strings"
)

// RRTypes is the closed set of resource-record type tokens recognized
// inside a query specification. The lookup service accepts historical and
// obsolete types, so this list intentionally includes entries (MAILA,
// NINFO, SINK, ...) that no longer appear in the live IANA registry.
var RRTypes = []string{
	"A", "A6", "AAAA", "AFSDB", "ANY", "APL", "ATMA", "AXFR", "CAA", "CDS",
	"CERT", "CNAME", "DHCID", "DLV", "DNAME", "DNSKEY", "DS", "EID", "GPOS",
	"HINFO", "HIP", "IPSECKEY", "ISDN", "IXFR", "KEY", "KX", "LOC", "MAILA",
	"MAILB", "MB", "MD", "MF", "MG", "MINFO", "MR", "MX", "NAPTR", "NIMLOC",
	"NINFO", "NS", "NSAP", "NSAP_PTR", "NSEC", "NSEC3", "NSEC3PARAM", "NULL",
	"NXT", "OPT", "PTR", "PX", "RKEY", "RP", "RRSIG", "RT", "SIG", "SINK",
	"SOA", "SPF", "SRV", "SSHFP", "TA", "TALINK", "TKEY", "TSIG", "TXT",
	"URI", "WKS", "X25",
}

var rrtypeSet = make(map[string]struct{}, len(RRTypes))

func init() {
	for _, t := range RRTypes {
		rrtypeSet[t] = struct{}{}
	}
}

// IsRRType reports whether s is a recognized record-type token,
// case-insensitively.
func IsRRType(s string) bool {
	_, ok := rrtypeSet[strings.ToUpper(s)]
	return ok
}

// SplitRRset splits an rrset specification of the form
// NAME[/RRTYPE[/BAILIWICK]]. The type is the first slash-delimited segment
// matching a recognized token; everything before it is the name and
// everything after it is the bailiwick. A specification with no recognized
// token is all name. The returned type is upper-cased; empty strings mean
// the component is absent.
func SplitRRset(spec string) (name, rrtype, bailiwick string) {
	segs := strings.Split(spec, "/")
	for i := 1; i < len(segs); i++ {
		if IsRRType(segs[i]) {
			return strings.Join(segs[:i], "/"),
				strings.ToUpper(segs[i]),
				strings.Join(segs[i+1:], "/")
		}
	}
	return spec, "", ""
}

// SplitRdata splits an rdata specification of the form NAME[/RRTYPE].
// A trailing bailiwick-like segment after the type is rejected.
func SplitRdata(spec string) (name, rrtype string, err error) {
	name, rrtype, rest := SplitRRset(spec)
	if rest != "" {
		return "", "", fmt.Errorf("invalid rdata query %q: at most a name and a type are allowed", spec)
	}
	return name, rrtype, nil
}
