package cli

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(args ...string) (stdout, stderr string, err error) {
	cmd := NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func resetFlags() {
	configFiles = nil
	rrset = ""
	rdataName = ""
	rdataIP = ""
	sortKey = ""
	reverse = false
	jsonOut = false
	limit = 0
	before = ""
	after = ""
	timeout = 0
	insecure = false
	debug = false
}

func TestNoQueryModePrintsUsage(t *testing.T) {
	resetFlags()
	stdout, stderr, err := executeCommand()
	if err == nil {
		t.Fatal("expected error when no query mode is given")
	}
	if !strings.Contains(err.Error(), "exactly one of") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout+stderr, "Usage:") {
		t.Error("expected usage output")
	}
}

func TestMultipleQueryModesRejected(t *testing.T) {
	resetFlags()
	_, _, err := executeCommand("-r", "example.com", "-i", "198.51.100.1")
	if err == nil || !strings.Contains(err.Error(), "exactly one of") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPositionalArgsRejected(t *testing.T) {
	resetFlags()
	stdout, stderr, err := executeCommand("example.com")
	if err == nil {
		t.Fatal("expected error for positional argument")
	}
	if !strings.Contains(err.Error(), "unexpected argument") {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout+stderr, "Usage:") {
		t.Error("expected usage output")
	}
}

func TestInvalidRdataSpecRejected(t *testing.T) {
	resetFlags()
	_, _, err := executeCommand("-c", "testdata/dnsdb-query.conf",
		"-n", "ns.example.com/NS/extra")
	if err == nil || !strings.Contains(err.Error(), "invalid rdata query") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBadTimeBoundRejectedBeforeQuery(t *testing.T) {
	resetFlags()
	_, _, err := executeCommand("-c", "testdata/dnsdb-query.conf",
		"-r", "example.com", "--before", "last tuesday")
	if err == nil || !strings.Contains(err.Error(), "invalid time") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMissingConfigFileFails(t *testing.T) {
	resetFlags()
	_, _, err := executeCommand("-c", "testdata/does-not-exist.conf", "-r", "example.com")
	if err == nil {
		t.Fatal("expected error for unreadable config file")
	}
}
