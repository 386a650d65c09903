package viz

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestSetLogLevel_GatesDebug(t *testing.T) {
	buf := captureLog(t)

	SetLogLevel("info")
	Debugf("hidden")
	Infof("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at info level: %s", out)
	}
	if !strings.Contains(out, "[INFO] shown") {
		t.Fatalf("info line missing: %s", out)
	}

	buf.Reset()
	SetLogLevel("debug")
	Debugf("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Fatalf("debug line missing at debug level: %s", buf.String())
	}

	SetLogLevel("info")
}

func TestInfof_PlainMessageKeepsPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	Infof("wrote charts (100% of dataset)")
	out := buf.String()
	if !strings.Contains(out, "(100% of dataset)") {
		t.Fatalf("percent sign mangled: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("fmt artifact in output: %s", out)
	}
}
