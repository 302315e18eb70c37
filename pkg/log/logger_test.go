package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	logger := New("logtest")

	SetLevel(Notice)
	logger.Debugf("hidden %d", 1)
	logger.Noticef("shown %d", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "shown 2") {
		t.Errorf("Expected notice message, got %q", out)
	}
	if !strings.Contains(out, "[logtest]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Expected debug message after SetLevel(Debug), got %q", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	SetLevel(Warning)
	if Enabled(Info, "logtest") {
		t.Error("Expected Info to be disabled at Warning level")
	}
	if !Enabled(Error, "logtest") {
		t.Error("Expected Error to be enabled at Warning level")
	}
}
