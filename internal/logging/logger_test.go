package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer GetLogger().SetLevel(logrus.InfoLevel)

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if GetLogger().GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", GetLogger().GetLevel())
	}
	if err := SetLogLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	GetLogger().WithField("chart", "speedup").Info("Saved")
	if !strings.Contains(buf.String(), "chart=speedup") {
		t.Fatalf("expected structured field in output, got %q", buf.String())
	}
}
