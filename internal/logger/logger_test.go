package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer

	Setup(&buf, false, true)
	log.Debug("hidden")
	log.Warn("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected only warnings without debug, got %q", buf.String())
	}

	buf.Reset()
	Setup(&buf, true, true)
	log.Debug("details", "func", "main")
	if !strings.Contains(buf.String(), "BREWIN") || !strings.Contains(buf.String(), "func=main") {
		t.Errorf("expected prefixed debug line, got %q", buf.String())
	}
}
