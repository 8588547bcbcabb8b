package main

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"scavenger-board/systems"
)

// Test the seed reaches the on-screen log even when stderr is discarded
func TestLogSeedReachesMessageLog(t *testing.T) {
	var buf bytes.Buffer
	logSeed(4242, log.New(&buf, "board: ", 0))

	recent := systems.GetMessageLog().RecentMessages(1)
	if len(recent) != 1 || recent[0].Text != "seed 4242" {
		t.Errorf("Expected seed in the message log, got %+v", recent)
	}
	if recent[0].Type != systems.MessageTypeSystem {
		t.Errorf("Expected a system message, got %v", recent[0].Type)
	}
	if !strings.Contains(buf.String(), "board: seed 4242") {
		t.Errorf("Expected seed in the log output, got %q", buf.String())
	}
}
