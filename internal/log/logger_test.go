// SPDX-License-Identifier: MIT
package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithComponentField(t *testing.T) {
	var buf bytes.Buffer
	base = zerolog.New(&buf) // override global for this test
	done = true

	WithComponent("probe").Info().Str("event", "unit.test").Msg("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if entry["component"] != "probe" {
		t.Errorf("component = %v, want probe", entry["component"])
	}
	if entry["event"] != "unit.test" {
		t.Errorf("event = %v, want unit.test", entry["event"])
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
}

func TestConfigureLevelPrecedence(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Configure(Config{Level: "error"})
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Fatalf("global level = %v, want error", got)
	}

	// Calls without an explicit level must leave the level alone.
	_ = Base()
	if got := zerolog.GlobalLevel(); got != zerolog.ErrorLevel {
		t.Fatalf("global level after Base() = %v, want error", got)
	}

	// An explicit level always wins, even after initial configuration.
	Configure(Config{Level: "debug"})
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("global level = %v, want debug", got)
	}
}
