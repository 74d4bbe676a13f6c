package server

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"
)

func TestWebLogger_EchoesWithRenderID(t *testing.T) {
	var out bytes.Buffer
	messageChan := make(chan ConsoleMessage, 2)
	logger := &WebLogger{renderID: "render-42", consoleChan: messageChan, out: &out}

	logger.Printf("Rendering %s (%d spheres)\n", "spheregrid", 16)
	logger.Printf("Rendered %dx%d\n", 400, 225)

	expected := "[render-42] Rendering spheregrid (16 spheres)\n[render-42] Rendered 400x225\n"
	if out.String() != expected {
		t.Errorf("Expected echo %q, got %q", expected, out.String())
	}

	first := <-messageChan
	if first.RenderID != "render-42" || first.Message != "Rendering spheregrid (16 spheres)\n" {
		t.Errorf("Unexpected console message %+v", first)
	}
	if time.Since(first.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", first.Timestamp)
	}
}

func TestWebLogger_NoEchoWriter(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := &WebLogger{renderID: "render-quiet", consoleChan: messageChan}

	logger.Printf("Rendered %dx%d\n", 16, 9)

	if msg := <-messageChan; msg.Message != "Rendered 16x9\n" {
		t.Errorf("Expected message to reach the console, got %q", msg.Message)
	}
}

func TestWebLogger_DropsWhenConsoleFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := &WebLogger{renderID: "render-full", consoleChan: messageChan}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			logger.Printf("band %d\n", i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Logger blocked on a full console channel")
	}

	if msg := <-messageChan; msg.Message != "band 0\n" {
		t.Errorf("Expected the first message to be kept, got %q", msg.Message)
	}
	if len(messageChan) != 0 {
		t.Errorf("Expected later messages to be dropped, %d queued", len(messageChan))
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	var out bytes.Buffer
	logger := &WebLogger{renderID: "render-nil", out: &out}

	logger.Printf("Rendered without a console\n")

	if out.String() != "[render-nil] Rendered without a console\n" {
		t.Errorf("Expected echo without a console channel, got %q", out.String())
	}
}

func TestMessageLevel(t *testing.T) {
	tests := []struct {
		message  string
		expected string
	}{
		{"Rendered 400x225 in 12ms\n", "info"},
		{"Rendering default (2 spheres)\n", "info"},
		{"Warning: skipping scene file broken.json\n", "warning"},
		{"  WARNING: leading space and caps\n", "warning"},
		{"Render cancelled after 3 of 9 rows\n", "warning"},
		{"Error: unknown scene\n", "error"},
		{"error encoding band\n", "error"},
		{"", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := messageLevel(tt.message); got != tt.expected {
				t.Errorf("messageLevel(%q) = %s, expected %s", tt.message, got, tt.expected)
			}
		})
	}
}

func TestWebLogger_LevelOnConsoleMessage(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	NewWebLogger("render-levels", messageChan).Printf("Render cancelled after %d of %d rows\n", 3, 9)

	msg := <-messageChan
	if msg.Level != "warning" || msg.RenderID != "render-levels" {
		t.Errorf("Expected warning for render-levels, got %+v", msg)
	}
}

func TestConsoleMessage_JSONSerialization(t *testing.T) {
	msg := ConsoleMessage{
		RenderID:  "render-1",
		Message:   "Test message",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     "info",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal console message: %v", err)
	}

	expected := `{"renderId":"render-1","message":"Test message","timestamp":"2024-01-02T03:04:05Z","level":"info"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}
