package server

import (
	"testing"
	"time"
)

func TestWebLogger_SendsMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-123", messageChan)

	messages := []string{"0%", "5%", "10%"}
	for _, msg := range messages {
		logger.Printf("%s\n", msg)
	}

	timeout := time.After(200 * time.Millisecond)
	for i, expected := range messages {
		select {
		case msg := <-messageChan:
			if msg.Message != expected+"\n" {
				t.Errorf("Message %d: expected %q, got %q", i, expected+"\n", msg.Message)
			}
			if msg.RenderID != "render-123" {
				t.Errorf("Expected render ID render-123, got %q", msg.RenderID)
			}
			if msg.Level != "info" {
				t.Errorf("Expected level 'info', got %q", msg.Level)
			}
			if time.Since(msg.Timestamp) > time.Second {
				t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
			}
		case <-timeout:
			t.Fatalf("Timeout waiting for message %d", i+1)
		}
	}
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("render-format", messageChan)

	logger.Printf("Rendering %dx%d (x%d supersampling)\n", 400, 300, 2)

	select {
	case msg := <-messageChan:
		expected := "Rendering 400x300 (x2 supersampling)\n"
		if msg.Message != expected {
			t.Errorf("Expected %q, got %q", expected, msg.Message)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Timeout waiting for formatted message")
	}
}

func TestWebLogger_DoesNotBlock(t *testing.T) {
	t.Run("full channel", func(t *testing.T) {
		messageChan := make(chan ConsoleMessage, 1)
		logger := NewWebLogger("render-full", messageChan)

		logger.Printf("Message 1\n")
		logger.Printf("Message 2\n")
		logger.Printf("Message 3\n")

		if got := len(messageChan); got != 1 {
			t.Errorf("Expected 1 buffered message, got %d", got)
		}
		if msg := <-messageChan; msg.Message != "Message 1\n" {
			t.Errorf("Expected first message to be kept, got %q", msg.Message)
		}
	})

	t.Run("nil channel", func(t *testing.T) {
		logger := NewWebLogger("render-nil", nil)
		logger.Printf("Test message with nil channel\n")
	})
}
