// Package testsupport provides shared fixtures for stampvoice tests: canned
// configurations and an httptest stand-in for the inference service.
package testsupport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// InferenceServer is an httptest server that mimics the chat-completions and
// speech endpoints. Responses are configured per test; request counts are
// tracked so tests can assert that no call (or exactly one call) happened.
type InferenceServer struct {
	*httptest.Server

	mu          sync.Mutex
	chatQueue   []chatReply
	audio       []byte
	audioStatus int
	chatCalls   int
	speechCalls int
}

type chatReply struct {
	content string
	raw     string
}

// NewInferenceServer starts a stub server; it is closed via t.Cleanup.
func NewInferenceServer(t testing.TB) *InferenceServer {
	t.Helper()
	s := &InferenceServer{audioStatus: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// QueueChatContent enqueues a chat response whose first choice carries the
// given content. Responses are consumed in order; calls after the queue is
// drained replay the last entry.
func (s *InferenceServer) QueueChatContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatQueue = append(s.chatQueue, chatReply{content: content})
}

// QueueChatRaw enqueues a verbatim chat response body, for shapes like an
// empty choices list.
func (s *InferenceServer) QueueChatRaw(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatQueue = append(s.chatQueue, chatReply{raw: body})
}

// SetAudio configures the bytes returned by the speech endpoint.
func (s *InferenceServer) SetAudio(audio []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audio = audio
}

// ChatCalls reports how many chat-completions requests were served.
func (s *InferenceServer) ChatCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatCalls
}

// SpeechCalls reports how many speech requests were served.
func (s *InferenceServer) SpeechCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speechCalls
}

func (s *InferenceServer) handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/chat/completions":
		s.mu.Lock()
		s.chatCalls++
		var reply chatReply
		if len(s.chatQueue) > 0 {
			reply = s.chatQueue[0]
			if len(s.chatQueue) > 1 {
				s.chatQueue = s.chatQueue[1:]
			}
		}
		s.mu.Unlock()

		if reply.raw != "" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(reply.raw))
			return
		}
		payload := map[string]any{
			"choices": []any{
				map[string]any{"message": map[string]any{"content": reply.content}},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	case "/audio/speech":
		s.mu.Lock()
		s.speechCalls++
		audio := s.audio
		status := s.audioStatus
		s.mu.Unlock()

		w.WriteHeader(status)
		_, _ = w.Write(audio)
	default:
		http.NotFound(w, r)
	}
}
