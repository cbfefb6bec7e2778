//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
)

// BotAPICall is one request the bot made to the Bot API.
type BotAPICall struct {
	Method string
	Body   map[string]any
}

func (c BotAPICall) ChatID() int64 {
	v, _ := c.Body["chat_id"].(float64)
	return int64(v)
}

func (c BotAPICall) Text() string {
	if s, ok := c.Body["text"].(string); ok {
		return s
	}
	s, _ := c.Body["caption"].(string)
	return s
}

// FakeBotAPI records outbound calls and answers them like the real API would.
type FakeBotAPI struct {
	server *httptest.Server
	nextID atomic.Int64

	mu    sync.Mutex
	calls []BotAPICall
}

func NewFakeBotAPI() *FakeBotAPI {
	f := &FakeBotAPI{}
	f.nextID.Store(1000)
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeBotAPI) URL() string { return f.server.URL }

func (f *FakeBotAPI) Close() { f.server.Close() }

func (f *FakeBotAPI) serve(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	f.mu.Lock()
	f.calls = append(f.calls, BotAPICall{Method: method, Body: body})
	f.mu.Unlock()

	var result any = true
	switch method {
	case "sendMessage", "sendPhoto", "sendLocation":
		result = map[string]any{
			"message_id": f.nextID.Add(1),
			"chat":       map[string]any{"id": body["chat_id"], "type": "private"},
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "result": result})
}

func (f *FakeBotAPI) Calls(method string) []BotAPICall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []BotAPICall
	for _, c := range f.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// SentTo lists every message and photo delivered to chatID, in order.
func (f *FakeBotAPI) SentTo(chatID int64) []BotAPICall {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []BotAPICall
	for _, c := range f.calls {
		if (c.Method == "sendMessage" || c.Method == "sendPhoto" || c.Method == "sendLocation") && c.ChatID() == chatID {
			out = append(out, c)
		}
	}
	return out
}

func (f *FakeBotAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}
