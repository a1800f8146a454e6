package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConsultSuccess(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "structured scientific answer"})
	}))
	defer ts.Close()

	res := New(ts.URL).Consult(context.Background(), "degradation of PVC by Aspergillus niger")
	if !res.Available {
		t.Fatalf("expected available, got reason %q", res.Reason)
	}
	if gotPath != "/chat" {
		t.Errorf("path: got %q, want /chat", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type: got %q", gotContentType)
	}
	if !strings.Contains(gotBody["prompt"], "PVC") {
		t.Errorf("prompt not forwarded: %v", gotBody)
	}
}

func TestConsultNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	res := New(ts.URL).Consult(context.Background(), "prompt")
	if res.Available {
		t.Fatal("expected unavailable on 503")
	}
	if !strings.Contains(res.Reason, "api error") {
		t.Errorf("reason: %q", res.Reason)
	}
}

func TestConsultErrorPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "model offline"})
	}))
	defer ts.Close()

	res := New(ts.URL).Consult(context.Background(), "prompt")
	if res.Available {
		t.Fatal("expected unavailable on error payload")
	}
	if res.Reason != "model offline" {
		t.Errorf("reason: %q", res.Reason)
	}
}

func TestConsultTransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // refuse connections

	res := New(ts.URL).Consult(context.Background(), "prompt")
	if res.Available {
		t.Fatal("expected unavailable on refused connection")
	}
	if !strings.Contains(res.Reason, "connection error") {
		t.Errorf("reason: %q", res.Reason)
	}
}

func TestConsultMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer ts.Close()

	res := New(ts.URL).Consult(context.Background(), "prompt")
	if res.Available {
		t.Fatal("expected unavailable on malformed body")
	}
}
