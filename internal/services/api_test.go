package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIService(t *testing.T) {
	t.Run("Get detects JSON responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status": "ok"}`))
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, srv.Client())
		resp, err := api.Get(context.Background(), "/health")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !resp.IsJSON {
			t.Error("expected IsJSON true")
		}
		data, ok := resp.JSONData.(map[string]any)
		if !ok || data["status"] != "ok" {
			t.Errorf("unexpected JSON data: %v", resp.JSONData)
		}
	})

	t.Run("non-JSON bodies keep raw bytes only", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain text"))
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, srv.Client())
		resp, err := api.Get(context.Background(), "/")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if resp.IsJSON {
			t.Error("expected IsJSON false")
		}
		if string(resp.Body) != "plain text" {
			t.Errorf("unexpected body %q", resp.Body)
		}
	})

	t.Run("SetToken attaches a bearer header", func(t *testing.T) {
		var gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, srv.Client())
		api.SetToken("eyJ0In0")

		if _, err := api.Get(context.Background(), "/"); err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if gotAuth != "Bearer eyJ0In0" {
			t.Errorf("unexpected authorization header %q", gotAuth)
		}
	})

	t.Run("Post sends a JSON content type", func(t *testing.T) {
		var gotType, gotBody string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotType = r.Header.Get("Content-Type")
			buf := make([]byte, r.ContentLength)
			r.Body.Read(buf)
			gotBody = string(buf)
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		api := NewAPIService(srv.URL, srv.Client())
		resp, err := api.Post(context.Background(), "/api/user/add", []byte(`{"username":"alice"}`))
		if err != nil {
			t.Fatalf("post failed: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			t.Errorf("unexpected status %d", resp.StatusCode)
		}
		if gotType != "application/json" {
			t.Errorf("unexpected content type %q", gotType)
		}
		if gotBody != `{"username":"alice"}` {
			t.Errorf("unexpected body %q", gotBody)
		}
	})
}
