package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRemoteStore_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get(ownerHeader); got != "alice" {
			t.Errorf("owner header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]PersistedSession{
			{ID: "s1", Name: "work", Owner: "alice", CommandHistory: []string{"ls"}},
		})
	}))
	defer srv.Close()

	sessions, err := NewRemoteStore(srv.URL).Load(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s1" || sessions[0].Name != "work" {
		t.Fatalf("unexpected sessions: %+v", sessions)
	}
}

func TestRemoteStore_SaveUpsertsByID(t *testing.T) {
	var gotPath, gotOwner string
	var gotBody PersistedSession
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("method = %s", r.Method)
		}
		gotPath = r.URL.Path
		gotOwner = r.Header.Get(ownerHeader)
		json.NewDecoder(r.Body).Decode(&gotBody)
	}))
	defer srv.Close()

	ps := PersistedSession{ID: "s42", Name: "deploy", Owner: "bob", LastSavedAt: time.Now()}
	if err := NewRemoteStore(srv.URL).Save(context.Background(), ps); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if gotPath != "/sessions/s42" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotOwner != "bob" || gotBody.Name != "deploy" {
		t.Fatalf("owner %q body %+v", gotOwner, gotBody)
	}
}

func TestRemoteStore_Delete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
	}))
	defer srv.Close()

	if err := NewRemoteStore(srv.URL).Delete(context.Background(), "alice", "s1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/sessions/s1" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestRemoteStore_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rs := NewRemoteStore(srv.URL)
	if _, err := rs.Load(context.Background(), "alice"); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("Load error = %v", err)
	}
	if err := rs.Save(context.Background(), PersistedSession{ID: "x"}); err == nil {
		t.Fatal("Save must fail on 500")
	}
	if err := rs.Delete(context.Background(), "alice", "x"); err == nil {
		t.Fatal("Delete must fail on 500")
	}
}

func TestRemoteStore_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	if _, err := NewRemoteStore(srv.URL).Load(context.Background(), "alice"); err == nil {
		t.Fatal("expected transport error against closed server")
	}
}
