package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geoffjay/modelbase/internal/config"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tests"
)

func TestMatches(t *testing.T) {
	cases := []struct {
		name      string
		triggers  []string
		eventType string
		want      bool
	}{
		{"empty list matches everything", nil, "elements.created", true},
		{"exact match", []string{"elements.created"}, "elements.created", true},
		{"exact mismatch", []string{"elements.created"}, "elements.deleted", false},
		{"collection wildcard", []string{"elements.*"}, "elements.updated", true},
		{"wildcard other collection", []string{"elements.*"}, "projects.updated", false},
		{"one of several", []string{"projects.created", "elements.deleted"}, "elements.deleted", true},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := matches(tt.triggers, tt.eventType); got != tt.want {
				t.Errorf("matches(%v, %q) = %v, want %v", tt.triggers, tt.eventType, got, tt.want)
			}
		})
	}
}

func TestDispatcherDeliversMatchingEvents(t *testing.T) {
	app, err := tests.NewTestApp(t.TempDir())
	if err != nil {
		t.Fatalf("test app: %v", err)
	}
	t.Cleanup(app.Cleanup)

	received := make(chan Event, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			t.Errorf("decode delivery: %v", err)
		}
		received <- event
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	hooks := core.NewBaseCollection("webhooks")
	hooks.Fields.Add(&core.TextField{Name: "name"})
	hooks.Fields.Add(&core.TextField{Name: "url"})
	hooks.Fields.Add(&core.JSONField{Name: "triggers", MaxSize: 10000})
	hooks.Fields.Add(&core.BoolField{Name: "enabled"})
	if err := app.Save(hooks); err != nil {
		t.Fatalf("create webhooks collection: %v", err)
	}

	organizations := core.NewBaseCollection("organizations")
	organizations.Fields.Add(&core.TextField{Name: "name", Required: true})
	if err := app.Save(organizations); err != nil {
		t.Fatalf("create organizations collection: %v", err)
	}

	subscription := core.NewRecord(hooks)
	subscription.Set("name", "org feed")
	subscription.Set("url", server.URL)
	subscription.Set("triggers", []string{"organizations.*"})
	subscription.Set("enabled", true)
	if err := app.Save(subscription); err != nil {
		t.Fatalf("save webhook: %v", err)
	}

	disabled := core.NewRecord(hooks)
	disabled.Set("name", "disabled feed")
	disabled.Set("url", server.URL)
	disabled.Set("enabled", false)
	if err := app.Save(disabled); err != nil {
		t.Fatalf("save disabled webhook: %v", err)
	}

	dispatcher := New(app, config.Config{WebhookTimeout: 5 * time.Second, WebhookRetryMax: 1})
	dispatcher.Bind()

	record := core.NewRecord(organizations)
	record.Set("name", "acme")
	if err := app.Save(record); err != nil {
		t.Fatalf("save organization: %v", err)
	}

	select {
	case event := <-received:
		if event.Type != "organizations.created" {
			t.Errorf("event type = %q, want organizations.created", event.Type)
		}
		if event.Collection != "organizations" {
			t.Errorf("event collection = %q, want organizations", event.Collection)
		}
		if event.ID == "" {
			t.Error("event has no delivery id")
		}
		if name, _ := event.Record["name"].(string); name != "acme" {
			t.Errorf("event record name = %q, want acme", name)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no delivery arrived")
	}

	// Only the enabled, matching subscription fires.
	select {
	case event := <-received:
		t.Fatalf("unexpected second delivery: %+v", event)
	case <-time.After(200 * time.Millisecond):
	}
}
