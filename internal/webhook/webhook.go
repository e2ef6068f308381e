// Package webhook posts record change events to the endpoints registered in
// the webhooks collection.
package webhook

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/geoffjay/modelbase/internal/config"
	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pocketbase/pocketbase/core"
)

// watched are the collections whose record changes produce events.
var watched = []string{"organizations", "projects", "branches", "elements", "artifacts"}

// Event is the envelope delivered to webhook endpoints.
type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"` // "<collection>.<created|updated|deleted>"
	Collection string         `json:"collection"`
	Record     map[string]any `json:"record"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Dispatcher matches record events against the registered webhooks and
// delivers them. Deliveries run on their own goroutines and never block or
// fail the request that triggered them.
type Dispatcher struct {
	app    core.App
	client *retryablehttp.Client
}

func New(app core.App, cfg config.Config) *Dispatcher {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.WebhookRetryMax
	client.HTTPClient.Timeout = cfg.WebhookTimeout
	client.Logger = nil // delivery outcomes are logged through the app logger

	return &Dispatcher{app: app, client: client}
}

// Bind registers the record hooks for every watched collection.
func (d *Dispatcher) Bind() {
	d.app.OnRecordAfterCreateSuccess(watched...).BindFunc(func(e *core.RecordEvent) error {
		d.dispatch(e.Record, "created")
		return e.Next()
	})
	d.app.OnRecordAfterUpdateSuccess(watched...).BindFunc(func(e *core.RecordEvent) error {
		d.dispatch(e.Record, "updated")
		return e.Next()
	})
	d.app.OnRecordAfterDeleteSuccess(watched...).BindFunc(func(e *core.RecordEvent) error {
		d.dispatch(e.Record, "deleted")
		return e.Next()
	})
}

func (d *Dispatcher) dispatch(record *core.Record, action string) {
	collection := record.Collection().Name
	eventType := collection + "." + action

	hooks, err := d.app.FindAllRecords("webhooks")
	if err != nil || len(hooks) == 0 {
		return
	}

	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Collection: collection,
		Record:     record.PublicExport(),
		Timestamp:  time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		d.app.Logger().Debug("webhook payload marshal failed", "type", eventType, "error", err)
		return
	}

	for _, hook := range hooks {
		if !hook.GetBool("enabled") {
			continue
		}
		url := hook.GetString("url")
		if url == "" || !matches(hook.GetStringSlice("triggers"), eventType) {
			continue
		}
		go d.deliver(url, body)
	}
}

// matches reports whether a webhook's trigger list covers the event type.
// An empty list subscribes to everything; "<collection>.*" covers every
// action on that collection.
func matches(triggers []string, eventType string) bool {
	if len(triggers) == 0 {
		return true
	}
	collection, _, _ := strings.Cut(eventType, ".")
	for _, trigger := range triggers {
		if trigger == eventType || trigger == collection+".*" {
			return true
		}
	}
	return false
}

func (d *Dispatcher) deliver(url string, body []byte) {
	resp, err := d.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		d.app.Logger().Warn("webhook delivery failed", "url", url, "error", err.Error())
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		d.app.Logger().Warn("webhook endpoint returned an error",
			"url", url,
			"status", resp.StatusCode)
	}
}
