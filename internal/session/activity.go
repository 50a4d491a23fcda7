package session

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/crymson-fx/internal/config"
	"github.com/iburimskiy/crymson-fx/internal/storage"
)

const maxActivities = 100

type Activity struct {
	ID        string    `yaml:"id"`
	Type      string    `yaml:"type"`
	Title     string    `yaml:"title"`
	Details   string    `yaml:"details"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Tracker keeps a newest-first log of clicks and navigations. It is disabled
// when the tracking flag is stored as "false".
type Tracker struct {
	store      *storage.Store
	enabled    bool
	activities []Activity
	now        func() time.Time
}

func NewTracker(store *storage.Store) *Tracker {
	t := &Tracker{
		store:   store,
		enabled: store.Bool(config.KeyActivityTracking, true),
		now:     time.Now,
	}
	if !t.enabled {
		return t
	}
	if _, err := store.LoadYAML(config.KeyActivities, &t.activities); err != nil {
		log.Printf("[Session] Warning: could not load activities: %v", err)
		t.activities = nil
	}
	return t
}

func (t *Tracker) Enabled() bool { return t.enabled }

// Activities returns a copy, newest first.
func (t *Tracker) Activities() []Activity {
	return append([]Activity(nil), t.activities...)
}

// Add records one activity and persists the log.
func (t *Tracker) Add(kind, title, details string) {
	if !t.enabled {
		return
	}
	a := Activity{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Details:   details,
		Timestamp: t.now().UTC(),
	}
	t.activities = append([]Activity{a}, t.activities...)
	if len(t.activities) > maxActivities {
		t.activities = t.activities[:maxActivities]
	}
	if err := t.store.SaveYAML(config.KeyActivities, t.activities); err != nil {
		log.Printf("[Session] Warning: could not save activities: %v", err)
	}
}

// Click records a button press. The primary login button is not tracked.
func (t *Tracker) Click(label, page string, primary bool) {
	if primary {
		return
	}
	if label == "" {
		label = "Unknown button"
	}
	if page == "" {
		page = "unknown"
	}
	t.Add("click", "Button clicked: "+label, "Page: "+page)
}

func (t *Tracker) Navigate(page string) {
	if page == "" {
		page = "unknown"
	}
	t.Add("navigation", "Navigated to "+page, "Page change")
}
