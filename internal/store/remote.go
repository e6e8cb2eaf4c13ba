package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PersistedSession is the remote-store record for one tab. Upserts are
// idempotent by session id; ownership is scoped to the authenticated
// principal.
type PersistedSession struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Owner            string    `json:"owner"`
	CommandHistory   []string  `json:"commandHistory"`
	WorkingDirectory string    `json:"workingDirectory"`
	OutputHistory    []string  `json:"outputHistory"`
	CreatedAt        time.Time `json:"createdAt"`
	LastUsedAt       time.Time `json:"lastUsedAt"`
	LastSavedAt      time.Time `json:"lastSavedAt"`
}

// SessionStore is the remote persistence port: a durable keyed store with
// last-write-wins upsert and no further guarantees.
type SessionStore interface {
	Load(ctx context.Context, owner string) ([]PersistedSession, error)
	Save(ctx context.Context, s PersistedSession) error
	Delete(ctx context.Context, owner, id string) error
}

// ownerHeader scopes every remote call to the calling principal.
const ownerHeader = "X-Terminal-Owner"

// RemoteStore talks to the HTTP session-store service.
type RemoteStore struct {
	rc *resty.Client
}

// NewRemoteStore returns a store client for the service at base.
func NewRemoteStore(base string) *RemoteStore {
	return &RemoteStore{rc: resty.New().SetBaseURL(base).SetTimeout(10 * time.Second)}
}

// Load fetches all sessions owned by owner.
func (s *RemoteStore) Load(ctx context.Context, owner string) ([]PersistedSession, error) {
	var out []PersistedSession
	res, err := s.rc.R().
		SetContext(ctx).
		SetHeader(ownerHeader, owner).
		SetResult(&out).
		Get("/sessions")
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("load sessions: status %d", res.StatusCode())
	}
	return out, nil
}

// Save upserts one session by id.
func (s *RemoteStore) Save(ctx context.Context, ps PersistedSession) error {
	res, err := s.rc.R().
		SetContext(ctx).
		SetHeader(ownerHeader, ps.Owner).
		SetBody(ps).
		Put("/sessions/" + ps.ID)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("save session: status %d", res.StatusCode())
	}
	return nil
}

// Delete removes one session by id.
func (s *RemoteStore) Delete(ctx context.Context, owner, id string) error {
	res, err := s.rc.R().
		SetContext(ctx).
		SetHeader(ownerHeader, owner).
		Delete("/sessions/" + id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.IsError() {
		return fmt.Errorf("delete session: status %d", res.StatusCode())
	}
	return nil
}
