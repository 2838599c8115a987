// Package localstore is the demo admin-dashboard backing store: a single
// JSON-encoded list of submissions under a fixed key, newest first, plus a
// contact-info override record maintained by the admin surface.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lumident/clinic-platform/pkg/logging"
)

// Storage keys. Fixed by the dashboard contract; there is no versioning or
// migration for either record.
const (
	SubmissionsKey = "appointments"
	ContactInfoKey = "clinic_contact_info"
)

// Submission is one normalized form submission as the dashboard displays it.
// Field names mirror the dashboard's stored JSON.
type Submission struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	Concern     string `json:"concern"`
	Message     string `json:"message,omitempty"`
	SubmittedAt string `json:"submittedAt"`
}

// ContactInfo overrides the static contact placeholders on the site.
// Written by the admin surface; read-only here.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Store wraps the redis-backed dashboard records.
type Store struct {
	rdb    *redis.Client
	logger *logging.Logger
}

func New(rdb *redis.Client, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{rdb: rdb, logger: logger}
}

// Prepend adds a submission to the head of the stored list. The
// read-modify-write on one JSON blob is not atomic: concurrent writers can
// race and lose updates, matching the dashboard's documented behavior.
func (s *Store) Prepend(ctx context.Context, sub Submission) error {
	list, err := s.List(ctx)
	if err != nil {
		return err
	}

	list = append([]Submission{sub}, list...)

	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("localstore: encode submissions: %w", err)
	}
	if err := s.rdb.Set(ctx, SubmissionsKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("localstore: store submissions: %w", err)
	}

	s.logger.Info("submission stored", "id", sub.ID, "type", sub.Type, "total", len(list))
	return nil
}

// List returns all stored submissions, newest first. A missing key is an
// empty list.
func (s *Store) List(ctx context.Context) ([]Submission, error) {
	raw, err := s.rdb.Get(ctx, SubmissionsKey).Result()
	if errors.Is(err, redis.Nil) {
		return []Submission{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: load submissions: %w", err)
	}

	var list []Submission
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("localstore: decode submissions: %w", err)
	}
	return list, nil
}

// ContactInfo returns the override record, or nil when none is set.
func (s *Store) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	raw, err := s.rdb.Get(ctx, ContactInfoKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: load contact info: %w", err)
	}

	var info ContactInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("localstore: decode contact info: %w", err)
	}
	return &info, nil
}
