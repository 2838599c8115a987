package admin

import (
	"context"
	"database/sql"
	"time"
)

// Entry is a stored submission as the dashboard presents it.
type Entry struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	PreferredDate string    `json:"date"`
	Concern       string    `json:"concern"`
	Message       string    `json:"message,omitempty"`
	Kind          string    `json:"type"`
	CreatedAt     time.Time `json:"submittedAt"`
}

// Repository reads the appointments table for the dashboard.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// List returns all submissions, newest first.
func (r *Repository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email, phone, preferred_date, concern, message, kind, created_at
		FROM appointments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
			&e.PreferredDate, &e.Concern, &e.Message, &e.Kind, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if out == nil {
		out = []Entry{}
	}
	return out, rows.Err()
}

// Get fetches a single submission. Returns nil when it does not exist.
func (r *Repository) Get(ctx context.Context, id string) (*Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email, phone, preferred_date, concern, message, kind, created_at
		FROM appointments WHERE id = $1`, id).Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Phone,
		&e.PreferredDate, &e.Concern, &e.Message, &e.Kind, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes a submission once the clinic has handled it.
func (r *Repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}
