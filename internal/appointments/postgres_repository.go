package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// pgxQuerier is the slice of the pgx API the repository needs. Both
// pgxpool.Pool and pgxmock satisfy it.
type pgxQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository stores appointments in the relational database.
type PostgresRepository struct {
	db pgxQuerier
}

// NewPostgresRepository initializes a repo backed by a pgx pool or
// compatible querier.
func NewPostgresRepository(db pgxQuerier) *PostgresRepository {
	if db == nil {
		panic("appointments: pgx querier required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	id := uuid.New()
	query := `
		INSERT INTO appointments (id, first_name, last_name, email, phone, preferred_date, concern, message, kind)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.FirstName,
		req.LastName,
		req.Email,
		req.Phone,
		req.PreferredDate,
		req.Concern,
		req.Message,
		req.Kind,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("appointments: insert failed: %w", err)
	}

	return &Appointment{
		ID:            id.String(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		Concern:       req.Concern,
		Message:       req.Message,
		Kind:          req.Kind,
		CreatedAt:     createdAt,
	}, nil
}

// GetByID fetches an appointment.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, preferred_date, concern, message, kind, created_at
		FROM appointments
		WHERE id = $1
	`
	row := r.db.QueryRow(ctx, query, id)
	var appt Appointment
	if err := row.Scan(
		&appt.ID,
		&appt.FirstName,
		&appt.LastName,
		&appt.Email,
		&appt.Phone,
		&appt.PreferredDate,
		&appt.Concern,
		&appt.Message,
		&appt.Kind,
		&appt.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("appointments: select failed: %w", err)
	}
	return &appt, nil
}
