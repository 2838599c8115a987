package appointments

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an appointment does not exist.
var ErrNotFound = errors.New("appointments: not found")

// Repository defines the interface for appointment storage.
type Repository interface {
	Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory storage.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]*Appointment
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items: make(map[string]*Appointment),
	}
}

// Create stores a new appointment in memory.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	appt := &Appointment{
		ID:            uuid.New().String(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		Concern:       req.Concern,
		Message:       req.Message,
		Kind:          req.Kind,
		CreatedAt:     time.Now().UTC(),
	}

	r.mu.Lock()
	r.items[appt.ID] = appt
	r.mu.Unlock()

	return appt, nil
}

// GetByID retrieves an appointment by ID.
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	return appt, nil
}
