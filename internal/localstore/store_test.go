package localstore

import (
	"context"
	"encoding/json"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lumident/clinic-platform/pkg/logging"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, logging.Default()), mr
}

func TestListEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d entries", len(list))
	}
}

func TestPrependNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	first := Submission{ID: 1, Type: "appointment", FirstName: "An"}
	second := Submission{ID: 2, Type: "message", FirstName: "Binh"}

	if err := store.Prepend(ctx, first); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}
	if err := store.Prepend(ctx, second); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list))
	}
	if list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("expected newest first, got order %d, %d", list[0].ID, list[1].ID)
	}
}

func TestPrependStoredShape(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	sub := Submission{
		ID:          1700000000000,
		Type:        "appointment",
		FirstName:   "Lan",
		LastName:    "Pham",
		Email:       "lan@example.com",
		Phone:       "+84 90 000 0000",
		Date:        "2026-09-15",
		Concern:     "Braces Consultation",
		SubmittedAt: "2026-09-01T10:00:00Z",
	}
	if err := store.Prepend(ctx, sub); err != nil {
		t.Fatalf("Prepend failed: %v", err)
	}

	raw, err := mr.DB(0).Get(SubmissionsKey)
	if err != nil {
		t.Fatalf("failed to read raw key: %v", err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("stored value is not a JSON list: %v", err)
	}
	if decoded[0]["firstName"] != "Lan" {
		t.Errorf("expected dashboard field name firstName, got %v", decoded[0])
	}
	if _, present := decoded[0]["message"]; present {
		t.Error("empty message should be omitted")
	}
}

func TestContactInfo(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	info, err := store.ContactInfo(ctx)
	if err != nil {
		t.Fatalf("ContactInfo failed: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil for unset contact info, got %+v", info)
	}

	mr.Set(ContactInfoKey, `{"phone":"+84 28 0000 0000","email":"hello@lumident.example","address":"12 Nguyen Hue\nDistrict 1"}`)

	info, err = store.ContactInfo(ctx)
	if err != nil {
		t.Fatalf("ContactInfo failed: %v", err)
	}
	if info == nil || info.Email != "hello@lumident.example" {
		t.Fatalf("unexpected contact info: %+v", info)
	}
}

func TestListCorruptPayload(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Set(SubmissionsKey, "{not json")
	if _, err := store.List(context.Background()); err == nil {
		t.Fatal("expected decode error for corrupt payload")
	}
}
