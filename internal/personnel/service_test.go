package personnel

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockRepository struct {
	officers map[int]*Officer
	nextID   int
}

func newMockRepository() *mockRepository {
	return &mockRepository{officers: make(map[int]*Officer), nextID: 1}
}

func (m *mockRepository) Create(ctx context.Context, o *Officer) error {
	o.ID = m.nextID
	m.nextID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	stored := *o
	m.officers[o.ID] = &stored
	return nil
}

func (m *mockRepository) GetByID(ctx context.Context, id int) (*Officer, error) {
	o, ok := m.officers[id]
	if !ok {
		return nil, ErrOfficerNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *mockRepository) List(ctx context.Context) ([]*Officer, error) {
	var result []*Officer
	for _, o := range m.officers {
		result = append(result, o)
	}
	return result, nil
}

func (m *mockRepository) Update(ctx context.Context, o *Officer) error {
	if _, ok := m.officers[o.ID]; !ok {
		return ErrOfficerNotFound
	}
	stored := *o
	m.officers[o.ID] = &stored
	return nil
}

func TestAddOfficerDefaultsActive(t *testing.T) {
	service := NewService(newMockRepository())

	o, err := service.AddOfficer(context.Background(), nil, "Kovács Péter", "4412", "Őrmester", "Közlekedés")
	if err != nil {
		t.Fatalf("AddOfficer: %v", err)
	}
	if o.Status != StatusActive {
		t.Errorf("expected ACTIVE, got %s", o.Status)
	}
}

func TestAddOfficerRequiresNameAndBadge(t *testing.T) {
	service := NewService(newMockRepository())

	if _, err := service.AddOfficer(context.Background(), nil, "", "4412", "", ""); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := service.AddOfficer(context.Background(), nil, "Kovács Péter", "  ", "", ""); err == nil {
		t.Fatal("expected error for missing badge")
	}
}

func TestUpdateOfficerPartialPatch(t *testing.T) {
	service := NewService(newMockRepository())

	o, _ := service.AddOfficer(context.Background(), nil, "Kovács Péter", "4412", "Őrmester", "Közlekedés")

	rank := "Főtörzsőrmester"
	status := "suspended"
	updated, err := service.UpdateOfficer(context.Background(), o.ID, OfficerPatch{Rank: &rank, Status: &status})
	if err != nil {
		t.Fatalf("UpdateOfficer: %v", err)
	}

	if updated.Rank != rank {
		t.Errorf("expected rank %q, got %q", rank, updated.Rank)
	}
	if updated.Status != StatusSuspended {
		t.Errorf("expected SUSPENDED, got %s", updated.Status)
	}
	// Untouched fields survive the patch.
	if updated.Name != "Kovács Péter" || updated.Badge != "4412" {
		t.Errorf("unexpected field change: %+v", updated)
	}
}

func TestUpdateOfficerRejectsUnknownStatus(t *testing.T) {
	service := NewService(newMockRepository())

	o, _ := service.AddOfficer(context.Background(), nil, "Kovács Péter", "4412", "", "")

	bad := "ON_VACATION"
	if _, err := service.UpdateOfficer(context.Background(), o.ID, OfficerPatch{Status: &bad}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
