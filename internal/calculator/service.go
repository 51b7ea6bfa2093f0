package calculator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"precinct/internal/penalcode"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrTemplateNotFound = errors.New("template not found")
)

// LineInput is the wire form of a cart line: an item reference plus a
// quantity. Quantity defaults to 1.
type LineInput struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type Service struct {
	penalCode *penalcode.Service
	store     Store
	mode      AddMode
}

func NewService(penalCode *penalcode.Service, store Store, mode AddMode) *Service {
	return &Service{penalCode: penalCode, store: store, mode: mode}
}

// BuildCart resolves posted line inputs against the catalog.
func (s *Service) BuildCart(inputs []LineInput) (*Cart, error) {
	cart := NewCart(s.mode)

	for _, in := range inputs {
		item, err := s.penalCode.ItemByID(in.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", in.ItemID, err)
		}

		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		cart.AddLine(item, quantity)
	}

	return cart, nil
}

// Summary computes totals for a posted cart. Stateless: the same input
// always yields the same summary.
func (s *Service) Summary(inputs []LineInput, isAccomplice bool) (Summary, error) {
	cart, err := s.BuildCart(inputs)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(cart.Lines(), isAccomplice), nil
}

// Commands computes totals and renders the ticket/arrest output.
func (s *Service) Commands(inputs []LineInput, opts CommandOptions) (Commands, Summary, error) {
	cart, err := s.BuildCart(inputs)
	if err != nil {
		return Commands{}, Summary{}, err
	}

	lines := cart.Lines()
	sum := Summarize(lines, opts.IsAccomplice)
	return BuildCommands(lines, sum, opts), sum, nil
}

// --------------------------------------------------
// History
// --------------------------------------------------

func (s *Service) History(ctx context.Context, userID string) []Snapshot {
	history := []Snapshot{}
	loadInto(ctx, s.store, userID, keyHistory, &history)
	return history
}

// SaveHistory appends a snapshot unless it repeats the most recent one.
func (s *Service) SaveHistory(ctx context.Context, userID string, snap Snapshot) ([]Snapshot, error) {
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now().UTC()
	}

	history := s.History(ctx, userID)
	history = pushSnapshot(history, snap)

	if err := saveFrom(ctx, s.store, userID, keyHistory, s.penalCode.Revision(), history); err != nil {
		return nil, err
	}
	return history, nil
}

// --------------------------------------------------
// Favorites
// --------------------------------------------------

func (s *Service) Favorites(ctx context.Context, userID string) []int {
	favorites := []int{}
	loadInto(ctx, s.store, userID, keyFavorites, &favorites)
	return favorites
}

// ToggleFavorite flips membership and reports the new state.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, itemID int) ([]int, bool, error) {
	if _, err := s.penalCode.ItemByID(itemID); err != nil {
		return nil, false, err
	}

	favorites := s.Favorites(ctx, userID)

	nowFavorite := true
	for i, id := range favorites {
		if id == itemID {
			favorites = append(favorites[:i], favorites[i+1:]...)
			nowFavorite = false
			break
		}
	}
	if nowFavorite {
		favorites = append(favorites, itemID)
	}

	if err := saveFrom(ctx, s.store, userID, keyFavorites, s.penalCode.Revision(), favorites); err != nil {
		return nil, false, err
	}
	return favorites, nowFavorite, nil
}

// --------------------------------------------------
// Templates
// --------------------------------------------------

func (s *Service) Templates(ctx context.Context, userID string) []Template {
	templates := []Template{}
	loadInto(ctx, s.store, userID, keyTemplates, &templates)
	return templates
}

func (s *Service) SaveTemplate(ctx context.Context, userID, name string, lines []LineInput) (Template, error) {
	if name == "" {
		return Template{}, errors.New("template name is required")
	}
	if len(lines) == 0 {
		return Template{}, ErrEmptyCart
	}

	template := Template{
		ID:   uuid.New().String(),
		Name: name,
	}
	for _, in := range lines {
		if _, err := s.penalCode.ItemByID(in.ItemID); err != nil {
			return Template{}, fmt.Errorf("item %d: %w", in.ItemID, err)
		}
		quantity := in.Quantity
		if quantity < 1 {
			quantity = 1
		}
		template.Lines = append(template.Lines, SnapshotLine{ItemID: in.ItemID, Quantity: quantity})
	}

	templates := append(s.Templates(ctx, userID), template)
	if err := saveFrom(ctx, s.store, userID, keyTemplates, s.penalCode.Revision(), templates); err != nil {
		return Template{}, err
	}
	return template, nil
}

func (s *Service) DeleteTemplate(ctx context.Context, userID, templateID string) error {
	templates := s.Templates(ctx, userID)

	for i, template := range templates {
		if template.ID == templateID {
			templates = append(templates[:i], templates[i+1:]...)
			return saveFrom(ctx, s.store, userID, keyTemplates, s.penalCode.Revision(), templates)
		}
	}

	return ErrTemplateNotFound
}

// ApplyTemplate bulk-appends a template's lines into a posted cart and
// returns the merged lines.
func (s *Service) ApplyTemplate(ctx context.Context, userID, templateID string, base []LineInput) ([]Line, error) {
	var found *Template
	for _, template := range s.Templates(ctx, userID) {
		if template.ID == templateID {
			t := template
			found = &t
			break
		}
	}
	if found == nil {
		return nil, ErrTemplateNotFound
	}

	cart, err := s.BuildCart(base)
	if err != nil {
		return nil, err
	}

	for _, line := range found.Lines {
		item, err := s.penalCode.ItemByID(line.ItemID)
		if err != nil {
			// Dataset may have changed since the template was saved;
			// skip ids that no longer resolve.
			continue
		}
		cart.AddLine(item, line.Quantity)
	}

	return cart.Lines(), nil
}
