package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"tecstore/internal/domain"
	"tecstore/internal/store"
)

// Service owns the ordered line item sequence and writes it through to the
// persistent store after every mutation. Insertion order is display order.
type Service struct {
	mu     sync.Mutex
	store  store.Store
	logger *logrus.Logger
	items  []domain.CartItem
}

// New loads the persisted cart, substituting an empty sequence when the
// stored value is missing or malformed.
func New(ctx context.Context, st store.Store, logger *logrus.Logger) (*Service, error) {
	s := &Service{store: st, logger: logger, items: []domain.CartItem{}}
	if err := store.ReadJSON(ctx, st, store.CartKey, &s.items); err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if s.items == nil {
		s.items = []domain.CartItem{}
	}
	return s, nil
}

// AddItem increments the quantity of an existing line item by one, or
// appends a new item with quantity 1. A request without an id is silently
// ignored.
func (s *Service) AddItem(ctx context.Context, req domain.AddToCartRequest) error {
	item, ok := req.Normalize()
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.indexOf(item.ID); idx >= 0 {
		s.items[idx].Quantity++
	} else {
		s.items = append(s.items, item)
	}
	return s.persist(ctx)
}

// ChangeQuantity adds delta to the item's quantity; an item whose quantity
// drops to zero or below is removed entirely. Unknown ids are a no-op.
func (s *Service) ChangeQuantity(ctx context.Context, id domain.ItemID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.items[idx].Quantity += delta
	if s.items[idx].Quantity <= 0 {
		s.items = append(s.items[:idx], s.items[idx+1:]...)
	}
	return s.persist(ctx)
}

// RemoveItem drops the item with the given id. Unknown ids are a no-op.
func (s *Service) RemoveItem(ctx context.Context, id domain.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return s.persist(ctx)
}

// Clear empties the cart. Used on checkout completion.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = []domain.CartItem{}
	return s.persist(ctx)
}

// Items returns a copy of the line items in display order.
func (s *Service) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of price times quantity over all items.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct items.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Service) indexOf(id domain.ItemID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) persist(ctx context.Context) error {
	if err := store.WriteJSON(ctx, s.store, store.CartKey, s.items); err != nil {
		s.logger.WithError(err).Error("persist cart")
		return fmt.Errorf("persist cart: %w", err)
	}
	return nil
}
