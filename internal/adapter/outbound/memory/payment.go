// Package memory provides in-process implementations of the outbound ports.
// It backs the "memory" database driver and end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alurafood/payments/internal/model"
	"github.com/alurafood/payments/internal/port/outbound"
)

// PaymentStore is a map-backed payment store. Safe for concurrent use.
type PaymentStore struct {
	mu       sync.RWMutex
	nextID   uint64
	payments map[uint64]*model.Payment
	now      func() time.Time
}

// NewPaymentStore creates an empty store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{
		payments: make(map[uint64]*model.Payment),
		now:      time.Now,
	}
}

func (s *PaymentStore) FindByID(_ context.Context, id uint64) (*model.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (s *PaymentStore) ExistsByID(_ context.Context, id uint64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.payments[id]
	return ok, nil
}

func (s *PaymentStore) Save(_ context.Context, payment *model.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if payment.ID == 0 {
		s.nextID++
		payment.ID = s.nextID
		payment.CreatedAt = now
	} else if existing, ok := s.payments[payment.ID]; ok {
		payment.CreatedAt = existing.CreatedAt
	} else if payment.ID > s.nextID {
		s.nextID = payment.ID
	}
	payment.UpdatedAt = now

	s.payments[payment.ID] = payment.Clone()
	return nil
}

func (s *PaymentStore) DeleteByID(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.payments, id)
	return nil
}

func (s *PaymentStore) FindAll(_ context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uint64, 0, len(s.payments))
	for id := range s.payments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	total := int64(len(ids))
	start := page.Offset()
	if start > len(ids) {
		start = len(ids)
	}
	end := len(ids)
	if page.PageSize > 0 && start+page.PageSize < end {
		end = start + page.PageSize
	}

	result := make([]*model.Payment, 0, end-start)
	for _, id := range ids[start:end] {
		result = append(result, s.payments[id].Clone())
	}
	return result, total, nil
}

// Len returns the number of stored payments.
func (s *PaymentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.payments)
}

// Compile-time interface assertion.
var _ outbound.PaymentDatabasePort = (*PaymentStore)(nil)
