package payment

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/alurafood/payments/internal/model"
	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// --- Mock Implementations ---

type MockPaymentDatabasePort struct {
	mock.Mock
}

func (m *MockPaymentDatabasePort) FindByID(ctx context.Context, id uint64) (*model.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentDatabasePort) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentDatabasePort) Save(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentDatabasePort) DeleteByID(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPaymentDatabasePort) FindAll(ctx context.Context, page model.PaginationRequest) ([]*model.Payment, int64, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.Payment), args.Get(1).(int64), args.Error(2)
}

type MockOrderNotifierPort struct {
	mock.Mock
}

func (m *MockOrderNotifierPort) NotifyPaymentUpdated(ctx context.Context, orderID uint64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// --- Helpers ---

func newTestDomain() (*paymentDomain, *MockPaymentDatabasePort, *MockOrderNotifierPort) {
	mockDB := new(MockPaymentDatabasePort)
	mockNotifier := new(MockOrderNotifierPort)
	domain := NewPaymentDomain(mockDB, mockNotifier, zap.NewNop()).(*paymentDomain)
	return domain, mockDB, mockNotifier
}

func storedPayment(id uint64, status model.PaymentStatus) *model.Payment {
	return &model.Payment{
		ID:              id,
		Amount:          decimal.RequireFromString("10.50"),
		HolderName:      "Ana",
		CardNumber:      "4111111111111111",
		Expiry:          "12/2030",
		SecurityCode:    "123",
		Status:          status,
		PaymentMethodID: 1,
		OrderID:         42,
	}
}

func uint64Ptr(v uint64) *uint64 { return &v }

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCreateRequest() *model.CreatePaymentRequest {
	return &model.CreatePaymentRequest{
		Amount:          decimalPtr("10.50"),
		HolderName:      "Ana",
		CardNumber:      "4111111111111111",
		Expiry:          "12/2030",
		SecurityCode:    "123",
		PaymentMethodID: uint64Ptr(1),
		OrderID:         uint64Ptr(42),
	}
}

// --- Tests ---

func TestPaymentDomain_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("Save", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.ID == 0 && p.Status == model.PaymentStatusCreated
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Payment).ID = 1
		}).Return(nil)

		payment, err := domain.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, uint64(1), payment.ID)
		assert.Equal(t, model.PaymentStatusCreated, payment.Status)
		assert.True(t, payment.Amount.Equal(decimal.RequireFromString("10.50")))
		assert.Equal(t, uint64(42), payment.OrderID)
		mockDB.AssertExpectations(t)
	})

	t.Run("ignores supplied status", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		req := validCreateRequest()
		req.Status = model.PaymentStatusConfirmed

		mockDB.On("Save", ctx, mock.Anything).Return(nil)

		payment, err := domain.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusCreated, payment.Status)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()
		storeErr := errors.New("connection reset")

		mockDB.On("Save", ctx, mock.Anything).Return(storeErr)

		payment, err := domain.Create(ctx, validCreateRequest())

		assert.Nil(t, payment)
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestPaymentDomain_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()
		expected := storedPayment(7, model.PaymentStatusCreated)

		mockDB.On("FindByID", ctx, uint64(7)).Return(expected, nil)

		payment, err := domain.Get(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, expected, payment)
		mockDB.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(99)).Return(nil, nil)

		payment, err := domain.Get(ctx, 99)

		assert.Nil(t, payment)
		assert.ErrorIs(t, err, ErrPaymentNotFound)

		doc := apperrors.Classify(err, "/api/v1/payments/99", time.Now())
		assert.Equal(t, http.StatusNotFound, doc.StatusCode)
		assert.Equal(t, "payment not found", doc.Message)
		assert.Equal(t, "/payments/99", doc.Path)
	})

	t.Run("store failure propagates unchanged", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()
		storeErr := errors.New("timeout")

		mockDB.On("FindByID", ctx, uint64(1)).Return(nil, storeErr)

		_, err := domain.Get(ctx, 1)

		assert.Equal(t, storeErr, err)
	})
}

func TestPaymentDomain_List(t *testing.T) {
	domain, mockDB, _ := newTestDomain()
	ctx := context.Background()
	payments := []*model.Payment{
		storedPayment(1, model.PaymentStatusCreated),
		storedPayment(2, model.PaymentStatusConfirmed),
	}

	mockDB.On("FindAll", ctx, model.PaginationRequest{Page: 1, PageSize: 20}).Return(payments, int64(2), nil)

	result, total, err := domain.List(ctx, model.PaginationRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, payments, result)
	mockDB.AssertExpectations(t)
}

func TestPaymentDomain_Update(t *testing.T) {
	t.Run("overlays present fields", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.Anything).Return(nil)

		payment, err := domain.Update(ctx, 1, &model.UpdatePaymentRequest{
			HolderName: "Maria",
			Amount:     decimalPtr("99.90"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Maria", payment.HolderName)
		assert.True(t, payment.Amount.Equal(decimal.RequireFromString("99.90")))
		assert.Equal(t, "4111111111111111", payment.CardNumber)
		assert.Equal(t, uint64(42), payment.OrderID)
		mockDB.AssertExpectations(t)
	})

	t.Run("never changes status", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.Status == model.PaymentStatusCreated
		})).Return(nil)

		payment, err := domain.Update(ctx, 1, &model.UpdatePaymentRequest{
			Status: model.PaymentStatusConfirmed,
		})

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusCreated, payment.Status)
		mockDB.AssertExpectations(t)
	})

	t.Run("empty update leaves record unchanged", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.Anything).Return(nil)

		payment, err := domain.Update(ctx, 1, &model.UpdatePaymentRequest{})

		require.NoError(t, err)
		assert.Equal(t, storedPayment(1, model.PaymentStatusCreated), payment)
	})

	t.Run("not found", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(5)).Return(nil, nil)

		_, err := domain.Update(ctx, 5, &model.UpdatePaymentRequest{HolderName: "X"})

		assert.ErrorIs(t, err, ErrPaymentNotFound)
		mockDB.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPaymentDomain_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("ExistsByID", ctx, uint64(3)).Return(true, nil)
		mockDB.On("DeleteByID", ctx, uint64(3)).Return(nil)

		err := domain.Delete(ctx, 3)

		require.NoError(t, err)
		mockDB.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("ExistsByID", ctx, uint64(3)).Return(false, nil)

		err := domain.Delete(ctx, 3)

		assert.ErrorIs(t, err, ErrPaymentNotFound)
		doc := apperrors.Classify(err, "/api/v1/payments/3", time.Now())
		assert.Equal(t, "/payments/3", doc.Path)
		mockDB.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("existence check failure propagates", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()
		storeErr := errors.New("db down")

		mockDB.On("ExistsByID", ctx, uint64(3)).Return(false, storeErr)

		err := domain.Delete(ctx, 3)

		assert.Equal(t, storeErr, err)
	})
}

func TestPaymentDomain_ConfirmWithIntegration(t *testing.T) {
	t.Run("saves before notifying", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()
		var events []string

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.Status == model.PaymentStatusConfirmed
		})).Run(func(mock.Arguments) {
			events = append(events, "save")
		}).Return(nil)
		mockNotifier.On("NotifyPaymentUpdated", ctx, uint64(42)).Run(func(mock.Arguments) {
			events = append(events, "notify")
		}).Return(nil)

		payment, err := domain.ConfirmWithIntegration(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusConfirmed, payment.Status)
		assert.Equal(t, []string{"save", "notify"}, events)
		mockNotifier.AssertNumberOfCalls(t, "NotifyPaymentUpdated", 1)
		mockDB.AssertExpectations(t)
	})

	t.Run("gateway failure keeps status change", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()
		gatewayErr := errors.New("order service unavailable")
		stored := storedPayment(1, model.PaymentStatusCreated)

		mockDB.On("FindByID", ctx, uint64(1)).Return(stored, nil)
		mockDB.On("Save", ctx, mock.Anything).Return(nil)
		mockNotifier.On("NotifyPaymentUpdated", ctx, uint64(42)).Return(gatewayErr)

		payment, err := domain.ConfirmWithIntegration(ctx, 1)

		assert.Nil(t, payment)
		assert.Equal(t, gatewayErr, err)
		assert.Equal(t, model.PaymentStatusConfirmed, stored.Status)
		mockDB.AssertNumberOfCalls(t, "Save", 1)
		mockNotifier.AssertNumberOfCalls(t, "NotifyPaymentUpdated", 1)
	})

	t.Run("save failure skips gateway", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.Anything).Return(errors.New("write failed"))

		_, err := domain.ConfirmWithIntegration(ctx, 1)

		assert.Error(t, err)
		mockNotifier.AssertNotCalled(t, "NotifyPaymentUpdated", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(8)).Return(nil, nil)

		_, err := domain.ConfirmWithIntegration(ctx, 8)

		assert.ErrorIs(t, err, ErrPaymentNotFound)
		mockNotifier.AssertNotCalled(t, "NotifyPaymentUpdated", mock.Anything, mock.Anything)
	})
}

func TestPaymentDomain_ConfirmWithoutIntegration(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusCreated), nil)
		mockDB.On("Save", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.Status == model.PaymentStatusConfirmedWithoutIntegration
		})).Return(nil)

		payment, err := domain.ConfirmWithoutIntegration(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusConfirmedWithoutIntegration, payment.Status)
		mockNotifier.AssertNotCalled(t, "NotifyPaymentUpdated", mock.Anything, mock.Anything)
		mockDB.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(2)).Return(nil, nil)

		_, err := domain.ConfirmWithoutIntegration(ctx, 2)

		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestPaymentDomain_ForceConfirmedWithoutIntegration(t *testing.T) {
	t.Run("overrides any status", func(t *testing.T) {
		domain, mockDB, mockNotifier := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(1)).Return(storedPayment(1, model.PaymentStatusConfirmed), nil)
		mockDB.On("Save", ctx, mock.MatchedBy(func(p *model.Payment) bool {
			return p.Status == model.PaymentStatusConfirmedWithoutIntegration
		})).Return(nil)

		payment, err := domain.ForceConfirmedWithoutIntegration(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusConfirmedWithoutIntegration, payment.Status)
		mockNotifier.AssertNotCalled(t, "NotifyPaymentUpdated", mock.Anything, mock.Anything)
		mockDB.AssertExpectations(t)
	})

	t.Run("not found uses generic signal", func(t *testing.T) {
		domain, mockDB, _ := newTestDomain()
		ctx := context.Background()

		mockDB.On("FindByID", ctx, uint64(404)).Return(nil, nil)

		_, err := domain.ForceConfirmedWithoutIntegration(ctx, 404)

		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
		assert.NotErrorIs(t, err, ErrPaymentNotFound)

		doc := apperrors.Classify(err, "/api/v1/payments/404/force-confirm", time.Now())
		assert.Equal(t, http.StatusNotFound, doc.StatusCode)
		assert.Equal(t, apperrors.MessageNotFound, doc.Message)
		assert.Equal(t, "/api/v1/payments/404/force-confirm", doc.Path)
	})
}
