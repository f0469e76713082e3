package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
	"github.com/xavierca1/lead-exchange/internal/infra/queue"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) TryAcquireLock(ctx context.Context, leadID, brokerID string, now time.Time) (entity.AcquireOutcome, error) {
	args := m.Called(ctx, leadID, brokerID, now)
	return args.Get(0).(entity.AcquireOutcome), args.Error(1)
}

func (m *MockLeadRepository) ReleaseLock(ctx context.Context, leadID, brokerID string) error {
	args := m.Called(ctx, leadID, brokerID)
	return args.Error(0)
}

func (m *MockLeadRepository) FindPreviewsForBroker(ctx context.Context, states, specialties []string, limit int) ([]entity.LeadPreview, error) {
	args := m.Called(ctx, states, specialties, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadPreview), args.Error(1)
}

func (m *MockLeadRepository) FindUnlockedByBroker(ctx context.Context, brokerID string) ([]entity.Lead, error) {
	args := m.Called(ctx, brokerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

type MockBrokerRepository struct {
	mock.Mock
}

func (m *MockBrokerRepository) Upsert(ctx context.Context, broker *entity.Broker) error {
	args := m.Called(ctx, broker)
	return args.Error(0)
}

func (m *MockBrokerRepository) FindByID(ctx context.Context, id string) (*entity.Broker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Broker), args.Error(1)
}

func (m *MockBrokerRepository) FindByAuthUserID(ctx context.Context, authUserID string) (*entity.Broker, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Broker), args.Error(1)
}

type MockUnlockRepository struct {
	mock.Mock
}

func (m *MockUnlockRepository) FinalizeUnlock(ctx context.Context, tx *entity.UnlockTransaction) (FinalizeResult, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(FinalizeResult), args.Error(1)
}

type MockLeadStatusRepository struct {
	mock.Mock
}

func (m *MockLeadStatusRepository) Upsert(ctx context.Context, status *entity.LeadStatus) error {
	args := m.Called(ctx, status)
	return args.Error(0)
}

func (m *MockLeadStatusRepository) FindByLeadID(ctx context.Context, leadID string) (*entity.LeadStatus, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadStatus), args.Error(1)
}

type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCheckoutSession(ctx context.Context, input stripe.CreateCheckoutSessionInput) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishLeadSold(ctx context.Context, payload queue.LeadSoldPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendQuizConfirmation(to, firstName, segment, readinessScore string) error {
	args := m.Called(to, firstName, segment, readinessScore)
	return args.Error(0)
}
