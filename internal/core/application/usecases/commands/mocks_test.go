package commands_test

import (
	"context"

	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/core/domain/model/user"
	"fiesta/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByNumber(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id int64) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetByIdentity(ctx context.Context, identity int64) (*courier.Courier, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

func (m *MockCourierRepository) GetAllActive(ctx context.Context) ([]*courier.Courier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Courier), args.Error(1)
}

type MockPromoRepository struct{ mock.Mock }

func (m *MockPromoRepository) Add(ctx context.Context, p *promo.Promo) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromoRepository) GetByCode(ctx context.Context, code string) (*promo.Promo, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promo.Promo), args.Error(1)
}

func (m *MockPromoRepository) ConsumeUsage(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByTgID(ctx context.Context, tgID int64) (*user.User, error) {
	args := m.Called(ctx, tgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) CountReferrals(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) MarkRewardGranted(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockUoW satisfies every command UoW interface; the repositories are plain
// fields so tests wire them without extra expectations.
type MockUoW struct {
	mock.Mock
	orders   *MockOrderRepository
	couriers *MockCourierRepository
	promos   *MockPromoRepository
	users    *MockUserRepository
}

func newMockUoW() *MockUoW {
	return &MockUoW{
		orders:   &MockOrderRepository{},
		couriers: &MockCourierRepository{},
		promos:   &MockPromoRepository{},
		users:    &MockUserRepository{},
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.orders }
func (m *MockUoW) CourierRepository() ports.CourierRepository { return m.couriers }
func (m *MockUoW) PromoRepository() ports.PromoRepository     { return m.promos }
func (m *MockUoW) UserRepository() ports.UserRepository       { return m.users }

// expectTx arms the usual transaction lifecycle on the mock.
func (m *MockUoW) expectTx() {
	m.On("Begin", mock.Anything).Return(nil)
	m.On("Commit", mock.Anything).Return(nil)
	m.On("Rollback", mock.Anything).Return(nil)
}

type createOrderUoWFactory struct{ uow commands.CreateOrderUoW }

func (f createOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }

type orderUoWFactory struct{ uow commands.OrderUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type assignmentUoWFactory struct{ uow commands.AssignmentUoW }

func (f assignmentUoWFactory) Create() commands.AssignmentUoW { return f.uow }

type courierUoWFactory struct{ uow commands.CourierUoW }

func (f courierUoWFactory) Create() commands.CourierUoW { return f.uow }

type referralUoWFactory struct{ uow commands.ReferralUoW }

func (f referralUoWFactory) Create() commands.ReferralUoW { return f.uow }

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderCreated(ctx context.Context, o *order.Order, customerChatID int64) int64 {
	args := m.Called(ctx, o, customerChatID)
	return args.Get(0).(int64)
}

func (m *MockNotifier) OrderStatusChanged(ctx context.Context, o *order.Order, customerChatID int64) {
	m.Called(ctx, o, customerChatID)
}

func (m *MockNotifier) CourierAssigned(ctx context.Context, o *order.Order, c *courier.Courier, customerChatID int64) {
	m.Called(ctx, o, c, customerChatID)
}

func (m *MockNotifier) CourierAccepted(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID, customerChatID int64) {
	m.Called(ctx, o, c, actingMessageID, customerChatID)
}

func (m *MockNotifier) CourierDelivered(ctx context.Context, o *order.Order, c *courier.Courier, actingMessageID, customerChatID int64) {
	m.Called(ctx, o, c, actingMessageID, customerChatID)
}

func (m *MockNotifier) ReferralRewardGranted(ctx context.Context, chatID int64, code string, discountPercent int) {
	m.Called(ctx, chatID, code, discountPercent)
}
