package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	adapter "fiesta/internal/adapters/in/http"
	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/application/usecases/queries"
	"fiesta/internal/core/domain/model/courier"
	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/core/domain/model/user"
	"fiesta/internal/core/ports"
	"fiesta/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepository serves canned aggregates keyed by id.
type stubOrderRepository struct {
	orders map[int64]*order.Order
}

func (s *stubOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if aggregate.ID() == 0 {
		if err := aggregate.SetID(int64(len(s.orders) + 1)); err != nil {
			return err
		}
	}
	s.orders[aggregate.ID()] = aggregate
	return nil
}

func (s *stubOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	s.orders[aggregate.ID()] = aggregate
	return nil
}

func (s *stubOrderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	aggregate, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return aggregate, nil
}

func (s *stubOrderRepository) GetByNumber(_ context.Context, number kernel.OrderNumber) (*order.Order, error) {
	for _, aggregate := range s.orders {
		if aggregate.Number().IsEqual(number) {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("number", number.String())
}

func (s *stubOrderRepository) GetAllActive(_ context.Context) ([]*order.Order, error) {
	return nil, nil
}

func (s *stubOrderRepository) GetByUser(_ context.Context, _ int64, _ int) ([]*order.Order, error) {
	return nil, nil
}

// stubCourierRepository resolves couriers by identity.
type stubCourierRepository struct {
	couriers map[int64]*courier.Courier
}

func (s *stubCourierRepository) Add(_ context.Context, aggregate *courier.Courier) error {
	s.couriers[aggregate.ID()] = aggregate
	return nil
}

func (s *stubCourierRepository) Update(_ context.Context, aggregate *courier.Courier) error {
	s.couriers[aggregate.ID()] = aggregate
	return nil
}

func (s *stubCourierRepository) Get(_ context.Context, id int64) (*courier.Courier, error) {
	aggregate, ok := s.couriers[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("courierID", id)
	}
	return aggregate, nil
}

func (s *stubCourierRepository) GetByIdentity(_ context.Context, identity int64) (*courier.Courier, error) {
	for _, aggregate := range s.couriers {
		if aggregate.MatchesIdentity(identity) {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("identity", identity)
}

func (s *stubCourierRepository) GetAllActive(_ context.Context) ([]*courier.Courier, error) {
	return nil, nil
}

// stubPromoRepository knows no codes.
type stubPromoRepository struct{}

func (stubPromoRepository) Add(_ context.Context, _ *promo.Promo) error { return nil }

func (stubPromoRepository) GetByCode(_ context.Context, code string) (*promo.Promo, error) {
	return nil, errs.NewObjectNotFoundError("promoCode", code)
}

func (stubPromoRepository) ConsumeUsage(_ context.Context, _ string) error { return nil }

// stubUserRepository serves canned users keyed by messenger id.
type stubUserRepository struct {
	users map[int64]*user.User
}

func (s *stubUserRepository) Add(_ context.Context, aggregate *user.User) error {
	if aggregate.ID() == 0 {
		if err := aggregate.SetID(int64(len(s.users) + 1)); err != nil {
			return err
		}
	}
	s.users[aggregate.TgID()] = aggregate
	return nil
}

func (s *stubUserRepository) Update(_ context.Context, aggregate *user.User) error {
	s.users[aggregate.TgID()] = aggregate
	return nil
}

func (s *stubUserRepository) Get(_ context.Context, id int64) (*user.User, error) {
	for _, aggregate := range s.users {
		if aggregate.ID() == id {
			return aggregate, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("userID", id)
}

func (s *stubUserRepository) GetByTgID(_ context.Context, tgID int64) (*user.User, error) {
	aggregate, ok := s.users[tgID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("tgID", tgID)
	}
	return aggregate, nil
}

func (s *stubUserRepository) CountReferrals(_ context.Context, _ int64) (int, error) {
	return 0, nil
}

func (s *stubUserRepository) MarkRewardGranted(_ context.Context, _ int64) error {
	return nil
}

// stubUoW satisfies every narrow unit-of-work interface with no-op
// transaction management.
type stubUoW struct {
	orders   *stubOrderRepository
	couriers *stubCourierRepository
	promos   stubPromoRepository
	users    *stubUserRepository
}

func newStubUoW() *stubUoW {
	return &stubUoW{
		orders:   &stubOrderRepository{orders: make(map[int64]*order.Order)},
		couriers: &stubCourierRepository{couriers: make(map[int64]*courier.Courier)},
		users:    &stubUserRepository{users: make(map[int64]*user.User)},
	}
}

func (u *stubUoW) Begin(context.Context) error                { return nil }
func (u *stubUoW) Commit(context.Context) error               { return nil }
func (u *stubUoW) Rollback(context.Context) error             { return nil }
func (u *stubUoW) OrderRepository() ports.OrderRepository     { return u.orders }
func (u *stubUoW) CourierRepository() ports.CourierRepository { return u.couriers }
func (u *stubUoW) PromoRepository() ports.PromoRepository     { return u.promos }
func (u *stubUoW) UserRepository() ports.UserRepository       { return u.users }

type stubUoWFactory struct {
	uow *stubUoW
}

func (f stubUoWFactory) Create() commands.OrderUoW { return f.uow }

type stubCreateOrderUoWFactory struct{ uow *stubUoW }

func (f stubCreateOrderUoWFactory) Create() commands.CreateOrderUoW { return f.uow }

type stubAssignmentUoWFactory struct{ uow *stubUoW }

func (f stubAssignmentUoWFactory) Create() commands.AssignmentUoW { return f.uow }

type stubCourierUoWFactory struct{ uow *stubUoW }

func (f stubCourierUoWFactory) Create() commands.CourierUoW { return f.uow }

type stubReferralUoWFactory struct{ uow *stubUoW }

func (f stubReferralUoWFactory) Create() commands.ReferralUoW { return f.uow }

// stubNotifier swallows every notification.
type stubNotifier struct{}

func (stubNotifier) OrderCreated(context.Context, *order.Order, int64) int64 { return 0 }
func (stubNotifier) OrderStatusChanged(context.Context, *order.Order, int64) {}
func (stubNotifier) CourierAssigned(context.Context, *order.Order, *courier.Courier, int64) {}
func (stubNotifier) CourierAccepted(context.Context, *order.Order, *courier.Courier, int64, int64) {}
func (stubNotifier) CourierDelivered(context.Context, *order.Order, *courier.Courier, int64, int64) {}
func (stubNotifier) ReferralRewardGranted(context.Context, int64, string, int) {}

// stubSettingsRepository records the last written value.
type stubSettingsRepository struct {
	values map[string]string
}

func (s *stubSettingsRepository) Get(_ context.Context, key string) (string, error) {
	value, ok := s.values[key]
	if !ok {
		return "", errs.NewObjectNotFoundError("setting", key)
	}
	return value, nil
}

func (s *stubSettingsRepository) Set(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

type serverFixture struct {
	echo     *echo.Echo
	uow      *stubUoW
	settings *stubSettingsRepository
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	uow := newStubUoW()
	settings := &stubSettingsRepository{values: make(map[string]string)}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := stubNotifier{}

	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(stubCreateOrderUoWFactory{uow}, notifier, log),
		commands.NewChangeOrderStatusCommandHandler(stubUoWFactory{uow}, notifier, log),
		commands.NewAssignCourierCommandHandler(stubAssignmentUoWFactory{uow}, notifier, log),
		commands.NewCourierAcceptCommandHandler(stubAssignmentUoWFactory{uow}, notifier, log),
		commands.NewCourierDeliverCommandHandler(stubAssignmentUoWFactory{uow}, notifier, log),
		commands.NewSetCourierAvailabilityCommandHandler(stubCourierUoWFactory{uow}),
		commands.NewRegisterUserCommandHandler(stubReferralUoWFactory{uow}, log),
		commands.NewGrantReferralRewardCommandHandler(stubReferralUoWFactory{uow}, notifier, log),
		queries.ValidatePromoQueryHandler{},
		queries.GetActiveOrdersQueryHandler{},
		queries.GetUserOrdersQueryHandler{},
		queries.GetReferralStatsQueryHandler{},
		queries.GetStatsQueryHandler{},
		settings,
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &serverFixture{echo: e, uow: uow, settings: settings}
}

func (f *serverFixture) request(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	f.echo.ServeHTTP(recorder, request)
	return recorder
}

func (f *serverFixture) seedUser(t *testing.T, tgID int64) *user.User {
	t.Helper()
	aggregate, err := user.NewUser(tgID, "dilnoza", "Dilnoza K", nil)
	require.NoError(t, err)
	require.NoError(t, f.uow.users.Add(context.Background(), aggregate))
	return aggregate
}

func (f *serverFixture) seedOrder(t *testing.T, userID int64) *order.Order {
	t.Helper()
	location, err := kernel.NewLocation(41.31, 69.28)
	require.NoError(t, err)
	item, err := order.NewItem(nil, "Plov", 60000, 1)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		kernel.NewOrderNumber(), userID, "Dilnoza", "+998901234567", "",
		60000, location, "", []order.Item{item},
	)
	require.NoError(t, err)
	require.NoError(t, f.uow.orders.Add(context.Background(), aggregate))
	return aggregate
}

func TestHealth(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateOrder_Success(t *testing.T) {
	fixture := newServerFixture(t)
	fixture.seedUser(t, 777)

	body := `{
		"user_tg_id": 777,
		"customer_name": "Dilnoza",
		"phone": "+998901234567",
		"total": 60000,
		"lat": 41.31,
		"lng": 69.28,
		"items": [{"name": "Plov", "price": 60000, "qty": 1}]
	}`
	recorder := fixture.request(http.MethodPost, "/api/v1/orders", body)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var response adapter.CreateOrderResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotZero(t, response.ID)
	assert.Regexp(t, `^F[0-9A-F]{8}$`, response.Number)
	assert.Equal(t, "NEW", response.Status)
}

func TestCreateOrder_MissingCustomerName(t *testing.T) {
	fixture := newServerFixture(t)

	body := `{
		"user_tg_id": 777,
		"phone": "+998901234567",
		"total": 60000,
		"lat": 41.31,
		"lng": 69.28,
		"items": [{"name": "Plov", "price": 60000, "qty": 1}]
	}`
	recorder := fixture.request(http.MethodPost, "/api/v1/orders", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateOrder_UnknownCustomer(t *testing.T) {
	fixture := newServerFixture(t)

	body := `{
		"user_tg_id": 31337,
		"customer_name": "Ghost",
		"phone": "+998901234567",
		"total": 60000,
		"lat": 41.31,
		"lng": 69.28,
		"items": [{"name": "Plov", "price": 60000, "qty": 1}]
	}`
	recorder := fixture.request(http.MethodPost, "/api/v1/orders", body)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestChangeOrderStatus_Success(t *testing.T) {
	fixture := newServerFixture(t)
	customer := fixture.seedUser(t, 777)
	placed := fixture.seedOrder(t, customer.ID())

	recorder := fixture.request(http.MethodPost, "/api/v1/orders/1/status", `{"status": "CONFIRMED"}`)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, order.StatusConfirmed, placed.Status())
}

func TestChangeOrderStatus_UnknownStatus(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodPost, "/api/v1/orders/1/status", `{"status": "TELEPORTED"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestChangeOrderStatus_OrderNotFound(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodPost, "/api/v1/orders/42/status", `{"status": "CONFIRMED"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestChangeOrderStatus_NonNumericID(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodPost, "/api/v1/orders/abc/status", `{"status": "CONFIRMED"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCourierAccept_UnknownIdentityForbidden(t *testing.T) {
	fixture := newServerFixture(t)
	customer := fixture.seedUser(t, 777)
	placed := fixture.seedOrder(t, customer.ID())
	require.NoError(t, placed.Assign(5))

	recorder := fixture.request(http.MethodPost, "/api/v1/orders/1/accept", `{"identity": 999, "message_id": 7}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRegisterUser_Success(t *testing.T) {
	fixture := newServerFixture(t)

	body := `{"tg_id": 777, "username": "dilnoza", "full_name": "Dilnoza K"}`
	recorder := fixture.request(http.MethodPost, "/api/v1/users", body)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response adapter.RegisterUserResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotZero(t, response.ID)
	assert.Equal(t, int64(777), response.TgID)
}

func TestValidatePromo_MissingCode(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodGet, "/api/v1/promos/validate", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetStats_UnparsablePeriod(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodGet, "/api/v1/stats?from=yesterday&to=today", "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSetShopChannel_StoresOverride(t *testing.T) {
	fixture := newServerFixture(t)

	recorder := fixture.request(http.MethodPut, "/api/v1/settings/shop-channel", `{"channel_id": -100123}`)
	require.Equal(t, http.StatusNoContent, recorder.Code)

	assert.Equal(t, "-100123", fixture.settings.values[ports.SettingShopChannelID])
}

func TestSetShopChannel_RequiresChannelID(t *testing.T) {
	fixture := newServerFixture(t)
	recorder := fixture.request(http.MethodPut, "/api/v1/settings/shop-channel", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
