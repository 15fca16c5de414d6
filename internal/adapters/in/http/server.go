// Package http exposes the order lifecycle over a REST surface. Handlers
// translate requests into commands and queries and map domain errors onto
// HTTP status codes; all business rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fiesta/internal/core/application/usecases/commands"
	"fiesta/internal/core/application/usecases/queries"
	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
	"fiesta/internal/core/ports"
	"fiesta/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	changeStatusHandler    commands.ChangeOrderStatusCommandHandler
	assignCourierHandler   commands.AssignCourierCommandHandler
	courierAcceptHandler   commands.CourierAcceptCommandHandler
	courierDeliverHandler  commands.CourierDeliverCommandHandler
	setAvailabilityHandler commands.SetCourierAvailabilityCommandHandler
	registerUserHandler    commands.RegisterUserCommandHandler
	grantRewardHandler     commands.GrantReferralRewardCommandHandler

	validatePromoHandler    queries.ValidatePromoQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getUserOrdersHandler    queries.GetUserOrdersQueryHandler
	getReferralStatsHandler queries.GetReferralStatsQueryHandler
	getStatsHandler         queries.GetStatsQueryHandler

	settings ports.SettingsRepository
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	courierAcceptHandler commands.CourierAcceptCommandHandler,
	courierDeliverHandler commands.CourierDeliverCommandHandler,
	setAvailabilityHandler commands.SetCourierAvailabilityCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	grantRewardHandler commands.GrantReferralRewardCommandHandler,
	validatePromoHandler queries.ValidatePromoQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getReferralStatsHandler queries.GetReferralStatsQueryHandler,
	getStatsHandler queries.GetStatsQueryHandler,
	settings ports.SettingsRepository,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		changeStatusHandler:     changeStatusHandler,
		assignCourierHandler:    assignCourierHandler,
		courierAcceptHandler:    courierAcceptHandler,
		courierDeliverHandler:   courierDeliverHandler,
		setAvailabilityHandler:  setAvailabilityHandler,
		registerUserHandler:     registerUserHandler,
		grantRewardHandler:      grantRewardHandler,
		validatePromoHandler:    validatePromoHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getUserOrdersHandler:    getUserOrdersHandler,
		getReferralStatsHandler: getReferralStatsHandler,
		getStatsHandler:         getStatsHandler,
		settings:                settings,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/users", s.RegisterUser)
	api.GET("/users/:tgID/orders", s.GetUserOrders)
	api.GET("/users/:tgID/referrals", s.GetReferralStats)
	api.POST("/users/:tgID/referral-reward", s.ClaimReferralReward)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/assign", s.AssignCourier)
	api.POST("/orders/:id/accept", s.CourierAccept)
	api.POST("/orders/:id/deliver", s.CourierDeliver)

	api.POST("/couriers/availability", s.SetCourierAvailability)

	api.GET("/promos/validate", s.ValidatePromo)

	api.GET("/stats", s.GetStats)
	api.PUT("/settings/shop-channel", s.SetShopChannel)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps an application error onto an HTTP status code.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, commands.ErrNotEnoughReferrals),
		errors.Is(err, commands.ErrCourierIsNotActive):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	TgID       int64  `json:"tg_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	ReferrerTg int64  `json:"referrer_tg"`
}

// RegisterUserResponse confirms a registration.
type RegisterUserResponse struct {
	ID   int64 `json:"id"`
	TgID int64 `json:"tg_id"`
}

// RegisterUser handles POST /api/v1/users.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRegisterUserCommand(request.TgID, request.Username, request.FullName, request.ReferrerTg)
	if err != nil {
		return badRequest(ctx, err)
	}

	registered, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RegisterUserResponse{
		ID:   registered.ID(),
		TgID: registered.TgID(),
	})
}

// OrderItemRequest is one cart line in an order placement request.
type OrderItemRequest struct {
	FoodID *int64 `json:"food_id,omitempty"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Qty    int    `json:"qty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	UserTgID     int64              `json:"user_tg_id"`
	CustomerName string             `json:"customer_name"`
	Phone        string             `json:"phone"`
	Comment      string             `json:"comment"`
	Total        int64              `json:"total"`
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	PromoCode    string             `json:"promo_code"`
	Items        []OrderItemRequest `json:"items"`
}

// CreateOrderResponse confirms a placed order.
type CreateOrderResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	location, err := kernel.NewLocation(request.Lat, request.Lng)
	if err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.OrderItemData, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemData{
			FoodID: item.FoodID,
			Name:   item.Name,
			Price:  item.Price,
			Qty:    item.Qty,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		request.UserTgID,
		request.CustomerName,
		request.Phone,
		request.Comment,
		request.Total,
		location,
		request.PromoCode,
		items,
	)
	if err != nil {
		return badRequest(ctx, err)
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     placed.ID(),
		Number: placed.Number().String(),
		Status: placed.Status().String(),
	})
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:id/status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ChangeOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignCourierRequest is the body of POST /api/v1/orders/:id/assign.
type AssignCourierRequest struct {
	CourierID int64 `json:"courier_id"`
}

// AssignCourier handles POST /api/v1/orders/:id/assign.
func (s *Server) AssignCourier(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request AssignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(orderID, request.CourierID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CourierActionRequest is the body of the courier accept and deliver
// endpoints. Identity is the chat or channel the action arrived from;
// MessageID is the card the courier pressed the button on, 0 when unknown.
type CourierActionRequest struct {
	Identity  int64 `json:"identity"`
	MessageID int64 `json:"message_id"`
}

// CourierAccept handles POST /api/v1/orders/:id/accept.
func (s *Server) CourierAccept(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request CourierActionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCourierAcceptCommand(orderID, request.Identity, request.MessageID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.courierAcceptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CourierDeliver handles POST /api/v1/orders/:id/deliver.
func (s *Server) CourierDeliver(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return badRequest(ctx, err)
	}

	var request CourierActionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCourierDeliverCommand(orderID, request.Identity, request.MessageID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.courierDeliverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCourierAvailabilityRequest is the body of POST /api/v1/couriers/availability.
type SetCourierAvailabilityRequest struct {
	Identity int64 `json:"identity"`
	Active   bool  `json:"active"`
}

// SetCourierAvailability handles POST /api/v1/couriers/availability.
func (s *Server) SetCourierAvailability(ctx echo.Context) error {
	var request SetCourierAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetCourierAvailabilityCommand(request.Identity, request.Active)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimReferralRewardResponse carries the reward promo issued to a customer.
type ClaimReferralRewardResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}

// ClaimReferralReward handles POST /api/v1/users/:tgID/referral-reward.
func (s *Server) ClaimReferralReward(ctx echo.Context) error {
	tgID, err := pathID(ctx, "tgID")
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewGrantReferralRewardCommand(tgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	reward, err := s.grantRewardHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ClaimReferralRewardResponse{
		Code:            reward.Code(),
		DiscountPercent: reward.DiscountPercent(),
	})
}

// ValidatePromoResponse carries the discount of a redeemable promo.
type ValidatePromoResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}

// ValidatePromo handles GET /api/v1/promos/validate?code=X.
func (s *Server) ValidatePromo(ctx echo.Context) error {
	query, err := queries.NewValidatePromoQuery(ctx.QueryParam("code"))
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.validatePromoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ValidatePromoResponse{
		Code:            result.Code,
		DiscountPercent: result.DiscountPercent,
	})
}

// ActiveOrderResponse is one in-flight order row.
type ActiveOrderResponse struct {
	ID           int64     `json:"id"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Total        int64     `json:"total"`
	CourierID    *int64    `json:"courier_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	result, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]ActiveOrderResponse, 0, len(result))
	for _, row := range result {
		response = append(response, ActiveOrderResponse{
			ID:           row.ID,
			Number:       row.Number,
			Status:       row.Status,
			CustomerName: row.CustomerName,
			Phone:        row.Phone,
			Total:        row.Total,
			CourierID:    row.CourierID,
			CreatedAt:    row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UserOrderResponse is one order history row.
type UserOrderResponse struct {
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	Total     int64     `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUserOrders handles GET /api/v1/users/:tgID/orders.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	tgID, err := pathID(ctx, "tgID")
	if err != nil {
		return badRequest(ctx, err)
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return badRequest(ctx, err)
		}
	}

	query, err := queries.NewGetUserOrdersQuery(tgID, limit)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]UserOrderResponse, 0, len(result))
	for _, row := range result {
		response = append(response, UserOrderResponse{
			Number:    row.Number,
			Status:    row.Status,
			Total:     row.Total,
			CreatedAt: row.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReferralStatsResponse is a customer's referral progress.
type ReferralStatsResponse struct {
	Referrals       int  `json:"referrals"`
	Threshold       int  `json:"threshold"`
	RewardGranted   bool `json:"reward_granted"`
	RewardAvailable bool `json:"reward_available"`
}

// GetReferralStats handles GET /api/v1/users/:tgID/referrals.
func (s *Server) GetReferralStats(ctx echo.Context) error {
	tgID, err := pathID(ctx, "tgID")
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetReferralStatsQuery(tgID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getReferralStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReferralStatsResponse{
		Referrals:       result.Referrals,
		Threshold:       result.Threshold,
		RewardGranted:   result.RewardGranted,
		RewardAvailable: result.RewardAvailable,
	})
}

// TopItemResponse is one row of the most ordered items for the period.
type TopItemResponse struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// StatsResponse carries aggregated period numbers.
type StatsResponse struct {
	OrdersPlaced    int               `json:"orders_placed"`
	OrdersDelivered int               `json:"orders_delivered"`
	OrdersCanceled  int               `json:"orders_canceled"`
	OrdersActive    int               `json:"orders_active"`
	Revenue         int64             `json:"revenue"`
	NewUsers        int               `json:"new_users"`
	TopItems        []TopItemResponse `json:"top_items"`
}

// GetStats handles GET /api/v1/stats?from=X&to=Y with RFC 3339 bounds.
func (s *Server) GetStats(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return badRequest(ctx, err)
	}
	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetStatsQuery(from, to)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	topItems := make([]TopItemResponse, 0, len(result.TopItems))
	for _, item := range result.TopItems {
		topItems = append(topItems, TopItemResponse{Name: item.Name, Qty: item.Qty})
	}

	return ctx.JSON(http.StatusOK, StatsResponse{
		OrdersPlaced:    result.OrdersPlaced,
		OrdersDelivered: result.OrdersDelivered,
		OrdersCanceled:  result.OrdersCanceled,
		OrdersActive:    result.OrdersActive,
		Revenue:         result.Revenue,
		NewUsers:        result.NewUsers,
		TopItems:        topItems,
	})
}

// SetShopChannelRequest is the body of PUT /api/v1/settings/shop-channel.
type SetShopChannelRequest struct {
	ChannelID int64 `json:"channel_id"`
}

// SetShopChannel handles PUT /api/v1/settings/shop-channel. The override
// takes effect for the next admin card; existing cards stay where they are.
func (s *Server) SetShopChannel(ctx echo.Context) error {
	var request SetShopChannelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}
	if request.ChannelID == 0 {
		return badRequest(ctx, errs.NewValueIsRequiredError("channel_id"))
	}

	err := s.settings.Set(
		ctx.Request().Context(),
		ports.SettingShopChannelID,
		strconv.FormatInt(request.ChannelID, 10),
	)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(ctx echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
