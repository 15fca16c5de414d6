// Package orderrepo persists order aggregates. Orders map to the orders
// table with their items in order_items; the aggregate is always loaded and
// stored as a whole.
package orderrepo

import (
	"time"

	"fiesta/internal/core/domain/model/kernel"
	"fiesta/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order aggregate.
type OrderDTO struct {
	ID               int64       `gorm:"primaryKey;autoIncrement"`
	Number           string      `gorm:"size:16;uniqueIndex"`
	UserID           int64       `gorm:"index"`
	CustomerName     string      `gorm:"size:255"`
	Phone            string      `gorm:"size:32"`
	Comment          string      `gorm:"size:1024"`
	Total            int64       ``
	Status           string      `gorm:"size:32;index"`
	Location         LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	CourierID        *int64      `gorm:"index"`
	ChannelMessageID *int64      ``
	PromoCode        string      `gorm:"size:32"`
	CreatedAt        time.Time   `gorm:"index"`
	UpdatedAt        time.Time   ``
	DeliveredAt      *time.Time  ``

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName maps the DTO to the orders table.
func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO stores the delivery coordinates embedded in the orders table.
type LocationDTO struct {
	Lat float64
	Lng float64
}

// OrderItemDTO is one persisted cart line.
type OrderItemDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"index"`
	FoodID    *int64 ``
	Name      string `gorm:"size:255"`
	Price     int64  ``
	Qty       int    ``
	LineTotal int64  ``
}

// TableName maps the DTO to the order_items table.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID(),
			FoodID:    item.FoodID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Qty:       item.Qty(),
			LineTotal: item.LineTotal(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID(),
		Number:           aggregate.Number().String(),
		UserID:           aggregate.UserID(),
		CustomerName:     aggregate.CustomerName(),
		Phone:            aggregate.Phone(),
		Comment:          aggregate.Comment(),
		Total:            aggregate.Total(),
		Status:           aggregate.Status().String(),
		Location:         LocationDTO{Lat: aggregate.Location().Lat(), Lng: aggregate.Location().Lng()},
		CourierID:        aggregate.CourierID(),
		ChannelMessageID: aggregate.ChannelMessageID(),
		PromoCode:        aggregate.PromoCode(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.RestoreItem(item.FoodID, item.Name, item.Price, item.Qty, item.LineTotal))
	}

	return order.RestoreOrder(
		dto.ID,
		number,
		dto.UserID,
		dto.CustomerName,
		dto.Phone,
		dto.Comment,
		dto.Total,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.DeliveredAt,
		location,
		dto.CourierID,
		dto.ChannelMessageID,
		dto.PromoCode,
		items,
	)
}
