package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetUserOrdersQueryHandler reads a customer's order history by joining on
// the users table, since the surface only knows the messenger id.
type GetUserOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUserOrdersQueryHandler creates a handler for customer history queries.
func NewGetUserOrdersQueryHandler(db *gorm.DB) GetUserOrdersQueryHandler {
	return GetUserOrdersQueryHandler{db: db}
}

// Handle executes the query. An unknown customer yields an empty history,
// not an error.
func (h GetUserOrdersQueryHandler) Handle(ctx context.Context, query GetUserOrdersQuery) ([]GetUserOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUserOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.status,
			o.total,
			o.created_at
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE u.tg_id = ?
		ORDER BY o.created_at DESC
		LIMIT ?
	`, query.TgID(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetUserOrdersQueryResponse
		if err = rows.Scan(&row.Number, &row.Status, &row.Total, &row.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
