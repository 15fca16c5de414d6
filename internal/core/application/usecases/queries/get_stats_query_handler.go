package queries

import (
	"context"

	"fiesta/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatsQueryHandler aggregates period numbers from the orders and users
// tables.
type GetStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatsQueryHandler creates a handler for period stats queries.
func NewGetStatsQueryHandler(db *gorm.DB) GetStatsQueryHandler {
	return GetStatsQueryHandler{db: db}
}

// Handle executes the aggregation.
func (h GetStatsQueryHandler) Handle(ctx context.Context, query GetStatsQuery) (GetStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	var response GetStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`,
		order.StatusDelivered.String(),
		order.StatusCanceled.String(),
		order.StatusDelivered.String(),
		query.From(), query.To(),
	).Row()
	if err := row.Scan(
		&response.OrdersPlaced,
		&response.OrdersDelivered,
		&response.OrdersCanceled,
		&response.Revenue,
	); err != nil {
		return GetStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE status NOT IN (?, ?)
	`, order.StatusDelivered.String(), order.StatusCanceled.String()).Row()
	if err := row.Scan(&response.OrdersActive); err != nil {
		return GetStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM users WHERE joined_at >= ? AND joined_at < ?
	`, query.From(), query.To()).Row()
	if err := row.Scan(&response.NewUsers); err != nil {
		return GetStatsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT i.name, SUM(i.qty)
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.created_at >= ? AND o.created_at < ?
		GROUP BY i.name
		ORDER BY SUM(i.qty) DESC, i.name
		LIMIT 5
	`, query.From(), query.To()).Rows()
	if err != nil {
		return GetStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat TopItemStat
		if err := rows.Scan(&stat.Name, &stat.Qty); err != nil {
			return GetStatsQueryResponse{}, err
		}
		response.TopItems = append(response.TopItems, stat)
	}
	if err := rows.Err(); err != nil {
		return GetStatsQueryResponse{}, err
	}

	return response, nil
}
