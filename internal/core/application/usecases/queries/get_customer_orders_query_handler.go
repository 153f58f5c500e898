package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's orders straight from the
// database, sorted by lifecycle status and then by age.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// listings.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back grouped by status in lifecycle
// order, Received first and Delivered last, oldest first within a group.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			establishment_id,
			delivery_address,
			total,
			paid,
			status
		FROM orders
		WHERE customer_id = ?
		ORDER BY status, created_at, id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id, establishmentID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&establishmentID,
			&resp.DeliveryAddress,
			&resp.Total,
			&resp.Paid,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		estID, estErr := kernel.UUIDFromBytes(establishmentID[:])
		if estErr != nil {
			return nil, estErr
		}
		resp.EstablishmentID = estID

		resp.Status = order.Status(status).String()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
