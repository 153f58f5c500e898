// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Handles the conversion between the order aggregate and
// its relational representation, including the JSON-encoded pizza line items.
package orderrepo

import (
	"encoding/json"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer, establishment, and status for the lifecycle and
// assignment queries.
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID  `gorm:"type:uuid;index"`
	EstablishmentID uuid.UUID  `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryAddress string
	Pizzas          []byte `gorm:"type:jsonb"`
	Total           float64
	Paid            bool
	CreatedAt       time.Time `gorm:"index"`
	Status          int       `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// pizzaDTO is the JSON shape of one pizza line item inside the pizzas column.
type pizzaDTO struct {
	Size      int         `json:"size"`
	FlavorIDs []uuid.UUID `json:"flavor_ids"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	pizzaDTOs := make([]pizzaDTO, 0, len(aggregate.Pizzas()))
	for _, pizza := range aggregate.Pizzas() {
		flavorIDs := make([]uuid.UUID, 0, len(pizza.FlavorIDs()))
		for _, flavorID := range pizza.FlavorIDs() {
			flavorIDs = append(flavorIDs, flavorID.Bytes())
		}
		pizzaDTOs = append(pizzaDTOs, pizzaDTO{
			Size:      int(pizza.Size()),
			FlavorIDs: flavorIDs,
		})
	}

	pizzas, err := json.Marshal(pizzaDTOs)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		EstablishmentID: aggregate.EstablishmentID().Bytes(),
		CourierID:       courierID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		Pizzas:          pizzas,
		Total:           aggregate.Total(),
		Paid:            aggregate.IsPaid(),
		CreatedAt:       aggregate.CreatedAt(),
		Status:          int(aggregate.Status()),
	}, nil
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, which revalidates status and courier consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	establishmentID, err := kernel.UUIDFromBytes(dto.EstablishmentID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	var pizzaDTOs []pizzaDTO
	if err = json.Unmarshal(dto.Pizzas, &pizzaDTOs); err != nil {
		return nil, err
	}

	pizzas := make([]order.Pizza, 0, len(pizzaDTOs))
	for _, p := range pizzaDTOs {
		flavorIDs := make([]kernel.UUID, 0, len(p.FlavorIDs))
		for _, raw := range p.FlavorIDs {
			flavorID, flavorErr := kernel.UUIDFromBytes(raw[:])
			if flavorErr != nil {
				return nil, flavorErr
			}
			flavorIDs = append(flavorIDs, flavorID)
		}

		pizza, pizzaErr := order.NewPizza(order.Size(p.Size), flavorIDs)
		if pizzaErr != nil {
			return nil, pizzaErr
		}
		pizzas = append(pizzas, pizza)
	}

	return order.RestoreOrder(
		id, customerID, establishmentID, courierID,
		dto.DeliveryAddress, pizzas, dto.Total, dto.Paid,
		dto.CreatedAt, order.Status(dto.Status),
	)
}
