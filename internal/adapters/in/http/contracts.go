package http

// Error is the body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PizzaRequest describes one pizza of a new order. A pizza with two flavor
// ids is a half-and-half.
type PizzaRequest struct {
	Size      string   `json:"size"`
	FlavorIDs []string `json:"flavor_ids"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. An empty delivery
// address falls back to the customer's registered address.
type CreateOrderRequest struct {
	CustomerID      string         `json:"customer_id"`
	EstablishmentID string         `json:"establishment_id"`
	AccessCode      string         `json:"access_code"`
	DeliveryAddress string         `json:"delivery_address"`
	Pizzas          []PizzaRequest `json:"pizzas"`
}

// CreateOrderResponse returns the id of the order just placed.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ConfirmPaymentRequest is the body of POST /api/v1/orders/{order_id}/payment.
type ConfirmPaymentRequest struct {
	CustomerID    string `json:"customer_id"`
	AccessCode    string `json:"access_code"`
	PaymentMethod string `json:"payment_method"`
}

// CustomerActionRequest authenticates a customer for operations that need
// nothing beyond the ids in the path.
type CustomerActionRequest struct {
	CustomerID string `json:"customer_id"`
	AccessCode string `json:"access_code"`
}

// EstablishmentActionRequest authenticates an establishment for operations
// that need nothing beyond the ids in the path.
type EstablishmentActionRequest struct {
	EstablishmentID string `json:"establishment_id"`
	AccessCode      string `json:"access_code"`
}

// CustomerOrder is one entry of the customer orders listing.
type CustomerOrder struct {
	ID              string  `json:"id"`
	EstablishmentID string  `json:"establishment_id"`
	DeliveryAddress string  `json:"delivery_address"`
	Total           float64 `json:"total"`
	Paid            bool    `json:"paid"`
	Status          string  `json:"status"`
}

// RequestAffiliationRequest is the body of POST /api/v1/affiliations.
type RequestAffiliationRequest struct {
	CourierID       string `json:"courier_id"`
	EstablishmentID string `json:"establishment_id"`
	AccessCode      string `json:"access_code"`
}

// RequestAffiliationResponse returns the id of the affiliation request.
type RequestAffiliationResponse struct {
	ID string `json:"id"`
}

// UpdateAffiliationStatusRequest carries the establishment's decision on a
// pending affiliation request.
type UpdateAffiliationStatusRequest struct {
	EstablishmentID string `json:"establishment_id"`
	AccessCode      string `json:"access_code"`
	Status          string `json:"status"`
}

// UpdateAvailabilityRequest carries the courier's new duty state.
type UpdateAvailabilityRequest struct {
	CourierID    string `json:"courier_id"`
	AccessCode   string `json:"access_code"`
	Availability string `json:"availability"`
}

// UpdateFlavorAvailabilityRequest toggles a flavor on or off the menu.
type UpdateFlavorAvailabilityRequest struct {
	EstablishmentID string `json:"establishment_id"`
	AccessCode      string `json:"access_code"`
	Available       bool   `json:"available"`
}
