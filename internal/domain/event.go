package domain

const (
	EventOrderPlaced        = "orderPlaced"
	EventOrderStatusUpdated = "orderStatusUpdated"
)

// Event is one message pushed to live observers.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

type OrderStatusUpdated struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}
