package domain

import "time"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending:    {StatusProcessing: true, StatusCancelled: true},
	StatusProcessing: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether an order may move from one status to
// another. COMPLETED and CANCELLED are terminal.
func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

// Order is a checkout record. ProductName is a pre-formatted summary of
// everything ordered and, together with TotalPrice, is a frozen snapshot
// taken at checkout time. ProductID and Quantity are the simplified
// single-item fields kept for compatibility with older records; Quantity
// carries the aggregate item count when the order was built from a cart.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customer_name"`
	Phone        string      `json:"phone"`
	ProductName  string      `json:"product_name"`
	ProductID    string      `json:"product_id"`
	Items        []CartItem  `json:"items,omitempty"`
	TotalPrice   int64       `json:"total_price,omitempty"`
	Quantity     int         `json:"quantity"`
	Address      string      `json:"address"`
	DeliveryDate string      `json:"delivery_date"`
	DeliveryTime string      `json:"delivery_time"`
	Notes        string      `json:"notes"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}
