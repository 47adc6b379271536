package domain

import "strings"

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPacked         OrderStatus = "packed"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusCompleted      OrderStatus = "completed"
	StatusCancelled      OrderStatus = "cancelled"
)

const DefaultPaymentMode = "Cash on Delivery"

// OrderStatuses lists every accepted status, in lifecycle order.
var OrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
	StatusPacked,
	StatusOutForDelivery,
	StatusCompleted,
	StatusCancelled,
}

// Valid reports enum membership only. Any status may follow any other.
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func StatusList() string {
	names := make([]string, len(OrderStatuses))
	for i, s := range OrderStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// OrderItem is a point-in-time copy of the product as it was ordered.
type OrderItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	Unit      string  `json:"unit" bson:"unit"`
}

type Order struct {
	ID           string      `json:"id" bson:"id" gorm:"primaryKey;size:36"`
	CustomerName string      `json:"customer_name" bson:"customer_name" gorm:"not null"`
	Phone        string      `json:"phone" bson:"phone" gorm:"not null"`
	Address      string      `json:"address" bson:"address" gorm:"not null"`
	Pincode      string      `json:"pincode" bson:"pincode" gorm:"not null"`
	Items        []OrderItem `json:"items" bson:"items" gorm:"serializer:json;type:text"`
	Total        float64     `json:"total" bson:"total" gorm:"not null"`
	Status       OrderStatus `json:"status" bson:"status" gorm:"size:32;index;default:'pending'"`
	PaymentMode  string      `json:"payment_mode" bson:"payment_mode"`
	CreatedAt    string      `json:"created_at" bson:"created_at" gorm:"size:32;index"`
}

// OrderFilter narrows an order listing. Empty fields do not filter.
type OrderFilter struct {
	// Date matches orders whose created_at starts with it, e.g. "2024-05-01".
	Date   string
	Status OrderStatus
}
