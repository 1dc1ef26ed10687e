package domain

import "time"

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "delivery"
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDineIn   DeliveryType = "dine-in"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// Order is the checkout-time projection handed to the order acceptance
// collaborator. It is not mutated after submission.
type Order struct {
	ID            string        `json:"id" bson:"_id"`
	CustomerName  string        `json:"customer_name" bson:"customer_name"`
	Phone         string        `json:"phone" bson:"phone"`
	Address       string        `json:"address,omitempty" bson:"address,omitempty"`
	DeliveryType  DeliveryType  `json:"delivery_type" bson:"delivery_type"`
	PaymentMethod PaymentMethod `json:"payment_method" bson:"payment_method"`
	Notes         string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Items         string        `json:"items" bson:"items"`
	LineCount     int           `json:"line_count" bson:"line_count"`
	Subtotal      Money         `json:"subtotal" bson:"subtotal"`
	DeliveryFee   Money         `json:"delivery_fee" bson:"delivery_fee"`
	Total         Money         `json:"total" bson:"total"`
	Status        OrderStatus   `json:"status" bson:"status"`
	CreatedAt     time.Time     `json:"created_at" bson:"created_at"`
}

type OrderConfirmation struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
}
