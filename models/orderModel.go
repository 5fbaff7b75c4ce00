package models

import "time"

// Preparation statuses written by the kitchen and display screens. The
// status field itself is open-ended: any non-empty string is accepted so a
// stall can invent stages mid-event. These are the stages the standard
// screens use.
const (
	StatusCooking = "cooking"
	StatusReady   = "ready"
	StatusServed  = "served"
)

// Payment statuses. The only transition is unpaid -> paid.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// LineItem is one entry of a customer's cart. Price and Quantity are
// pointers so that an entry missing either can be told apart from a zero:
// such entries are kept on the order but contribute nothing to the total.
type LineItem struct {
	Name     string `json:"name" bson:"name"`
	Price    *int   `json:"price,omitempty" bson:"price,omitempty"`
	Quantity *int   `json:"quantity,omitempty" bson:"quantity,omitempty"`
	ItemID   string `json:"item_id,omitempty" bson:"item_id,omitempty"`
	IsSet    bool   `json:"is_set,omitempty" bson:"is_set,omitempty"`
}

// Order is one customer transaction. Items and TotalPrice are fixed at
// creation; Status and PaymentStatus are the two independently mutable
// axes. TicketNumber is the 4-digit number printed for the customer and is
// not guaranteed unique.
type Order struct {
	TicketNumber  string     `json:"ticket_number" bson:"ticket_number"`
	Items         []LineItem `json:"items" bson:"items"`
	TotalPrice    int        `json:"total_price" bson:"total_price"`
	Status        string     `json:"status" bson:"status"`
	PaymentStatus string     `json:"payment_status" bson:"payment_status"`
	Created_at    time.Time  `json:"created_at" bson:"created_at"`
}
