package model

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// OrderStatuses lists every valid status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

// Valid reports whether s is one of OrderStatuses.
func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// OrderDish is a dish line inside an order.
//
// The dish fields are a copy taken when the order was placed; only
// Quantity is validated.
type OrderDish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Order is a customer order for delivery.
type Order struct {
	ID           string      `json:"id"`
	DeliverTo    string      `json:"deliverTo"`
	MobileNumber string      `json:"mobileNumber"`
	Status       OrderStatus `json:"status"`
	Dishes       []OrderDish `json:"dishes"`
}

// Clone returns a copy of o that shares no memory with it.
func (o Order) Clone() Order {
	out := o
	if o.Dishes != nil {
		out.Dishes = make([]OrderDish, len(o.Dishes))
		copy(out.Dishes, o.Dishes)
	}
	return out
}

// OrderInput carries the validated fields used to create or update an order.
type OrderInput struct {
	DeliverTo    string
	MobileNumber string
	Status       OrderStatus
	Dishes       []OrderDish
}

// Apply copies the input fields onto o, leaving the id untouched.
// An empty Status keeps the current one.
func (in OrderInput) Apply(o Order) Order {
	o.DeliverTo = in.DeliverTo
	o.MobileNumber = in.MobileNumber
	if in.Status != "" {
		o.Status = in.Status
	}
	o.Dishes = make([]OrderDish, len(in.Dishes))
	copy(o.Dishes, in.Dishes)
	return o
}
