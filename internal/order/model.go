package order

type PaymentMode string

const (
	PaymentCash PaymentMode = "Cash"
	PaymentCard PaymentMode = "Card"
)

// PaymentModes returns the accepted payment modes in display order.
func PaymentModes() []PaymentMode {
	return []PaymentMode{PaymentCash, PaymentCard}
}

// PickupTimes are the selectable pickup windows in minutes.
var PickupTimes = []string{"5", "10", "15", "20", "25", "30"}

const DefaultPickupTime = "15"

// Details is the checkout form: name and phone take any value, including
// empty strings. Drafts are edited in the session and only committed here
// at placement.
type Details struct {
	Name        string      `json:"name"`
	PhoneNumber string      `json:"phone_number"`
	PaymentMode PaymentMode `json:"payment_mode"`
	PickupTime  string      `json:"pickup_time"`
}

func DefaultDetails() Details {
	return Details{
		PaymentMode: PaymentCash,
		PickupTime:  DefaultPickupTime,
	}
}

type Status string

const (
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready for Pickup"
	StatusCompleted Status = "Completed"
)

// Placement is the single synthesized order record. A new placement
// replaces the previous one unconditionally; there is no history.
type Placement struct {
	OrderID       string `json:"order_id"`
	Status        Status `json:"status"`
	EstimatedTime int    `json:"estimated_time"`
}
