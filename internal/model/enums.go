package model

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleDelivery Role = "delivery"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleDelivery:
		return true
	}
	return false
}

type AddressType string

const (
	AddressHome  AddressType = "home"
	AddressWork  AddressType = "work"
	AddressOther AddressType = "other"
)

func (t AddressType) Valid() bool {
	switch t {
	case AddressHome, AddressWork, AddressOther:
		return true
	}
	return false
}

type PackDuration string

const (
	DurationWeekly   PackDuration = "weekly"
	DurationBiWeekly PackDuration = "bi-weekly"
	DurationMonthly  PackDuration = "monthly"
)

func (d PackDuration) Valid() bool {
	switch d {
	case DurationWeekly, DurationBiWeekly, DurationMonthly:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCOD        PaymentMethod = "cod"
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "net_banking"
	PaymentWallet     PaymentMethod = "wallet"
	PaymentRazorpay   PaymentMethod = "razorpay"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCOD, PaymentCard, PaymentUPI, PaymentNetBanking, PaymentWallet, PaymentRazorpay:
		return true
	}
	return false
}

// SettledOnDelivery reports whether the payment is considered complete at
// order time because money changes hands at the door.
func (m PaymentMethod) SettledOnDelivery() bool {
	return m == PaymentCOD
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderConfirmed, OrderCancelled},
	OrderProcessing: {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered, OrderCancelled},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the order lifecycle allows moving to next.
// Delivered and cancelled are terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}
