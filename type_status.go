package orderflow

import "strings"

// OrderStatus defines the fulfillment state of an order.
type OrderStatus int

const (
	Pending OrderStatus = iota
	InProduction
	Shipped
	Delivered
	Cancelled
)

// orderStatusNames is in declaration order; the first member is the
// fallback for unrecognized stored values.
var orderStatusNames = []string{"Pending", "In Production", "Shipped", "Delivered", "Cancelled"}

func (s OrderStatus) String() string {
	if s < 0 || int(s) >= len(orderStatusNames) {
		return orderStatusNames[0]
	}
	return orderStatusNames[s]
}

// ParseOrderStatus trims and matches case-sensitively against the known
// statuses, falling back to Pending on no match. Corrupted or foreign
// values are silently repaired rather than rejecting the record.
func ParseOrderStatus(raw string) OrderStatus {
	raw = strings.TrimSpace(raw)
	for i, name := range orderStatusNames {
		if raw == name {
			return OrderStatus(i)
		}
	}
	return Pending
}

// OrderStatuses returns the allowed status names in display order.
func OrderStatuses() []string { return append([]string(nil), orderStatusNames...) }

// PaymentStatus defines the payment state of an order.
type PaymentStatus int

const (
	Unpaid PaymentStatus = iota
	PartiallyPaid
	Paid
)

var paymentStatusNames = []string{"Unpaid", "Partially Paid", "Paid"}

func (s PaymentStatus) String() string {
	if s < 0 || int(s) >= len(paymentStatusNames) {
		return paymentStatusNames[0]
	}
	return paymentStatusNames[s]
}

// ParsePaymentStatus trims and matches case-sensitively, falling back to
// Unpaid on no match.
func ParsePaymentStatus(raw string) PaymentStatus {
	raw = strings.TrimSpace(raw)
	for i, name := range paymentStatusNames {
		if raw == name {
			return PaymentStatus(i)
		}
	}
	return Unpaid
}

// PaymentStatuses returns the allowed payment status names in display order.
func PaymentStatuses() []string { return append([]string(nil), paymentStatusNames...) }
