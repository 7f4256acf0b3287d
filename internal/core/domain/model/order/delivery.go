package order

import (
	"fmt"
	"strings"

	"selfstorage/internal/pkg/errs"
)

// DeliveryMethod is how the goods get to the warehouse.
type DeliveryMethod int

const (
	UnknownDelivery DeliveryMethod = iota
	// SelfDelivery means the customer brings the goods in.
	SelfDelivery
	// CourierDelivery means a courier collects the goods at the pickup address.
	CourierDelivery
)

var deliveryCodes = map[DeliveryMethod]string{
	SelfDelivery:    "self",
	CourierDelivery: "courier",
}

func ParseDeliveryMethod(code string) (DeliveryMethod, error) {
	normalized := strings.ToLower(strings.TrimSpace(code))
	for method, c := range deliveryCodes {
		if c == normalized {
			return method, nil
		}
	}
	return UnknownDelivery, errs.NewValueIsInvalidErrorWithCause(
		"delivery method",
		fmt.Errorf("%q is not one of self, courier", code),
	)
}

func (m DeliveryMethod) String() string {
	if code, ok := deliveryCodes[m]; ok {
		return code
	}
	return "unknown"
}

// Delivery is a value object describing how the goods are brought in.
type Delivery struct {
	method        DeliveryMethod
	pickupAddress string
}

// NewDelivery validates the pair: courier delivery needs a pickup address,
// self delivery ignores it.
func NewDelivery(method DeliveryMethod, pickupAddress string) (Delivery, error) {
	pickupAddress = strings.TrimSpace(pickupAddress)

	switch method {
	case SelfDelivery:
		return Delivery{method: SelfDelivery}, nil
	case CourierDelivery:
		if pickupAddress == "" {
			return Delivery{}, errs.NewValueIsRequiredError("pickup address for courier delivery")
		}
		return Delivery{method: CourierDelivery, pickupAddress: pickupAddress}, nil
	default:
		return Delivery{}, errs.NewValueIsInvalidErrorWithCause(
			"delivery method",
			fmt.Errorf("%d is not a valid delivery method", method),
		)
	}
}

func NewSelfDelivery() Delivery {
	return Delivery{method: SelfDelivery}
}

func (d Delivery) Validate() error {
	_, err := NewDelivery(d.method, d.pickupAddress)
	return err
}

func (d Delivery) Method() DeliveryMethod {
	return d.method
}

func (d Delivery) PickupAddress() string {
	return d.pickupAddress
}
