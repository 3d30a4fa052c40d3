// Package checkout accumulates the order form state across the two
// checkout steps and validates it.
package checkout

import (
	"sync"

	"go.uber.org/zap"

	"storefront/pkg/eventbus"
)

// Field-specific topics published after an accepted write. The coordinator
// reacts to each field separately, so there is no generic "draft changed"
// event.
const (
	TopicAddressChanged eventbus.Topic = "order.address_changed"
	TopicPaymentChanged eventbus.Topic = "order.payment_changed"
	TopicEmailChanged   eventbus.Topic = "order.email_changed"
	TopicPhoneChanged   eventbus.Topic = "order.phone_changed"
)

// PaymentMethod is how the order will be paid. The empty value means the
// user has not chosen yet.
type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// Field names a draft field for SetField.
type Field string

const (
	FieldAddress Field = "address"
	FieldPayment Field = "payment"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
)

// Validation is the result of checking one field group. It is recomputed
// on demand and never stored.
type Validation struct {
	Valid   bool
	Message string
}

// OrderData is the wire payload of an order submission. Total and Items
// are zero when taken from the draft; the coordinator fills them from the
// basket at submit time.
type OrderData struct {
	Payment PaymentMethod `json:"payment"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Address string        `json:"address"`
	Total   int64         `json:"total"`
	Items   []string      `json:"items"`
}

// Draft is the in-progress checkout form. Fields mutate one at a time as
// the user types or clicks; Clear resets all of them atomically.
type Draft struct {
	mu      sync.Mutex
	address string
	email   string
	phone   string
	payment PaymentMethod

	bus *eventbus.Bus
	log *zap.Logger
}

// New returns an empty draft publishing on the given bus.
func New(bus *eventbus.Bus, log *zap.Logger) *Draft {
	return &Draft{bus: bus, log: log}
}

// SetField writes one field and publishes its field-specific topic. The
// payment field accepts only card, cash or empty; an out-of-domain value
// or an unknown field name is rejected with a warning, no mutation and no
// event.
func (d *Draft) SetField(field Field, value string) {
	var topic eventbus.Topic

	d.mu.Lock()
	switch field {
	case FieldAddress:
		d.address = value
		topic = TopicAddressChanged
	case FieldEmail:
		d.email = value
		topic = TopicEmailChanged
	case FieldPhone:
		d.phone = value
		topic = TopicPhoneChanged
	case FieldPayment:
		switch PaymentMethod(value) {
		case PaymentCard, PaymentCash, PaymentNone:
			d.payment = PaymentMethod(value)
			topic = TopicPaymentChanged
		default:
			d.mu.Unlock()
			d.log.Warn("invalid payment method", zap.String("value", value))
			return
		}
	default:
		d.mu.Unlock()
		d.log.Warn("unknown order field", zap.String("field", string(field)))
		return
	}
	d.mu.Unlock()

	d.bus.Publish(topic, nil)
}

// Clear resets all four fields. Unlike the setters it publishes nothing.
func (d *Draft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.address = ""
	d.email = ""
	d.phone = ""
	d.payment = PaymentNone
}

func (d *Draft) Address() string { d.mu.Lock(); defer d.mu.Unlock(); return d.address }
func (d *Draft) Email() string   { d.mu.Lock(); defer d.mu.Unlock(); return d.email }
func (d *Draft) Phone() string   { d.mu.Lock(); defer d.mu.Unlock(); return d.phone }

// Payment returns the chosen payment method, PaymentNone when unset.
func (d *Draft) Payment() PaymentMethod { d.mu.Lock(); defer d.mu.Unlock(); return d.payment }

// Validation is presence-only by contract: an email without an @ passes.

// ValidateAddress checks that a delivery address was entered.
func (d *Draft) ValidateAddress() Validation {
	if d.Address() == "" {
		return Validation{Message: "Enter the delivery address."}
	}
	return Validation{Valid: true}
}

// ValidatePayment checks that a payment method was chosen.
func (d *Draft) ValidatePayment() Validation {
	if d.Payment() == PaymentNone {
		return Validation{Message: "Choose a payment method."}
	}
	return Validation{Valid: true}
}

// ValidateEmail checks that an email was entered.
func (d *Draft) ValidateEmail() Validation {
	if d.Email() == "" {
		return Validation{Message: "Enter your email."}
	}
	return Validation{Valid: true}
}

// ValidatePhone checks that a phone number was entered.
func (d *Draft) ValidatePhone() Validation {
	if d.Phone() == "" {
		return Validation{Message: "Enter your phone number."}
	}
	return Validation{Valid: true}
}

// OrderData snapshots the four fields. Total stays 0 and Items stays empty
// here; the coordinator overwrites both from the live basket before
// submitting.
func (d *Draft) OrderData() OrderData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return OrderData{
		Payment: d.payment,
		Email:   d.email,
		Phone:   d.phone,
		Address: d.address,
		Items:   []string{},
	}
}
