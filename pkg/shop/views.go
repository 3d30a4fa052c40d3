package shop

import (
	"storefront/pkg/catalog"
	"storefront/pkg/checkout"
	"storefront/pkg/eventbus"
)

// Topics published by the view layer. They are commands: the views report
// what the user did, and the coordinator decides what changes.
const (
	// TopicCardSelected carries an ItemRef for the clicked catalog card.
	TopicCardSelected eventbus.Topic = "ui.card_selected"
	// TopicAddToBasket carries an ItemRef from the preview's buy button.
	TopicAddToBasket eventbus.Topic = "ui.add_to_basket"
	// TopicBasketOpened fires when the basket icon is clicked.
	TopicBasketOpened eventbus.Topic = "ui.basket_opened"
	// TopicBasketItemRemoved carries an ItemRef from a basket row.
	TopicBasketItemRemoved eventbus.Topic = "ui.basket_item_removed"
	// TopicCheckoutStarted fires on the basket's place-order button.
	TopicCheckoutStarted eventbus.Topic = "ui.checkout_started"
	// TopicFieldChanged carries a FieldChange from either form.
	TopicFieldChanged eventbus.Topic = "ui.field_changed"
	// TopicOrderSubmitted fires on the order form's next button.
	TopicOrderSubmitted eventbus.Topic = "ui.order_submitted"
	// TopicContactsSubmitted fires on the contact form's pay button.
	TopicContactsSubmitted eventbus.Topic = "ui.contacts_submitted"
	// TopicSuccessClosed fires on the success view's continue button.
	TopicSuccessClosed eventbus.Topic = "ui.success_closed"
	// TopicModalClosed fires on Escape or an overlay click.
	TopicModalClosed eventbus.Topic = "ui.modal_closed"
)

// ItemRef identifies the product a view event refers to.
type ItemRef struct {
	ID string
}

// FieldChange reports an edit in one of the checkout forms.
type FieldChange struct {
	Field checkout.Field
	Value string
}

// PageState is what the main page renders from.
type PageState struct {
	BasketCount int
	Items       []catalog.Item
}

// PreviewState is what the product preview renders from. CanAdd is false
// when the item is already in the basket or not for sale.
type PreviewState struct {
	Item     catalog.Item
	InBasket bool
	CanAdd   bool
}

// BasketState is what the basket view renders from.
type BasketState struct {
	Items []catalog.Item
	Total int64
}

// OrderFormState is what the first checkout step renders from.
type OrderFormState struct {
	Valid   bool
	Errors  string
	Address string
	Payment checkout.PaymentMethod
}

// ContactsFormState is what the second checkout step renders from.
type ContactsFormState struct {
	Valid  bool
	Errors string
	Email  string
	Phone  string
}

// SuccessState is what the confirmation view renders from.
type SuccessState struct {
	Total int64
}

// Render collaborators. They have no error channel: a view that cannot
// draw logs a warning and carries on.

type PageView interface {
	Render(state PageState)
	SetBasketCount(count int)
}

type PreviewView interface {
	Render(state PreviewState)
}

type BasketView interface {
	Render(state BasketState)
}

type OrderFormView interface {
	Render(state OrderFormState)
}

type ContactsFormView interface {
	Render(state ContactsFormState)
}

type SuccessView interface {
	Render(state SuccessState)
}

// Modal is the dialog chrome every checkout step lives in.
type Modal interface {
	Open()
	Close()
}

// Notifier surfaces collaborator failures outside any form.
type Notifier interface {
	Alert(message string)
}

// Views bundles every render collaborator the coordinator drives.
type Views struct {
	Page         PageView
	Preview      PreviewView
	Basket       BasketView
	OrderForm    OrderFormView
	ContactsForm ContactsFormView
	Success      SuccessView
	Modal        Modal
	Notifier     Notifier
}
