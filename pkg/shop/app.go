// Package shop wires the stores, the backend client and the views
// together. The coordinator is not a service with public operations but a
// flat table of event reactions; all cross-store effects go through the
// bus, never through direct calls between stores.
package shop

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"storefront/pkg/api"
	"storefront/pkg/basket"
	"storefront/pkg/catalog"
	"storefront/pkg/checkout"
	"storefront/pkg/eventbus"
)

const errEmptyBasket = "An order cannot be placed with an empty basket"

// Backend is the slice of the API client the coordinator needs.
type Backend interface {
	FetchCatalog(ctx context.Context) ([]catalog.Item, error)
	SubmitOrder(ctx context.Context, data checkout.OrderData) (api.OrderResult, error)
}

// App owns the storefront control flow.
type App struct {
	bus      *eventbus.Bus
	showcase *catalog.Showcase
	basket   *basket.Basket
	draft    *checkout.Draft
	client   Backend
	views    Views
	log      *zap.Logger
}

// New builds the coordinator and registers its reaction table on the bus.
func New(bus *eventbus.Bus, showcase *catalog.Showcase, bask *basket.Basket,
	draft *checkout.Draft, client Backend, views Views, log *zap.Logger) *App {

	a := &App{
		bus:      bus,
		showcase: showcase,
		basket:   bask,
		draft:    draft,
		client:   client,
		views:    views,
		log:      log,
	}
	for _, b := range a.bindings() {
		bus.Subscribe(b.topic, b.react)
	}
	return a
}

type binding struct {
	topic eventbus.Topic
	react eventbus.Handler
}

// bindings is the full reaction table. Reactions must keep the event graph
// acyclic: a reaction to a store change never publishes another store
// change (see the graph test).
func (a *App) bindings() []binding {
	return []binding{
		{catalog.TopicChanged, func(any) { a.renderPage() }},
		{basket.TopicChanged, func(any) { a.onBasketChanged() }},

		{checkout.TopicAddressChanged, func(any) { a.renderOrderForm() }},
		{checkout.TopicPaymentChanged, func(any) { a.renderOrderForm() }},
		{checkout.TopicEmailChanged, func(any) { a.renderContactsForm() }},
		{checkout.TopicPhoneChanged, func(any) { a.renderContactsForm() }},

		{TopicCardSelected, a.onCardSelected},
		{TopicAddToBasket, a.onAddToBasket},
		{TopicBasketOpened, func(any) { a.onBasketOpened() }},
		{TopicBasketItemRemoved, a.onBasketItemRemoved},
		{TopicCheckoutStarted, func(any) { a.renderOrderForm() }},
		{TopicFieldChanged, a.onFieldChanged},
		{TopicOrderSubmitted, func(any) { a.onOrderSubmitted() }},
		{TopicContactsSubmitted, func(any) { a.onContactsSubmitted() }},
		{TopicSuccessClosed, func(any) { a.onSuccessClosed() }},
		{TopicModalClosed, func(any) { a.views.Modal.Close() }},
	}
}

// LoadCatalog fetches the product list and fills the showcase. On failure
// the embedded fixture is used instead, so the shop never opens empty.
func (a *App) LoadCatalog(ctx context.Context) {
	items, err := a.client.FetchCatalog(ctx)
	if err != nil {
		a.log.Error("catalog fetch failed", zap.Error(err))
		a.views.Notifier.Alert("Could not load the products!\nThe server may be down")
		a.showcase.SetItems(api.Fixture())
		return
	}
	a.showcase.SetItems(items)
}

func (a *App) renderPage() {
	a.views.Page.Render(PageState{
		BasketCount: a.basket.Count(),
		Items:       a.showcase.Items(),
	})
}

func (a *App) onBasketChanged() {
	a.views.Basket.Render(BasketState{
		Items: a.basket.Items(),
		Total: a.basket.Total(),
	})
	a.views.Page.SetBasketCount(a.basket.Count())
}

func (a *App) onCardSelected(payload any) {
	ref, ok := payload.(ItemRef)
	if !ok {
		a.log.Warn("card selection without an item reference")
		return
	}
	item, err := a.showcase.Item(ref.ID)
	if err != nil {
		// A stale id from an already closed preview; recoverable.
		a.log.Warn("selected product not in showcase", zap.String("id", ref.ID))
		return
	}
	inBasket := a.basket.Contains(item.ID)
	a.views.Preview.Render(PreviewState{
		Item:     item,
		InBasket: inBasket,
		CanAdd:   !inBasket && item.Price != nil,
	})
	a.views.Modal.Open()
}

func (a *App) onAddToBasket(payload any) {
	ref, ok := payload.(ItemRef)
	if !ok {
		a.log.Warn("add-to-basket without an item reference")
		return
	}
	item, err := a.showcase.Item(ref.ID)
	if err != nil {
		a.log.Warn("added product not in showcase", zap.String("id", ref.ID))
		return
	}
	a.basket.Add(item)
	a.views.Modal.Close()
}

func (a *App) onBasketOpened() {
	a.views.Basket.Render(BasketState{
		Items: a.basket.Items(),
		Total: a.basket.Total(),
	})
	a.views.Modal.Open()
}

func (a *App) onBasketItemRemoved(payload any) {
	ref, ok := payload.(ItemRef)
	if !ok {
		a.log.Warn("basket removal without an item reference")
		return
	}
	a.basket.Remove(ref.ID)
}

func (a *App) onFieldChanged(payload any) {
	change, ok := payload.(FieldChange)
	if !ok {
		a.log.Warn("field change without field data")
		return
	}
	a.draft.SetField(change.Field, change.Value)
}

// onOrderSubmitted advances to the contacts step when the first step is
// complete, otherwise it re-renders the order form with the errors.
func (a *App) onOrderSubmitted() {
	if valid, _ := a.validateOrderStep(); !valid {
		a.renderOrderForm()
		return
	}
	a.renderContactsForm()
}

// onContactsSubmitted sends the order. Total and item ids come from the
// live basket, not the draft. On success the basket empties and the
// confirmation shows the server's total; on failure the basket stays and
// the confirmation shows the locally computed total.
func (a *App) onContactsSubmitted() {
	if a.basket.Count() == 0 {
		a.views.ContactsForm.Render(ContactsFormState{
			Errors: errEmptyBasket,
			Email:  a.draft.Email(),
			Phone:  a.draft.Phone(),
		})
		return
	}
	if valid, _ := a.validateContactsStep(); !valid {
		a.renderContactsForm()
		return
	}

	data := a.draft.OrderData()
	data.Total = a.basket.Total()
	data.Items = a.basket.IDs()

	result, err := a.client.SubmitOrder(context.Background(), data)
	if err != nil {
		a.log.Error("order submission failed", zap.Error(err))
		a.views.Success.Render(SuccessState{Total: a.basket.Total()})
		a.views.Modal.Open()
		return
	}

	a.basket.Clear()
	a.views.Page.SetBasketCount(0)
	a.views.Success.Render(SuccessState{Total: result.Total})
	a.views.Modal.Open()
}

func (a *App) onSuccessClosed() {
	a.basket.Clear()
	a.views.Modal.Close()
}

// validateOrderStep re-derives the first step's validity from the draft;
// the result is never cached.
func (a *App) validateOrderStep() (bool, string) {
	address := a.draft.ValidateAddress()
	payment := a.draft.ValidatePayment()
	return address.Valid && payment.Valid, joinMessages(address.Message, payment.Message)
}

// validateContactsStep re-derives the second step's validity.
func (a *App) validateContactsStep() (bool, string) {
	email := a.draft.ValidateEmail()
	phone := a.draft.ValidatePhone()
	return email.Valid && phone.Valid, joinMessages(email.Message, phone.Message)
}

func joinMessages(messages ...string) string {
	var parts []string
	for _, m := range messages {
		if m != "" {
			parts = append(parts, m)
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) renderOrderForm() {
	valid, errs := a.validateOrderStep()
	a.views.OrderForm.Render(OrderFormState{
		Valid:   valid,
		Errors:  errs,
		Address: a.draft.Address(),
		Payment: a.draft.Payment(),
	})
}

func (a *App) renderContactsForm() {
	valid, errs := a.validateContactsStep()
	a.views.ContactsForm.Render(ContactsFormState{
		Valid:  valid,
		Errors: errs,
		Email:  a.draft.Email(),
		Phone:  a.draft.Phone(),
	})
}
