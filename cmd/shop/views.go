package main

import (
	"fmt"
	"io"

	"storefront/pkg/shop"
)

// terminal implements every render collaborator on a line-oriented
// terminal. Each Render call redraws its whole section; there is no
// partial drawing to get out of sync.
type terminal struct {
	out io.Writer
}

func formatPrice(p *int64) string {
	if p == nil {
		return "not for sale"
	}
	return fmt.Sprintf("%d syn", *p)
}

func (t *terminal) Render(state shop.PageState) {
	fmt.Fprintf(t.out, "\n=== Catalog (basket: %d) ===\n", state.BasketCount)
	for i, item := range state.Items {
		fmt.Fprintf(t.out, "%2d. %-28s %-12s %s\n", i+1, item.Title, item.Category, formatPrice(item.Price))
	}
}

func (t *terminal) SetBasketCount(count int) {
	fmt.Fprintf(t.out, "[basket: %d]\n", count)
}

type previewView struct{ out io.Writer }

func (v previewView) Render(state shop.PreviewState) {
	item := state.Item
	fmt.Fprintf(v.out, "\n--- %s ---\n%s\ncategory: %s, price: %s\n",
		item.Title, item.Description, item.Category, formatPrice(item.Price))
	switch {
	case state.InBasket:
		fmt.Fprintln(v.out, "(already in the basket)")
	case !state.CanAdd:
		fmt.Fprintln(v.out, "(cannot be added)")
	default:
		fmt.Fprintln(v.out, "type `add` to put it in the basket")
	}
}

type basketView struct{ out io.Writer }

func (v basketView) Render(state shop.BasketState) {
	fmt.Fprintln(v.out, "\n--- Basket ---")
	if len(state.Items) == 0 {
		fmt.Fprintln(v.out, "(empty)")
	}
	for i, item := range state.Items {
		fmt.Fprintf(v.out, "%2d. %-28s %s\n", i+1, item.Title, formatPrice(item.Price))
	}
	fmt.Fprintf(v.out, "total: %d syn\n", state.Total)
}

type orderFormView struct{ out io.Writer }

func (v orderFormView) Render(state shop.OrderFormState) {
	payment := string(state.Payment)
	if payment == "" {
		payment = "-"
	}
	fmt.Fprintf(v.out, "\n--- Order: step 1 ---\naddress: %q  payment: %s\n", state.Address, payment)
	if state.Errors != "" {
		fmt.Fprintf(v.out, "! %s\n", state.Errors)
	}
	if state.Valid {
		fmt.Fprintln(v.out, "type `next` to continue")
	}
}

type contactsFormView struct{ out io.Writer }

func (v contactsFormView) Render(state shop.ContactsFormState) {
	fmt.Fprintf(v.out, "\n--- Order: step 2 ---\nemail: %q  phone: %q\n", state.Email, state.Phone)
	if state.Errors != "" {
		fmt.Fprintf(v.out, "! %s\n", state.Errors)
	}
	if state.Valid {
		fmt.Fprintln(v.out, "type `pay` to place the order")
	}
}

type successView struct{ out io.Writer }

func (v successView) Render(state shop.SuccessState) {
	fmt.Fprintf(v.out, "\n*** Order placed! %d syn written off ***\n", state.Total)
}

type modalView struct{ out io.Writer }

func (v modalView) Open()  { fmt.Fprintln(v.out, "[dialog opened]") }
func (v modalView) Close() { fmt.Fprintln(v.out, "[dialog closed]") }

type notifierView struct{ out io.Writer }

func (v notifierView) Alert(message string) {
	fmt.Fprintf(v.out, "!!! %s\n", message)
}

func terminalViews(out io.Writer) shop.Views {
	return shop.Views{
		Page:         &terminal{out: out},
		Preview:      previewView{out},
		Basket:       basketView{out},
		OrderForm:    orderFormView{out},
		ContactsForm: contactsFormView{out},
		Success:      successView{out},
		Modal:        modalView{out},
		Notifier:     notifierView{out},
	}
}
