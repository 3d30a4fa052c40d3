// Command shop runs the storefront on a terminal: products, a basket and
// a two-step checkout, all coordinated over the event bus. Views publish
// what the user typed; stores and re-renders follow from the reactions.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/pkg/api"
	"storefront/pkg/basket"
	"storefront/pkg/catalog"
	"storefront/pkg/checkout"
	"storefront/pkg/eventbus"
	"storefront/pkg/logger"
	"storefront/pkg/shop"
)

type config struct {
	APIURL string `env:"SHOP_API_URL" envDefault:"http://localhost:8080"`
}

func main() {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	log, err := logger.New("storefront")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	client, err := api.NewClient(cfg.APIURL, log)
	if err != nil {
		log.Error("api client", zap.Error(err))
		os.Exit(1)
	}

	bus := eventbus.New(log)
	showcase := catalog.NewShowcase(bus)
	bask := basket.New(bus, log)
	draft := checkout.New(bus, log)

	app := shop.New(bus, showcase, bask, draft, client, terminalViews(os.Stdout), log)
	app.LoadCatalog(context.Background())

	repl(bus, showcase, os.Stdin)
}

const replHelp = `commands:
  list                     show the catalog
  show <n>                 open the preview for row n
  add                      put the previewed item in the basket
  basket                   open the basket
  remove <n>               delete basket row n (by catalog row number)
  checkout                 start the order form
  address <text>           set the delivery address
  pay card|cash            choose the payment method
  email <text>             set the email
  phone <text>             set the phone number
  next                     go to the contact details step
  submit                   place the order
  done                     continue shopping after a placed order
  close                    close the current dialog
  quit                     leave the shop`

// repl translates typed commands into the same bus events the web views
// would publish. The previewed item id is the only state it keeps.
func repl(bus *eventbus.Bus, showcase *catalog.Showcase, in *os.File) {
	var previewed string

	itemID := func(arg string) (string, bool) {
		n, err := strconv.Atoi(arg)
		items := showcase.Items()
		if err != nil || n < 1 || n > len(items) {
			fmt.Println("no such row")
			return "", false
		}
		return items[n-1].ID, true
	}

	fmt.Println(replHelp)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")

		switch cmd {
		case "list":
			bus.Publish(catalog.TopicChanged, nil)
		case "show":
			id, ok := itemID(arg)
			if !ok {
				continue
			}
			previewed = id
			bus.Publish(shop.TopicCardSelected, shop.ItemRef{ID: id})
		case "add":
			if previewed == "" {
				fmt.Println("nothing previewed; use `show <n>` first")
				continue
			}
			bus.Publish(shop.TopicAddToBasket, shop.ItemRef{ID: previewed})
			previewed = ""
		case "basket":
			bus.Publish(shop.TopicBasketOpened, nil)
		case "remove":
			if id, ok := itemID(arg); ok {
				bus.Publish(shop.TopicBasketItemRemoved, shop.ItemRef{ID: id})
			}
		case "checkout":
			bus.Publish(shop.TopicCheckoutStarted, nil)
		case "address":
			bus.Publish(shop.TopicFieldChanged, shop.FieldChange{Field: checkout.FieldAddress, Value: arg})
		case "pay":
			bus.Publish(shop.TopicFieldChanged, shop.FieldChange{Field: checkout.FieldPayment, Value: arg})
		case "email":
			bus.Publish(shop.TopicFieldChanged, shop.FieldChange{Field: checkout.FieldEmail, Value: arg})
		case "phone":
			bus.Publish(shop.TopicFieldChanged, shop.FieldChange{Field: checkout.FieldPhone, Value: arg})
		case "next":
			bus.Publish(shop.TopicOrderSubmitted, nil)
		case "submit":
			bus.Publish(shop.TopicContactsSubmitted, nil)
		case "done":
			bus.Publish(shop.TopicSuccessClosed, nil)
		case "close":
			bus.Publish(shop.TopicModalClosed, nil)
		case "quit", "exit":
			return
		case "", "help":
			fmt.Println(replHelp)
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}
