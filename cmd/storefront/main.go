package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/craftcart/internal/cartstore"
	"github.com/nikolayk812/craftcart/internal/catalog"
	"github.com/nikolayk812/craftcart/internal/checkout"
	"github.com/nikolayk812/craftcart/internal/config"
	"github.com/nikolayk812/craftcart/internal/domain"
	"github.com/nikolayk812/craftcart/internal/logger"
	"github.com/nikolayk812/craftcart/internal/messaging/kafka"
	"github.com/nikolayk812/craftcart/internal/port"
	"github.com/nikolayk812/craftcart/internal/pricing"
	"github.com/nikolayk812/craftcart/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const usage = `usage: storefront [--session ID] <command> [args]

commands:
  products [--q --category --min --max --sort]
                                        list or search the catalog
  product add --title --price [--sale-price --category --sub-category
              --description --image --groups JSON]
  product update <productID> [same flags as add]
  product delete <productID>
  add <productID> [group=choice ...]    add one unit with the given customizations
  cart                                  show the cart
  update <productID> <qty>              set a quantity, 0 or less removes
  remove <productID>                    remove a line item
  clear                                 empty the cart
  checkout --name --email --address --city --zip --country
  orders                                list orders, newest first
  status <orderID> <status>             update an order status
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	cfg      config.Config
	logger   *zap.Logger
	pool     *pgxpool.Pool
	catalog  port.CatalogRepository
	cart     *cartstore.Store
	checkout *checkout.Service
	closers  []func()
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("storefront", pflag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	session := fs.String("session", "default", "shopper session id")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("command is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	defer func() { _ = log.Sync() }()

	a, err := newApp(ctx, cfg, log, *session)
	if err != nil {
		return err
	}
	defer a.close()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "products":
		return a.products(ctx, out, rest)
	case "product":
		return a.product(ctx, out, rest)
	case "add":
		return a.add(ctx, out, rest)
	case "cart":
		return a.show(out)
	case "update":
		return a.update(ctx, out, rest)
	case "remove":
		return a.remove(ctx, out, rest)
	case "clear":
		return warnOnly(a.cart.Clear(ctx), out)
	case "checkout":
		return a.placeOrder(ctx, out, rest)
	case "orders":
		return a.orders(ctx, out)
	case "status":
		return a.status(ctx, out, rest)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command[%s]", cmd)
	}
}

func newApp(ctx context.Context, cfg config.Config, log *zap.Logger, session string) (*app, error) {
	a := &app{cfg: cfg, logger: log}

	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		a.pool = pool
		a.closers = append(a.closers, pool.Close)
		a.catalog = repository.NewCatalog(pool)
	}

	var kv port.KVStore
	switch cfg.CartStorage {
	case config.CartStorageRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		a.closers = append(a.closers, func() { _ = client.Close() })
		kv = repository.NewRedisCart(client, cfg.CartTTL)
	case config.CartStoragePostgres:
		kv = repository.NewCart(a.pool)
	default:
		kv = repository.NewMemoryCart()
	}
	if cfg.CartStorage == config.CartStorageMemory {
		log.Warn("cart storage is memory, the cart is lost when the process exits")
	}
	a.cart = cartstore.New(ctx, kv, cfg.CartKey(session), cfg.Currency, log.Named("cart"))

	var events port.OrderEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		writer := kafka.NewWriter(cfg.KafkaBrokers, cfg.KafkaOrderTopic)
		a.closers = append(a.closers, func() { _ = writer.Close() })
		events = kafka.NewOrderPublisher(writer)
	}

	if a.pool != nil {
		delivery := domain.NewMoney(cfg.DeliveryCharge, cfg.Currency)
		a.checkout = checkout.NewService(repository.NewOrder(a.pool), events, delivery, log)
	}

	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *app) requireDB() error {
	if a.pool == nil {
		return errors.New("DATABASE_URL is required for this command")
	}
	return nil
}

func (a *app) products(ctx context.Context, out io.Writer, args []string) error {
	if err := a.requireDB(); err != nil {
		return err
	}

	fs := pflag.NewFlagSet("products", pflag.ContinueOnError)
	var filter catalog.Filter
	var minPrice, maxPrice, sort string
	fs.StringVar(&filter.Query, "q", "", "text in title, description or category")
	fs.StringVar(&filter.Category, "category", catalog.AllCategories, "category")
	fs.StringVar(&minPrice, "min", "", "lowest price")
	fs.StringVar(&maxPrice, "max", "", "highest price")
	fs.StringVar(&sort, "sort", string(catalog.SortDefault), "default, price-asc or price-desc")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if filter.MinPrice, err = parseBound("min", minPrice); err != nil {
		return err
	}
	if filter.MaxPrice, err = parseBound("max", maxPrice); err != nil {
		return err
	}
	filter.Sort = catalog.Sort(sort)
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("products: %w", err)
	}

	products, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("catalog.ListProducts: %w", err)
	}

	for _, p := range catalog.Search(products, filter) {
		fmt.Fprintf(out, "%s  %-30s %s\n", p.ID, p.Title, pricing.BasePrice(p))
		for _, g := range p.CustomizationGroups {
			names := make([]string, 0, len(g.Choices))
			for _, c := range g.Choices {
				names = append(names, fmt.Sprintf("%s(+%s)", c.Name, c.Price.StringFixed(2)))
			}
			fmt.Fprintf(out, "    %s [%s]: %s\n", g.Name, g.Kind, strings.Join(names, ", "))
		}
	}
	fmt.Fprintf(out, "categories: %s\n", strings.Join(catalog.Categories(products), ", "))

	return nil
}

func parseBound(name, raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("products: %s[%s] is not valid: %w", name, raw, err)
	}

	return decimal.NewNullDecimal(d), nil
}

// product runs the admin catalog writes.
func (a *app) product(ctx context.Context, out io.Writer, args []string) error {
	if err := a.requireDB(); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("product: add, update or delete is required")
	}

	switch args[0] {
	case "add":
		p := domain.Product{Price: domain.ZeroMoney(a.cfg.Currency)}
		if err := parseProductFlags(&p, args[1:]); err != nil {
			return err
		}

		id, err := a.catalog.AddProduct(ctx, p)
		if err != nil {
			return fmt.Errorf("catalog.AddProduct: %w", err)
		}

		fmt.Fprintf(out, "product %s added\n", id)
		return nil
	case "update":
		id, err := parseID("product update", args[1:])
		if err != nil {
			return err
		}

		p, err := a.catalog.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("catalog.GetProduct: %w", err)
		}
		if err := parseProductFlags(&p, args[2:]); err != nil {
			return err
		}
		if err := a.catalog.UpdateProduct(ctx, p); err != nil {
			return fmt.Errorf("catalog.UpdateProduct: %w", err)
		}

		fmt.Fprintf(out, "product %s updated\n", id)
		return nil
	case "delete":
		id, err := parseID("product delete", args[1:])
		if err != nil {
			return err
		}

		deleted, err := a.catalog.DeleteProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("catalog.DeleteProduct: %w", err)
		}
		if !deleted {
			return domain.ErrProductNotFound
		}

		fmt.Fprintf(out, "product %s deleted\n", id)
		return nil
	default:
		return fmt.Errorf("product: unknown action[%s]", args[0])
	}
}

func parseID(cmd string, args []string) (uuid.UUID, error) {
	if len(args) == 0 {
		return uuid.Nil, fmt.Errorf("%s: productID is required", cmd)
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: productID[%s] is not valid: %w", cmd, args[0], err)
	}

	return id, nil
}

// parseProductFlags overwrites the fields of p whose flags are set. An empty
// --sale-price takes the product off sale.
func parseProductFlags(p *domain.Product, args []string) error {
	fs := pflag.NewFlagSet("product", pflag.ContinueOnError)
	title := fs.String("title", p.Title, "title")
	description := fs.String("description", p.Description, "description")
	category := fs.String("category", p.Category, "category")
	subCategory := fs.String("sub-category", p.SubCategory, "sub-category")
	image := fs.String("image", p.Image, "image url")
	price := fs.String("price", "", "regular price")
	salePrice := fs.String("sale-price", "", "sale price, empty for none")
	groups := fs.String("groups", "", `customization groups as JSON, e.g. [{"groupName":"Size","type":"single","choices":[{"name":"Large","price":"3.00"}]}]`)
	if err := fs.Parse(args); err != nil {
		return err
	}

	p.Title, p.Description, p.Category, p.SubCategory, p.Image = *title, *description, *category, *subCategory, *image

	if fs.Changed("price") {
		amount, err := decimal.NewFromString(*price)
		if err != nil {
			return fmt.Errorf("product: price[%s] is not valid: %w", *price, err)
		}
		p.Price.Amount = amount
	}

	if fs.Changed("sale-price") {
		if *salePrice == "" {
			p.OnSale, p.SalePrice = false, domain.Money{}
		} else {
			amount, err := decimal.NewFromString(*salePrice)
			if err != nil {
				return fmt.Errorf("product: sale-price[%s] is not valid: %w", *salePrice, err)
			}
			p.OnSale, p.SalePrice = true, domain.NewMoney(amount, p.Price.Currency)
		}
	}

	if fs.Changed("groups") {
		var parsed []domain.CustomizationGroup
		if err := json.Unmarshal([]byte(*groups), &parsed); err != nil {
			return fmt.Errorf("product: groups: json.Unmarshal: %w", err)
		}
		p.CustomizationGroups = parsed
	}

	return nil
}

func (a *app) add(ctx context.Context, out io.Writer, args []string) error {
	if err := a.requireDB(); err != nil {
		return err
	}
	if len(args) < 1 {
		return errors.New("add: productID is required")
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("add: productID[%s] is not valid: %w", args[0], err)
	}

	product, err := a.catalog.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.GetProduct: %w", err)
	}

	sel := domain.DefaultSelection(product)
	for _, arg := range args[1:] {
		group, choice, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("add: customization[%s] must be group=choice", arg)
		}

		g, ok := product.Group(group)
		if !ok {
			return fmt.Errorf("add: %w: unknown group[%s]", domain.ErrInvalidSelection, group)
		}
		if g.Kind == domain.SelectionSingle {
			sel, err = sel.Choose(product, group, choice)
		} else {
			sel, err = sel.Toggle(product, group, choice)
		}
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
	}

	item := pricing.NewCartItem(product, sel)
	if err := warnOnly(a.cart.Add(ctx, item), out); err != nil {
		return err
	}

	fmt.Fprintf(out, "added %q at %s\n", product.Title, item.Price)
	return a.show(out)
}

func (a *app) show(out io.Writer) error {
	for _, item := range a.cart.Items() {
		fmt.Fprintf(out, "%s  %-30s %3d x %s\n", item.ProductID, item.Title, item.Quantity, item.Price)
		for _, c := range item.Customizations {
			names := make([]string, 0, len(c.Choices))
			for _, ch := range c.Choices {
				names = append(names, ch.Name)
			}
			fmt.Fprintf(out, "    %s: %s\n", c.Group, strings.Join(names, ", "))
		}
	}
	fmt.Fprintf(out, "items: %d  total: %s\n", a.cart.ItemCount(), a.cart.Total())

	return nil
}

func (a *app) update(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 2 {
		return errors.New("update: productID and qty are required")
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("update: productID[%s] is not valid: %w", args[0], err)
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("update: qty[%s] is not valid: %w", args[1], err)
	}

	if err := warnOnly(a.cart.UpdateQuantity(ctx, id, qty), out); err != nil {
		return err
	}
	return a.show(out)
}

func (a *app) remove(ctx context.Context, out io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.New("remove: productID is required")
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("remove: productID[%s] is not valid: %w", args[0], err)
	}

	if err := warnOnly(a.cart.Remove(ctx, id), out); err != nil {
		return err
	}
	return a.show(out)
}

func (a *app) placeOrder(ctx context.Context, out io.Writer, args []string) error {
	if err := a.requireDB(); err != nil {
		return err
	}

	fs := pflag.NewFlagSet("checkout", pflag.ContinueOnError)
	var shipping domain.ShippingInfo
	fs.StringVar(&shipping.FullName, "name", "", "full name")
	fs.StringVar(&shipping.Email, "email", "", "email")
	fs.StringVar(&shipping.Address, "address", "", "street address")
	fs.StringVar(&shipping.City, "city", "", "city")
	fs.StringVar(&shipping.ZipCode, "zip", "", "zip code")
	fs.StringVar(&shipping.Country, "country", "", "country")
	if err := fs.Parse(args); err != nil {
		return err
	}

	subtotal, delivery, total, err := a.checkout.Quote(a.cart)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "subtotal: %s  delivery: %s  total: %s\n", subtotal, delivery, total)

	order, err := a.checkout.PlaceOrder(ctx, a.cart, shipping, domain.PaymentCashOnDelivery)
	if err != nil {
		return fmt.Errorf("checkout.PlaceOrder: %w", err)
	}

	fmt.Fprintf(out, "order %s placed, pay %s on delivery\n", order.ID, order.Total)
	return nil
}

func (a *app) orders(ctx context.Context, out io.Writer) error {
	if err := a.requireDB(); err != nil {
		return err
	}

	orders, err := a.checkout.ListOrders(ctx)
	if err != nil {
		return err
	}

	for _, o := range orders {
		fmt.Fprintf(out, "%s  %s  %-10s %-25s %s\n",
			o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status, o.Shipping.FullName, o.Total)
	}

	return nil
}

func (a *app) status(ctx context.Context, out io.Writer, args []string) error {
	if err := a.requireDB(); err != nil {
		return err
	}
	if len(args) != 2 {
		return errors.New("status: orderID and status are required")
	}

	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("status: orderID[%s] is not valid: %w", args[0], err)
	}

	if err := a.checkout.UpdateStatus(ctx, id, domain.OrderStatus(args[1])); err != nil {
		return err
	}

	fmt.Fprintf(out, "order %s is %s\n", id, args[1])
	return nil
}

// warnOnly downgrades a persistence failure to a printed warning.
func warnOnly(err error, out io.Writer) error {
	if errors.Is(err, cartstore.ErrNotPersisted) {
		fmt.Fprintf(out, "warning: %v\n", err)
		return nil
	}
	return err
}
