package main

import (
	"context"
	"os"
	"strings"

	"ordering/cmd"
	"ordering/internal/adapters/in/console"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	config := getConfigs()
	configureLogger(config.LogLevel)
	log.Infof("starting ordering demo, run %s", uuid.NewString())

	root, err := cmd.NewCompositionRoot(config)
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}

	ctx := context.Background()
	seedDemoData(ctx, root)
	printCatalog(ctx, root)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine, the environment itself still applies.
	if err := godotenv.Load(".env"); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return cmd.Config{
		PricingCategory:  os.Getenv("PRICING_CATEGORY"),
		IDReassignPolicy: os.Getenv("ID_REASSIGN_POLICY"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
	}
}

func configureLogger(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}

func seedDemoData(ctx context.Context, root *cmd.CompositionRoot) {
	registerCustomer, err := root.CreateRegisterCustomerCommandHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}
	registerArticle, err := root.CreateRegisterArticleCommandHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}
	placeOrder, err := root.CreatePlaceOrderCommandHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}

	for _, row := range demoCustomers() {
		cmdObj, cmdErr := commands.NewRegisterCustomerCommand(row.name, row.contact)
		if cmdErr != nil {
			log.Warnf("skipping customer %q: %v", row.name, cmdErr)
			continue
		}
		id, cmdErr := registerCustomer.Handle(ctx, cmdObj)
		if cmdErr != nil {
			log.Warnf("skipping customer %q: %v", row.name, cmdErr)
			continue
		}
		log.Debugf("registered customer %d (%s)", id, row.name)
	}

	for _, row := range demoArticles() {
		// Base registration derives prices for every category, so the
		// configured category only selects where orders are placed.
		cmdObj, cmdErr := commands.NewRegisterArticleCommand(row.description, row.unitPrice, pricing.BasePricing, row.taxRate)
		if cmdErr != nil {
			log.Warnf("skipping article %q: %v", row.description, cmdErr)
			continue
		}
		id, cmdErr := registerArticle.Handle(ctx, cmdObj)
		if cmdErr != nil {
			log.Warnf("skipping article %q: %v", row.description, cmdErr)
			continue
		}
		log.Debugf("registered article %s (%s)", id, row.description)
	}

	for _, row := range demoOrders() {
		cmdObj, cmdErr := commands.NewPlaceOrderCommand(row.customerSpec, row.items)
		if cmdErr != nil {
			log.Warnf("skipping order for %q: %v", row.customerSpec, cmdErr)
			continue
		}
		id, cmdErr := placeOrder.Handle(ctx, cmdObj)
		if cmdErr != nil {
			log.Warnf("skipping order for %q: %v", row.customerSpec, cmdErr)
			continue
		}
		log.Debugf("placed order %d for %s", id, row.customerSpec)
	}
}

func printCatalog(ctx context.Context, root *cmd.CompositionRoot) {
	printer, err := console.NewPrinter(os.Stdout)
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}

	getCustomers, err := root.CreateGetCustomersQueryHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}
	customers, err := getCustomers.Handle(ctx, queries.NewGetCustomersQuery())
	if err != nil {
		log.Fatalf("customers query failed: %v", err)
	}
	if err = printer.PrintCustomers(customers); err != nil {
		log.Fatalf("printing customers failed: %v", err)
	}

	getArticles, err := root.CreateGetArticlesQueryHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}
	articlesQuery, err := queries.NewGetArticlesQuery(root.Category())
	if err != nil {
		log.Fatalf("articles query failed: %v", err)
	}
	articles, err := getArticles.Handle(ctx, articlesQuery)
	if err != nil {
		log.Fatalf("articles query failed: %v", err)
	}
	if err = printer.PrintArticles(articles); err != nil {
		log.Fatalf("printing articles failed: %v", err)
	}

	getOrders, err := root.CreateGetOrdersQueryHandler()
	if err != nil {
		log.Fatalf("composition failed: %v", err)
	}
	orders, err := getOrders.Handle(ctx, queries.NewGetOrdersQuery())
	if err != nil {
		log.Fatalf("orders query failed: %v", err)
	}
	if err = printer.PrintOrders(orders); err != nil {
		log.Fatalf("printing orders failed: %v", err)
	}
}

type demoCustomer struct {
	name    string
	contact string
}

// demoCustomers includes two records that fail registration, one with a
// malformed contact and one with an empty name. Both are skipped with a
// warning.
func demoCustomers() []demoCustomer {
	return []demoCustomer{
		{"Eric Meyer", "eric98@yahoo.com"},
		{"Bayer, Anne", "anne24@yahoo.de"},
		{"Tim Schulz-Mueller", "tim2346@gmx.de"},
		{"Nadine-Ulla Blumenfeld", "+49 152-92454"},
		{"Khaled Saad Mohamed Abdelalim", "+49 1524-12948210"},
		{"Mandy Mondschein", "locomandy<>gmx.de"},
		{"", "nobody@gmx.de"},
	}
}

type demoArticle struct {
	description string
	unitPrice   int64
	taxRate     pricing.TaxRate
}

func demoArticles() []demoArticle {
	return []demoArticle{
		{"Tasse", 299, pricing.TaxRegular},
		{"Becher", 149, pricing.TaxRegular},
		{"Kanne", 1999, pricing.TaxRegular},
		{"Teller", 649, pricing.TaxRegular},
		{"Buch 'Java'", 4990, pricing.TaxReduced},
		{"Buch 'UML'", 7995, pricing.TaxReduced},
		{"Pfanne", 4999, pricing.TaxRegular},
		{"Fahrradhelm", 16900, pricing.TaxRegular},
		{"Fahrradkarte", 695, pricing.TaxReduced},
	}
}

type demoOrder struct {
	customerSpec string
	items        []commands.OrderItemSpec
}

func demoOrders() []demoOrder {
	return []demoOrder{
		{"Meyer", []commands.OrderItemSpec{
			{Quantity: 4, ArticleSpec: "Teller"},
			{Quantity: 8, ArticleSpec: "Becher"},
			{Quantity: 1, ArticleSpec: "Buch 'UML'"},
			{Quantity: 4, ArticleSpec: "Tasse"},
		}},
		{"Bayer", []commands.OrderItemSpec{
			{Quantity: 2, ArticleSpec: "Teller"},
			{Quantity: 2, ArticleSpec: "Tasse"},
		}},
		{"Meyer", []commands.OrderItemSpec{
			{Quantity: 1, ArticleSpec: "Kanne"},
		}},
		{"Blumenfeld", []commands.OrderItemSpec{
			{Quantity: 12, ArticleSpec: "Teller"},
			{Quantity: 3, ArticleSpec: "Becher"},
			{Quantity: 1, ArticleSpec: "Kanne"},
		}},
		{"Abdelalim", []commands.OrderItemSpec{
			{Quantity: 1, ArticleSpec: "Buch 'Java'"},
			{Quantity: 1, ArticleSpec: "Fahrradkarte"},
		}},
		{"Meyer", []commands.OrderItemSpec{
			{Quantity: 1, ArticleSpec: "Fahrradhelm"},
			{Quantity: 1, ArticleSpec: "Fahrradkarte"},
		}},
		{"Meyer", []commands.OrderItemSpec{
			{Quantity: 3, ArticleSpec: "Tasse"},
			{Quantity: 3, ArticleSpec: "Becher"},
			{Quantity: 1, ArticleSpec: "Kanne"},
		}},
	}
}
