package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lenteradev69/barbershits/internal/analytics"
	"github.com/lenteradev69/barbershits/internal/checkout"
	"github.com/lenteradev69/barbershits/internal/config"
	"github.com/lenteradev69/barbershits/internal/currency"
	"github.com/lenteradev69/barbershits/internal/receipt"
	"github.com/lenteradev69/barbershits/internal/storage/boltdb"
	"github.com/lenteradev69/barbershits/internal/store"
)

// posdemo opens the data file, walks one checkout end to end and
// prints the receipt plus the dashboard numbers. It doubles as a
// smoke test for a data file carried over from an older install.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	backend, err := boltdb.Open(cfg.DataPath)
	if err != nil {
		sugar.Fatalw("open data file", "path", cfg.DataPath, "error", err)
	}
	defer backend.Close()

	catalog, err := store.NewCatalog(backend, sugar)
	if err != nil {
		sugar.Fatalw("load catalog", "error", err)
	}
	customers, err := store.NewCustomers(backend, sugar, cfg.SeedCustomers)
	if err != nil {
		sugar.Fatalw("load customers", "error", err)
	}
	transactions, err := store.NewTransactions(backend, sugar)
	if err != nil {
		sugar.Fatalw("load transactions", "error", err)
	}

	sugar.Infow("store opened",
		"path", cfg.DataPath,
		"services", len(catalog.Services()),
		"products", len(catalog.Products()),
		"customers", len(customers.All()),
		"transactions", len(transactions.All()),
	)

	session := checkout.NewSession(transactions, catalog, customers, sugar)

	if all := customers.All(); len(all) > 0 {
		cust := all[0]
		if err := session.SelectCustomer(&cust); err != nil {
			sugar.Fatalw("select customer", "error", err)
		}
	}
	if err := session.Advance(); err != nil {
		sugar.Fatalw("advance to items", "error", err)
	}

	services := catalog.Services()
	if len(services) == 0 {
		sugar.Fatalw("catalog has no services")
	}
	if err := session.AddService(services[0]); err != nil {
		sugar.Fatalw("add service", "error", err)
	}
	if products := catalog.Products(); len(products) > 0 {
		if err := session.AddProduct(products[0]); err != nil {
			sugar.Fatalw("add product", "error", err)
		}
	}
	if err := session.SetDiscountPercent("10"); err != nil {
		sugar.Fatalw("set discount", "error", err)
	}

	if err := session.Advance(); err != nil {
		sugar.Fatalw("advance to payment", "error", err)
	}
	if err := session.SetPaymentMethod("cash"); err != nil {
		sugar.Fatalw("set payment method", "error", err)
	}
	if err := session.SetCashReceived(session.Total() + 50000); err != nil {
		sugar.Fatalw("set cash", "error", err)
	}

	tx, err := session.CompletePayment()
	if err != nil {
		sugar.Fatalw("complete payment", "error", err)
	}

	out := receipt.Render(tx)
	fmt.Println(out.PreviewText)

	reports := analytics.New(transactions)
	summary := reports.Summary(nil)
	sugar.Infow("totals",
		"revenue", currency.FormatIDR(summary.TotalRevenue),
		"transactions", summary.TransactionCount,
		"average", currency.FormatIDR(int64(summary.AverageValue)),
	)
	for _, rank := range reports.PopularServices(0) {
		sugar.Infow("popular item", "name", rank.Name, "sold", rank.Count)
	}
	for _, cat := range reports.CategoryRevenue() {
		sugar.Infow("category revenue", "category", cat.Category, "revenue", currency.FormatIDR(cat.Revenue))
	}

	session.StartNewTransaction()
	sugar.Infow("register ready", "step", session.Step().String())
}
