// Command storefront is a terminal storefront over the catalog API. It
// fetches products from the server and applies price, stock and sort
// refinements locally, mirroring what the web storefront does in the
// browser.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"techmart/internal/catalog"
	"techmart/internal/client"
	"techmart/internal/model"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		baseURL  = flag.String("api", envOr("TECHMART_API_URL", "http://localhost:4000"), "catalog API base URL")
		category = flag.String("category", "", "server-side category filter (Laptops, Desktops, Accessories)")
		search   = flag.String("search", "", "server-side name search")
		limit    = flag.Int("limit", 50, "maximum number of products to fetch")
		minPrice = flag.Float64("min-price", -1, "local minimum price filter (-1 disables)")
		maxPrice = flag.Float64("max-price", -1, "local maximum price filter (-1 disables)")
		stock    = flag.String("stock", "all", "local stock filter: all, in, low, out")
		sortKey  = flag.String("sort", "name", "sort key: name, price, stock, created_at")
		desc     = flag.Bool("desc", false, "sort in descending order")
		phone    = flag.String("whatsapp", envOr("TECHMART_WHATSAPP_NUMBER", ""), "seller WhatsApp number for purchase links")
	)
	flag.Parse()

	bucket := catalog.StockBucket(*stock)
	if !bucket.Valid() {
		return fmt.Errorf("invalid stock filter %q", *stock)
	}
	key := catalog.SortKey(*sortKey)
	if !key.Valid() {
		return fmt.Errorf("invalid sort key %q", *sortKey)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	api := client.New(*baseURL)
	list, err := api.ListProducts(ctx, client.ProductQuery{
		Category: *category,
		Name:     *search,
		Limit:    *limit,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	filter := catalog.Filter{Stock: bucket}
	if *minPrice >= 0 {
		filter.MinPrice = minPrice
	}
	if *maxPrice >= 0 {
		filter.MaxPrice = maxPrice
	}

	products := filter.Apply(list.Products)
	catalog.Sort(products, key, *desc)

	if len(products) == 0 {
		fmt.Println("No products match the current filters.")
		return nil
	}

	printProducts(products, *phone)
	fmt.Printf("\nShowing %d of %d products\n", len(products), list.Total)
	return nil
}

func printProducts(products []model.Product, phone string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NAME\tCATEGORY\tPRICE\tSTOCK\tSPECS")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t Rs. %.2f\t%s\t%s\n",
			p.Name, p.Category, p.Price, stockLabel(p.Stock), model.JoinSpecs(p.Specs))
		if phone != "" {
			fmt.Fprintf(w, "\tbuy:\t%s\t\t\n", catalog.WhatsAppLink(phone, p))
		}
	}
}

func stockLabel(stock int) string {
	switch catalog.Bucket(stock) {
	case catalog.StockOut:
		return "out of stock"
	case catalog.StockLow:
		return fmt.Sprintf("low (%d left)", stock)
	default:
		return fmt.Sprintf("%d in stock", stock)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
