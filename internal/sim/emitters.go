package sim

import (
	"fmt"

	"github.com/google/uuid"
)

var pages = []string{"home", "category", "checkout"}

var searchQueries = []string{"laptop", "shoes", "watch", "phone", "headphones"}

type httpError struct {
	code    int
	message string
}

var errorTable = []httpError{
	{500, "Internal Server Error"},
	{404, "Not Found"},
	{403, "Forbidden"},
	{502, "Bad Gateway"},
}

// Emitters build the event-specific payload and delegate to logEvent, which
// stamps timestamp, session id, ip and user agent. They read the user and
// the product pool only and never mutate them.

func (e *Engine) emitPageView(u User) error {
	e.logEvent(EventPageView, u, map[string]any{
		"user_id": u.UserID,
		"page":    pages[e.rng.Intn(len(pages))],
	})
	return nil
}

func (e *Engine) emitProductView(u User) error {
	p := e.products[e.rng.Intn(len(e.products))]
	e.logEvent(EventProductView, u, map[string]any{
		"user_id":    u.UserID,
		"product_id": p.ProductID,
		"price":      p.Price(),
	})
	return nil
}

func (e *Engine) emitAddToCart(u User) error {
	p := e.products[e.rng.Intn(len(e.products))]
	e.logEvent(EventAddToCart, u, map[string]any{
		"user_id":    u.UserID,
		"product_id": p.ProductID,
		"quantity":   1 + e.rng.Intn(5),
	})
	return nil
}

// emitPurchase samples 1-3 distinct products without replacement; the amount
// is the exact sum of the sampled prices.
func (e *Engine) emitPurchase(u User) error {
	k := 1 + e.rng.Intn(3)
	if k > len(e.products) {
		return fmt.Errorf("cannot sample %d distinct products from a pool of %d", k, len(e.products))
	}

	var amountCents int64
	items := make([]map[string]any, 0, k)
	for _, idx := range e.rng.Perm(len(e.products))[:k] {
		p := e.products[idx]
		amountCents += p.PriceCents
		items = append(items, map[string]any{
			"product_id": p.ProductID,
			"price":      p.Price(),
		})
	}

	e.logEvent(EventPurchase, u, map[string]any{
		"user_id":  u.UserID,
		"order_id": uuid.New().String(),
		"amount":   float64(amountCents) / 100,
		"items":    items,
	})
	return nil
}

func (e *Engine) emitSearch(u User) error {
	e.logEvent(EventSearch, u, map[string]any{
		"user_id": u.UserID,
		"query":   searchQueries[e.rng.Intn(len(searchQueries))],
	})
	return nil
}

func (e *Engine) emitLogin(u User) error {
	e.logEvent(EventLogin, u, map[string]any{"user_id": u.UserID})
	return nil
}

func (e *Engine) emitLogout(u User) error {
	e.logEvent(EventLogout, u, map[string]any{"user_id": u.UserID})
	return nil
}

func (e *Engine) emitError(u User) error {
	he := errorTable[e.rng.Intn(len(errorTable))]
	e.logEvent(EventError, u, map[string]any{
		"user_id":       u.UserID,
		"error_code":    he.code,
		"error_message": he.message,
	})
	return nil
}
