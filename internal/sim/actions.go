package sim

// ActionKind identifies one step a journey can take. Kinds map one-to-one
// onto the event types their emitters produce.
type ActionKind string

const (
	ActionPageView    ActionKind = "page_view"
	ActionProductView ActionKind = "product_view"
	ActionAddToCart   ActionKind = "add_to_cart"
	ActionPurchase    ActionKind = "purchase"
	ActionSearch      ActionKind = "search"
	ActionLogin       ActionKind = "login"
	ActionLogout      ActionKind = "logout"
	ActionError       ActionKind = "error"
)

type weightedAction struct {
	kind   ActionKind
	weight int
}

// ActionMix returns the weighted multiset of candidate actions for the given
// hour of day. Weights are encoded by repetition so a uniform draw over the
// slice yields the intended diurnal bias: mornings favor search and browsing,
// afternoons browsing and carts, evenings carts and purchases, nights errors.
// Bands are half-open; hour is normalized modulo 24.
func ActionMix(hour int) []ActionKind {
	h := ((hour % 24) + 24) % 24

	var weights []weightedAction
	switch {
	case h >= 6 && h < 12:
		weights = []weightedAction{
			{ActionSearch, 4},
			{ActionPageView, 3},
			{ActionProductView, 1},
		}
	case h >= 12 && h < 18:
		weights = []weightedAction{
			{ActionPageView, 3},
			{ActionProductView, 3},
			{ActionAddToCart, 2},
		}
	case h >= 18 && h < 22:
		weights = []weightedAction{
			{ActionProductView, 2},
			{ActionAddToCart, 3},
			{ActionPurchase, 2},
		}
	default:
		weights = []weightedAction{
			{ActionError, 2},
			{ActionSearch, 1},
			{ActionLogout, 1},
		}
	}

	var mix []ActionKind
	for _, w := range weights {
		for i := 0; i < w.weight; i++ {
			mix = append(mix, w.kind)
		}
	}
	return mix
}
