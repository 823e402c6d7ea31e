package sim

import "time"

type EventType string

const (
	EventPageView    EventType = "page_view"
	EventProductView EventType = "product_view"
	EventAddToCart   EventType = "add_to_cart"
	EventPurchase    EventType = "purchase"
	EventSearch      EventType = "search"
	EventLogin       EventType = "login"
	EventLogout      EventType = "logout"
	EventError       EventType = "error"
)

type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

type Geo struct {
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// User is an immutable member of the synthetic user pool.
type User struct {
	UserID     string     `json:"user_id"`
	Geo        Geo        `json:"geo"`
	DeviceType DeviceType `json:"device_type"`
}

// Product is an immutable member of the synthetic catalog. Prices are held
// in cents so purchase amounts are exact sums with no float drift.
type Product struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"-"`
}

// Price renders the price as the 2-decimal value used in event payloads.
func (p Product) Price() float64 {
	return float64(p.PriceCents) / 100
}

// LogEntry is one record of the output artifact. Entries are immutable once
// appended to the engine buffer; the buffer keeps generation order, which is
// not chronological across journeys.
type LogEntry struct {
	Timestamp  time.Time      `json:"timestamp"`
	EventType  EventType      `json:"event_type"`
	SessionID  string         `json:"session_id"`
	UserID     string         `json:"user_id"`
	IPAddress  string         `json:"ip_address"`
	UserAgent  string         `json:"user_agent"`
	Geo        *Geo           `json:"geo"`
	DeviceType DeviceType     `json:"device_type"`
	Data       map[string]any `json:"data"`
}
