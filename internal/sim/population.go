package sim

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var locations = []Geo{
	{Country: "FR", Lat: 48.8566, Lon: 2.3522},
	{Country: "US", Lat: 37.7749, Lon: -122.4194},
	{Country: "JP", Lat: 35.6895, Lon: 139.6917},
}

var userAgents = map[DeviceType][]string{
	DeviceDesktop: {
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Mozilla/5.0 (X11; Ubuntu; Linux x86_64)",
	},
	DeviceMobile: {
		"Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X)",
		"Mozilla/5.0 (Android 10)",
	},
	DeviceTablet: {
		"Mozilla/5.0 (iPad; CPU OS 13_2 like Mac OS X)",
	},
}

// GenerateUsers produces n users with a uniformly chosen geo location and a
// device type drawn from the desktop 50% / mobile 40% / tablet 10%
// distribution.
func GenerateUsers(rng *rand.Rand, n int) []User {
	users := make([]User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, User{
			UserID:     uuid.New().String(),
			Geo:        locations[rng.Intn(len(locations))],
			DeviceType: randomDevice(rng),
		})
	}
	return users
}

func randomDevice(rng *rand.Rand) DeviceType {
	switch r := rng.Float64(); {
	case r < 0.5:
		return DeviceDesktop
	case r < 0.9:
		return DeviceMobile
	default:
		return DeviceTablet
	}
}

// GenerateProducts produces n products with sequential 1-based ids and a
// price uniform in [10.00, 500.00] at cent granularity.
func GenerateProducts(rng *rand.Rand, n int) []Product {
	products := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, Product{
			ProductID:  fmt.Sprintf("prod_%d", i),
			Name:       fmt.Sprintf("Product %d", i),
			PriceCents: 1000 + rng.Int63n(49001),
		})
	}
	return products
}

// RandomIP returns four uniform octets, dot-joined.
func RandomIP(rng *rand.Rand) string {
	octets := make([]string, 4)
	for i := range octets {
		octets[i] = strconv.Itoa(rng.Intn(256))
	}
	return strings.Join(octets, ".")
}

// RandomUserAgent picks uniformly from the per-device list; an unknown or
// empty device draws from the union of all lists.
func RandomUserAgent(rng *rand.Rand, device DeviceType) string {
	if agents, ok := userAgents[device]; ok {
		return agents[rng.Intn(len(agents))]
	}
	var all []string
	for _, d := range []DeviceType{DeviceDesktop, DeviceMobile, DeviceTablet} {
		all = append(all, userAgents[d]...)
	}
	return all[rng.Intn(len(all))]
}
