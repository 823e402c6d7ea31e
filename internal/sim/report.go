package sim

import (
	"sort"
	"time"
)

// Report summarizes a log buffer the way the exploration dashboard does:
// counts by type, hour, country and device, top viewed products, and
// sessions reconstructed from login/logout boundaries per user.
type Report struct {
	Total       int                `json:"total"`
	ByType      map[EventType]int  `json:"by_type"`
	ByHour      map[int]int        `json:"by_hour"`
	ByCountry   map[string]int     `json:"by_country"`
	ByDevice    map[DeviceType]int `json:"by_device"`
	TopProducts []ProductCount     `json:"top_products"`
	Sessions    int                `json:"sessions"`
	AvgSession  time.Duration      `json:"avg_session_ns"`
}

type ProductCount struct {
	ProductID string `json:"product_id"`
	Views     int    `json:"views"`
}

const topProductLimit = 10

// BuildReport aggregates entries in any order. Sessions are derived from
// event_type boundaries, not from the session_id field, mirroring the
// downstream sessionization.
func BuildReport(entries []LogEntry) *Report {
	r := &Report{
		Total:     len(entries),
		ByType:    make(map[EventType]int),
		ByHour:    make(map[int]int),
		ByCountry: make(map[string]int),
		ByDevice:  make(map[DeviceType]int),
	}

	views := make(map[string]int)
	byUser := make(map[string][]LogEntry)

	for _, entry := range entries {
		r.ByType[entry.EventType]++
		r.ByHour[entry.Timestamp.Hour()]++
		r.ByDevice[entry.DeviceType]++

		country := "Unknown"
		if entry.Geo != nil && entry.Geo.Country != "" {
			country = entry.Geo.Country
		}
		r.ByCountry[country]++

		if entry.EventType == EventProductView {
			if id, ok := entry.Data["product_id"].(string); ok {
				views[id]++
			}
		}

		byUser[entry.UserID] = append(byUser[entry.UserID], entry)
	}

	for id, n := range views {
		r.TopProducts = append(r.TopProducts, ProductCount{ProductID: id, Views: n})
	}
	sort.Slice(r.TopProducts, func(i, j int) bool {
		if r.TopProducts[i].Views != r.TopProducts[j].Views {
			return r.TopProducts[i].Views > r.TopProducts[j].Views
		}
		return r.TopProducts[i].ProductID < r.TopProducts[j].ProductID
	})
	if len(r.TopProducts) > topProductLimit {
		r.TopProducts = r.TopProducts[:topProductLimit]
	}

	var totalSpan time.Duration
	for _, userEntries := range byUser {
		sort.Slice(userEntries, func(i, j int) bool {
			return userEntries[i].Timestamp.Before(userEntries[j].Timestamp)
		})

		var open bool
		var start time.Time
		for _, entry := range userEntries {
			switch entry.EventType {
			case EventLogin:
				open = true
				start = entry.Timestamp
			case EventLogout:
				if open {
					r.Sessions++
					totalSpan += entry.Timestamp.Sub(start)
					open = false
				}
			}
		}
	}
	if r.Sessions > 0 {
		r.AvgSession = totalSpan / time.Duration(r.Sessions)
	}

	return r
}
