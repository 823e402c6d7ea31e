package sim

import (
	"testing"
	"time"
)

func reportEntry(t EventType, user string, ts time.Time, data map[string]any) LogEntry {
	return LogEntry{
		Timestamp:  ts,
		EventType:  t,
		SessionID:  "s",
		UserID:     user,
		IPAddress:  "10.0.0.1",
		UserAgent:  "agent",
		Geo:        &Geo{Country: "FR"},
		DeviceType: DeviceDesktop,
		Data:       data,
	}
}

func TestBuildReportCountsAndSessions(t *testing.T) {
	base := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	entries := []LogEntry{
		reportEntry(EventLogin, "alice", base, map[string]any{}),
		reportEntry(EventProductView, "alice", base.Add(1*time.Minute), map[string]any{"product_id": "prod_1"}),
		reportEntry(EventProductView, "alice", base.Add(2*time.Minute), map[string]any{"product_id": "prod_1"}),
		reportEntry(EventProductView, "alice", base.Add(3*time.Minute), map[string]any{"product_id": "prod_2"}),
		reportEntry(EventLogout, "alice", base.Add(4*time.Minute), map[string]any{}),
		// bob logs in but never out: no completed session
		reportEntry(EventLogin, "bob", base.Add(10*time.Minute), map[string]any{}),
		reportEntry(EventSearch, "bob", base.Add(11*time.Minute), map[string]any{"query": "shoes"}),
	}

	r := BuildReport(entries)

	if r.Total != 7 {
		t.Errorf("expected total 7, got %d", r.Total)
	}
	if r.ByType[EventProductView] != 3 || r.ByType[EventLogin] != 2 {
		t.Errorf("unexpected type counts: %v", r.ByType)
	}
	if r.ByHour[10] != 7 {
		t.Errorf("expected 7 entries at hour 10, got %d", r.ByHour[10])
	}
	if r.ByCountry["FR"] != 7 {
		t.Errorf("expected 7 FR entries, got %d", r.ByCountry["FR"])
	}
	if r.ByDevice[DeviceDesktop] != 7 {
		t.Errorf("expected 7 desktop entries, got %d", r.ByDevice[DeviceDesktop])
	}

	if r.Sessions != 1 {
		t.Errorf("expected 1 completed session, got %d", r.Sessions)
	}
	if r.AvgSession != 4*time.Minute {
		t.Errorf("expected 4m avg session, got %v", r.AvgSession)
	}

	if len(r.TopProducts) != 2 {
		t.Fatalf("expected 2 top products, got %d", len(r.TopProducts))
	}
	if r.TopProducts[0].ProductID != "prod_1" || r.TopProducts[0].Views != 2 {
		t.Errorf("expected prod_1 with 2 views first, got %+v", r.TopProducts[0])
	}
}

func TestBuildReportHandlesMissingGeo(t *testing.T) {
	entry := reportEntry(EventPageView, "carol", time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC), map[string]any{})
	entry.Geo = nil

	r := BuildReport([]LogEntry{entry})
	if r.ByCountry["Unknown"] != 1 {
		t.Errorf("expected nil geo counted as Unknown, got %v", r.ByCountry)
	}
}

func TestBuildReportUnorderedInput(t *testing.T) {
	base := time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)
	// logout appended before login, as interleaved journeys can produce
	entries := []LogEntry{
		reportEntry(EventLogout, "dave", base.Add(5*time.Minute), map[string]any{}),
		reportEntry(EventLogin, "dave", base, map[string]any{}),
	}

	r := BuildReport(entries)
	if r.Sessions != 1 {
		t.Errorf("expected timestamp-ordered sessionization to find 1 session, got %d", r.Sessions)
	}
	if r.AvgSession != 5*time.Minute {
		t.Errorf("expected 5m span, got %v", r.AvgSession)
	}
}

func TestBuildReportEmpty(t *testing.T) {
	r := BuildReport(nil)
	if r.Total != 0 || r.Sessions != 0 || r.AvgSession != 0 {
		t.Errorf("expected zeroed report, got %+v", r)
	}
}
