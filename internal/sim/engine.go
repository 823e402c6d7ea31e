// Package sim implements the clickstream simulation engine: a fixed
// population of synthetic users and products, a simulated clock, and an
// append-only log buffer filled by randomized user journeys.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rob21runner/induslog/internal/config"
	"github.com/rob21runner/induslog/pkg/logger"
)

// ErrUnknownAction reports a drawn action kind with no registered emitter.
var ErrUnknownAction = errors.New("unknown action kind")

type emitFunc func(User) error

// Engine owns all simulation state. Engines are single-threaded by design:
// one engine runs one simulation at a time, and independent runs use
// independent engines.
type Engine struct {
	users    []User
	products []Product
	clock    Clock
	buffer   []LogEntry
	rng      *rand.Rand
	dispatch map[ActionKind]emitFunc

	journeysPerHour int
	sessionID       string
}

func NewEngine(cfg *config.Config, rng *rand.Rand) (*Engine, error) {
	if cfg.Users <= 0 {
		return nil, fmt.Errorf("user pool size must be positive, got %d", cfg.Users)
	}
	if cfg.Products <= 0 {
		return nil, fmt.Errorf("product pool size must be positive, got %d", cfg.Products)
	}
	if cfg.JourneysPerHour <= 0 {
		return nil, fmt.Errorf("journeys per hour must be positive, got %d", cfg.JourneysPerHour)
	}

	e := &Engine{
		users:           GenerateUsers(rng, cfg.Users),
		products:        GenerateProducts(rng, cfg.Products),
		rng:             rng,
		journeysPerHour: cfg.JourneysPerHour,
	}
	e.clock.Set(time.Now())
	e.dispatch = map[ActionKind]emitFunc{
		ActionPageView:    e.emitPageView,
		ActionProductView: e.emitProductView,
		ActionAddToCart:   e.emitAddToCart,
		ActionPurchase:    e.emitPurchase,
		ActionSearch:      e.emitSearch,
		ActionLogin:       e.emitLogin,
		ActionLogout:      e.emitLogout,
		ActionError:       e.emitError,
	}

	logger.Get().Infow("engine initialized",
		"users", len(e.users),
		"products", len(e.products),
		"journeys_per_hour", e.journeysPerHour,
	)
	return e, nil
}

// Entries returns the log buffer in generation order.
func (e *Engine) Entries() []LogEntry {
	return e.buffer
}

// Clock exposes the simulated clock, mainly for tests.
func (e *Engine) Clock() *Clock {
	return &e.clock
}

// logEvent is the single logging primitive: it stamps the simulated
// timestamp and the journey session id, fills in a random ip and a user
// agent matching the user's device, and appends the entry to the buffer.
func (e *Engine) logEvent(t EventType, u User, data map[string]any) {
	geo := u.Geo
	e.buffer = append(e.buffer, LogEntry{
		Timestamp:  e.clock.Now(),
		EventType:  t,
		SessionID:  e.sessionID,
		UserID:     u.UserID,
		IPAddress:  RandomIP(e.rng),
		UserAgent:  RandomUserAgent(e.rng, u.DeviceType),
		Geo:        &geo,
		DeviceType: u.DeviceType,
		Data:       data,
	})
}

func (e *Engine) perform(kind ActionKind, u User) error {
	emit, ok := e.dispatch[kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, kind)
	}
	return emit(u)
}

// SimulateJourney drives one synthetic session: login, a load-scaled number
// of hour-biased actions, logout. A non-zero start resets the clock first; a
// zero start carries the clock over from the previous journey, chaining
// sessions in simulated time. A failing action is degraded into a code-0
// error event and the journey continues.
func (e *Engine) SimulateJourney(loadFactor float64, start time.Time) {
	if !start.IsZero() {
		e.clock.Set(start)
	}
	u := e.users[e.rng.Intn(len(e.users))]
	e.sessionID = uuid.New().String()

	log := logger.Get().With("session_id", e.sessionID, "user_id", u.UserID)

	_ = e.emitLogin(u)
	mix := ActionMix(e.clock.Now().Hour())
	count := int(float64(5+e.rng.Intn(11)) * loadFactor)

	for i := 0; i < count; i++ {
		kind := mix[e.rng.Intn(len(mix))]
		if err := e.perform(kind, u); err != nil {
			log.Debugw("action degraded to error event", "action", kind, "error", err)
			e.logEvent(EventError, u, map[string]any{
				"user_id":       u.UserID,
				"error_code":    0,
				"error_message": err.Error(),
			})
		}
		e.clock.Advance(e.rng, loadFactor)
	}

	_ = e.emitLogout(u)
	log.Debugw("journey complete", "actions", count)
}

// RunDay simulates hours 0 through 23 of the given day, starting
// journeysPerHour independent journeys at each wall-clock hour with that
// hour's load factor.
func (e *Engine) RunDay(day time.Time) {
	log := logger.Get()
	for hour := 0; hour < 24; hour++ {
		lf := hourLoadFactor(hour)
		start := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		for i := 0; i < e.journeysPerHour; i++ {
			e.SimulateJourney(lf, start)
		}
		log.Debugw("hour simulated", "hour", hour, "load_factor", lf, "buffered", len(e.buffer))
	}
	log.Infow("simulated day complete", "entries", len(e.buffer))
}

// hourLoadFactor models traffic intensity: quiet nights, an evening peak.
func hourLoadFactor(hour int) float64 {
	switch {
	case hour < 6:
		return 0.5
	case hour >= 18 && hour < 20:
		return 2.0
	default:
		return 1.0
	}
}
