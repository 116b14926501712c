package fitness

import (
	"sync"
	"time"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

// Summary is the final state of one tracking session
type Summary struct {
	Activity        ActivityType
	Positions       []domain.Position
	DistanceKm      float64
	DurationSeconds int
	Calories        int
}

// Tracker samples positions during one activity session and derives
// distance, duration and a calorie estimate. States are idle and tracking;
// Start resets everything, Stop cancels the position watch and the duration
// ticker and computes the final estimate.
type Tracker struct {
	watcher  domain.PositionWatcher
	interval time.Duration
	onAbort  func(error)

	mu          sync.Mutex
	tracking    bool
	activity    ActivityType
	weightKg    float64
	positions   []domain.Position
	distanceKm  float64
	duration    int
	calories    int
	cancelWatch func()
	stopTick    chan struct{}
}

// Option configures a Tracker
type Option func(*Tracker)

// WithTickInterval overrides the one-second duration tick, for tests
func WithTickInterval(d time.Duration) Option {
	return func(t *Tracker) { t.interval = d }
}

// WithAbortHandler sets the callback invoked when a watcher error aborts
// tracking. The tracker is already back in idle when it fires.
func WithAbortHandler(fn func(error)) Option {
	return func(t *Tracker) { t.onAbort = fn }
}

// NewTracker creates an idle tracker
func NewTracker(watcher domain.PositionWatcher, activity ActivityType, weightKg float64, opts ...Option) *Tracker {
	t := &Tracker{
		watcher:  watcher,
		interval: time.Second,
		activity: activity,
		weightKg: weightKg,
		onAbort:  func(error) {},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTracking reports whether a session is active
func (t *Tracker) IsTracking() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.tracking
}

// Snapshot returns the live values of the current or last session
func (t *Tracker) Snapshot() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.summaryLocked()
}

func (t *Tracker) summaryLocked() Summary {
	positions := make([]domain.Position, len(t.positions))
	copy(positions, t.positions)
	return Summary{
		Activity:        t.activity,
		Positions:       positions,
		DistanceKm:      t.distanceKm,
		DurationSeconds: t.duration,
		Calories:        t.calories,
	}
}

// SetActivity changes the activity type; the estimate is recomputed when a
// session is running.
func (t *Tracker) SetActivity(activity ActivityType) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.activity = activity
	if t.tracking {
		t.calories = Calories(t.activity, t.weightKg, t.duration)
	}
}

// SetWeight changes the body weight used for the estimate
func (t *Tracker) SetWeight(weightKg float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.weightKg = weightKg
	if t.tracking {
		t.calories = Calories(t.activity, t.weightKg, t.duration)
	}
}

// Start begins a session: path, distance and duration reset, the duration
// tick and the position watch begin. Fails when already tracking or when
// no position source is available.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tracking {
		return apperrors.NewValidationError("Tracking is already running")
	}
	if t.watcher == nil {
		return apperrors.NewPermissionError("Geolocation is not supported on this device.")
	}

	cancel, err := t.watcher.Watch(t.onSample, t.onWatchError)
	if err != nil {
		return apperrors.NewPermissionError("Unable to access your location. Please ensure location permissions are enabled.").
			WithContext("cause", err.Error())
	}

	t.tracking = true
	t.positions = nil
	t.distanceKm = 0
	t.duration = 0
	t.calories = 0
	t.cancelWatch = cancel
	t.stopTick = make(chan struct{})

	go t.tickLoop(t.stopTick)

	logger.Info("Activity tracking started", "activity", t.activity)
	return nil
}

// Stop cancels the position watch and the duration ticker, computes the
// final calorie estimate and returns the session summary. Stopping an idle
// tracker returns the last summary unchanged.
func (t *Tracker) Stop() Summary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopLocked()
}

func (t *Tracker) stopLocked() Summary {
	if t.tracking {
		t.tracking = false
		t.cancelWatch()
		t.cancelWatch = nil
		close(t.stopTick)
		t.stopTick = nil
		t.calories = Calories(t.activity, t.weightKg, t.duration)
		logger.Info("Activity tracking stopped",
			"distance_km", t.distanceKm,
			"duration_s", t.duration,
			"calories", t.calories)
	}
	return t.summaryLocked()
}

func (t *Tracker) tickLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.tracking {
				t.duration++
				t.calories = Calories(t.activity, t.weightKg, t.duration)
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) onSample(pos domain.Position) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.tracking {
		return
	}

	if len(t.positions) > 0 {
		t.distanceKm += Distance(t.positions[len(t.positions)-1], pos)
	}
	t.positions = append(t.positions, pos)
}

// onWatchError aborts the session and surfaces a blocking notice
func (t *Tracker) onWatchError(err error) {
	t.mu.Lock()
	wasTracking := t.tracking
	t.stopLocked()
	t.mu.Unlock()

	if !wasTracking {
		return
	}

	logger.Warn("Position watch failed, tracking aborted", "error", err)
	t.onAbort(apperrors.NewPermissionError("Unable to access your location. Please ensure location permissions are enabled.").
		WithContext("cause", err.Error()))
}
