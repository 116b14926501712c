package fitness

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medichat/medichat-client/internal/domain"
	apperrors "github.com/medichat/medichat-client/internal/errors"
	"github.com/medichat/medichat-client/internal/logger"
)

func init() {
	_ = logger.InitWithConfig(logger.Config{Level: logger.LevelError, OutputPath: "stderr", Format: "text"})
}

func TestDistance_OneDegreeLongitudeAtEquator(t *testing.T) {
	d := Distance(domain.Position{Latitude: 0, Longitude: 0}, domain.Position{Latitude: 0, Longitude: 1})

	// One degree of longitude at the equator is about 111.19 km
	assert.InEpsilon(t, 111.19, d, 0.005)
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	p := domain.Position{Latitude: 40.7128, Longitude: -74.0060}
	assert.InDelta(t, 0, Distance(p, p), 1e-9)
}

func TestDistance_Symmetric(t *testing.T) {
	a := domain.Position{Latitude: 51.5074, Longitude: -0.1278}
	b := domain.Position{Latitude: 48.8566, Longitude: 2.3522}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestCalories(t *testing.T) {
	tests := []struct {
		name     string
		activity ActivityType
		weightKg float64
		seconds  int
		want     int
	}{
		{"walking_one_hour", Walking, 70, 3600, 266},
		{"jogging_one_hour", Jogging, 70, 3600, 490},
		{"running_half_hour", Running, 80, 1800, 392},
		{"zero_duration", Walking, 70, 0, 0},
		{"unknown_activity", ActivityType("swimming"), 70, 3600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Calories(tt.activity, tt.weightKg, tt.seconds))
		})
	}
}

func TestParseActivity(t *testing.T) {
	tests := []struct {
		input string
		want  ActivityType
		ok    bool
	}{
		{"walking", Walking, true},
		{"Jogging", Jogging, true},
		{"RUNNING", Running, true},
		{"cycling", ActivityType("cycling"), false},
		{"", ActivityType(""), false},
	}

	for _, tt := range tests {
		got, ok := ParseActivity(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}

// fakeWatcher hands the callbacks back to the test so it can feed samples
type fakeWatcher struct {
	mu       sync.Mutex
	onSample func(domain.Position)
	onError  func(error)
	watchErr error
	canceled bool
}

func (f *fakeWatcher) Watch(onSample func(domain.Position), onError func(error)) (func(), error) {
	if f.watchErr != nil {
		return nil, f.watchErr
	}
	f.mu.Lock()
	f.onSample = onSample
	f.onError = onError
	f.mu.Unlock()
	return func() {
		f.mu.Lock()
		f.canceled = true
		f.mu.Unlock()
	}, nil
}

func (f *fakeWatcher) feed(lat, lon float64) {
	f.mu.Lock()
	fn := f.onSample
	f.mu.Unlock()
	fn(domain.Position{Latitude: lat, Longitude: lon})
}

func (f *fakeWatcher) fail(err error) {
	f.mu.Lock()
	fn := f.onError
	f.mu.Unlock()
	fn(err)
}

func (f *fakeWatcher) wasCanceled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canceled
}

func TestTracker_AccumulatesDistance(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Hour))

	require.NoError(t, tracker.Start())
	watcher.feed(0, 0)
	watcher.feed(0, 1)
	watcher.feed(0, 2)

	summary := tracker.Stop()
	assert.Len(t, summary.Positions, 3)
	assert.InEpsilon(t, 2*111.19, summary.DistanceKm, 0.005)
}

func TestTracker_StartResetsState(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Hour))

	require.NoError(t, tracker.Start())
	watcher.feed(0, 0)
	watcher.feed(0, 1)
	tracker.Stop()

	require.NoError(t, tracker.Start())
	snap := tracker.Snapshot()
	assert.Empty(t, snap.Positions)
	assert.Zero(t, snap.DistanceKm)
	assert.Zero(t, snap.DurationSeconds)
	assert.Zero(t, snap.Calories)
	tracker.Stop()
}

func TestTracker_StopCancelsWatchAndTicker(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Millisecond))

	require.NoError(t, tracker.Start())
	watcher.feed(0, 0)
	summary := tracker.Stop()

	assert.True(t, watcher.wasCanceled())

	// Samples after stop never change the session
	watcher.feed(0, 5)
	after := tracker.Snapshot()
	assert.Equal(t, summary.DistanceKm, after.DistanceKm)
	assert.Len(t, after.Positions, 1)

	// Duration is frozen once the ticker is gone
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, summary.DurationSeconds, tracker.Snapshot().DurationSeconds)
}

func TestTracker_DurationTick(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Millisecond))

	require.NoError(t, tracker.Start())
	require.Eventually(t, func() bool {
		return tracker.Snapshot().DurationSeconds > 0
	}, time.Second, time.Millisecond, "duration should advance while tracking")
	tracker.Stop()
}

func TestTracker_WatcherErrorAborts(t *testing.T) {
	watcher := &fakeWatcher{}
	var abortErr error
	tracker := NewTracker(watcher, Walking, 70,
		WithTickInterval(time.Hour),
		WithAbortHandler(func(err error) { abortErr = err }))

	require.NoError(t, tracker.Start())
	watcher.fail(errors.New("permission denied"))

	assert.False(t, tracker.IsTracking())
	assert.True(t, watcher.wasCanceled())
	require.Error(t, abortErr)
	assert.Equal(t, apperrors.ErrorTypePermission, apperrors.TypeOf(abortErr))
}

func TestTracker_NoWatcher(t *testing.T) {
	tracker := NewTracker(nil, Walking, 70)

	err := tracker.Start()
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypePermission, apperrors.TypeOf(err))
	assert.False(t, tracker.IsTracking())
}

func TestTracker_CannotStartTwice(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Hour))

	require.NoError(t, tracker.Start())
	err := tracker.Start()
	require.Error(t, err)
	tracker.Stop()
}

func TestTracker_RecomputeOnParameterChange(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Millisecond))

	require.NoError(t, tracker.Start())
	require.Eventually(t, func() bool {
		return tracker.Snapshot().DurationSeconds >= 2
	}, time.Second, time.Millisecond)

	tracker.SetActivity(Running)
	tracker.SetWeight(90)
	snap := tracker.Snapshot()
	assert.Equal(t, Calories(Running, 90, snap.DurationSeconds), snap.Calories)

	summary := tracker.Stop()
	assert.Equal(t, Calories(Running, 90, summary.DurationSeconds), summary.Calories)
}

func TestTracker_FinalCalorieEstimate(t *testing.T) {
	watcher := &fakeWatcher{}
	tracker := NewTracker(watcher, Walking, 70, WithTickInterval(time.Hour))

	require.NoError(t, tracker.Start())
	summary := tracker.Stop()

	// round(3.8 * 70 * 0) with no elapsed time
	assert.Equal(t, 0, summary.Calories)
	assert.False(t, math.IsNaN(summary.DistanceKm))
}
