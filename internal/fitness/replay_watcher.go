package fitness

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/medichat/medichat-client/internal/domain"
)

// ReplayWatcher emits positions from a track file, one sample per interval.
// Each line is "latitude,longitude"; blank lines and lines starting with #
// are skipped. It stands in for a live GPS device on machines without one.
type ReplayWatcher struct {
	positions []domain.Position
	interval  time.Duration
}

// NewReplayWatcher loads a track file. An empty or missing file is an
// error: a watcher with nothing to report would stall tracking silently.
func NewReplayWatcher(path string, interval time.Duration) (*ReplayWatcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track file: %w", err)
	}
	defer f.Close()

	var positions []domain.Position
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("track file line %d: want \"lat,lon\", got %q", lineNo, line)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("track file line %d: bad latitude: %w", lineNo, err)
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("track file line %d: bad longitude: %w", lineNo, err)
		}
		positions = append(positions, domain.Position{Latitude: lat, Longitude: lon})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read track file: %w", err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("track file %s has no positions", path)
	}

	if interval <= 0 {
		interval = time.Second
	}
	return &ReplayWatcher{positions: positions, interval: interval}, nil
}

// Watch replays the track. The callbacks stop as soon as cancel is called;
// when the track runs out the watcher simply goes quiet, like a GPS with a
// stationary user.
func (w *ReplayWatcher) Watch(onSample func(domain.Position), onError func(error)) (func(), error) {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for i := 0; i < len(w.positions); i++ {
			select {
			case <-stop:
				return
			case <-ticker.C:
				onSample(w.positions[i])
			}
		}
	}()

	cancel := func() {
		once.Do(func() { close(stop) })
	}
	return cancel, nil
}
