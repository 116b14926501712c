package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/medichat/medichat-client/internal/fitness"
	"github.com/medichat/medichat-client/internal/utils"
)

func fitnessScreen() *Screen {
	return &Screen{
		Title:        "Fitness tracker",
		RequiresAuth: true,
		Run: func(ctx context.Context, a *App) (string, error) {
			a.printf("\n--- Fitness tracker ---\n")
			a.printf("Commands: start, stop, status, type walking|jogging|running, weight <kg>, back\n")

			for {
				line, ok := a.prompt("fitness> ")
				if !ok {
					return RouteHome, nil
				}
				parts := strings.Fields(line)
				if len(parts) == 0 {
					continue
				}

				switch parts[0] {
				case "back":
					return RouteHome, nil
				case "start":
					if err := a.deps.Tracker.Start(); err != nil {
						a.printf("! %s\n", err)
						continue
					}
					a.printf("Tracking started.\n")
				case "stop":
					summary := a.deps.Tracker.Stop()
					a.printSummary(summary)
				case "status":
					a.printSummary(a.deps.Tracker.Snapshot())
				case "type":
					if len(parts) != 2 {
						a.printf("usage: type walking|jogging|running\n")
						continue
					}
					activity, ok := fitness.ParseActivity(parts[1])
					if !ok {
						a.printf("usage: type walking|jogging|running\n")
						continue
					}
					a.deps.Tracker.SetActivity(activity)
				case "weight":
					if len(parts) != 2 {
						a.printf("usage: weight <kg>\n")
						continue
					}
					kg, err := strconv.ParseFloat(parts[1], 64)
					if err != nil || kg <= 0 {
						a.printf("weight must be a positive number\n")
						continue
					}
					a.deps.Tracker.SetWeight(kg)
				default:
					a.printf("unknown command: %s\n", parts[0])
				}
			}
		},
	}
}

func (a *App) printSummary(s fitness.Summary) {
	state := "idle"
	if a.deps.Tracker.IsTracking() {
		state = "tracking"
	}
	a.printf("[%s] %s  distance %.2f km  duration %s  ~%d kcal  (%d samples)\n",
		state, s.Activity, s.DistanceKm, utils.FormatDuration(s.DurationSeconds), s.Calories, len(s.Positions))
}
