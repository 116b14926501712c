package fitness

import (
	"math"
	"strings"

	"github.com/medichat/medichat-client/internal/domain"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two positions in
// kilometers.
func Distance(a, b domain.Position) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*(math.Pi/180))*math.Cos(b.Latitude*(math.Pi/180))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// ActivityType selects the intensity coefficient for calorie estimates
type ActivityType string

const (
	Walking ActivityType = "walking"
	Jogging ActivityType = "jogging"
	Running ActivityType = "running"
)

// MET values per activity: walking 3.5 mph, jogging 5 mph, running 6 mph
var metValues = map[ActivityType]float64{
	Walking: 3.8,
	Jogging: 7.0,
	Running: 9.8,
}

// ParseActivity maps user input to a known activity type
func ParseActivity(s string) (ActivityType, bool) {
	activity := ActivityType(strings.ToLower(s))
	_, ok := metValues[activity]
	return activity, ok
}

// Calories estimates energy burned, rounded to the nearest kcal
func Calories(activity ActivityType, weightKg float64, durationSeconds int) int {
	met, ok := metValues[activity]
	if !ok {
		return 0
	}
	hours := float64(durationSeconds) / 3600
	return int(math.Round(met * weightKg * hours))
}
