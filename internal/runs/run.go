package runs

import (
	"fmt"
	"math"
	"time"

	"github.com/mstanic/runboard/internal/strava"
)

// runs shorter than this do not compete for records
const minRecordDistanceKm = 1.0

type Run struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	DistanceKm          float64   `json:"distanceKm"`
	MovingTimeSeconds   float64   `json:"movingTimeSeconds"`
	ElevationGainMeters float64   `json:"elevationGainMeters"`
	PaceSecPerKm        float64   `json:"paceSecPerKm"`
	StartedAt           time.Time `json:"startedAt"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewRunFromActivity derives the run metrics from a raw Strava activity.
// Missing or zero inputs produce zero valued metrics, never an error:
// a treadmill run with no GPS distance is still a run.
func NewRunFromActivity(activity strava.Activity) Run {
	var distanceKm float64
	if activity.DistanceMeters > 0 {
		distanceKm = round2(activity.DistanceMeters / 1000)
	}

	var movingTimeSeconds float64
	if activity.MovingTimeSeconds > 0 {
		movingTimeSeconds = activity.MovingTimeSeconds
	}

	var elevationGain float64
	if activity.TotalElevationGain > 0 {
		elevationGain = activity.TotalElevationGain
	}

	// pace divides the raw seconds by the already rounded kilometers,
	// and stays 0 when either side is missing
	var paceSecPerKm float64
	if movingTimeSeconds > 0 && distanceKm > 0 {
		paceSecPerKm = movingTimeSeconds / distanceKm
	}

	return Run{
		ID:                  activity.ID,
		Name:                activity.Name,
		DistanceKm:          distanceKm,
		MovingTimeSeconds:   movingTimeSeconds,
		ElevationGainMeters: elevationGain,
		PaceSecPerKm:        paceSecPerKm,
		StartedAt:           activity.StartDateLocal,
	}
}

// MovingTimeMinutes returns the moving time in minutes, rounded to two decimals
func (r Run) MovingTimeMinutes() float64 {
	if r.MovingTimeSeconds <= 0 {
		return 0
	}
	return round2(r.MovingTimeSeconds / 60)
}

// PaceDisplay returns the pace as "M:SS min/km", or "N/A" for pace-less runs
func (r Run) PaceDisplay() string {
	return FormatPace(r.PaceSecPerKm)
}

// FormatPace renders seconds-per-km as "M:SS min/km"; 0 renders as "N/A"
func FormatPace(paceSecPerKm float64) string {
	if paceSecPerKm <= 0 {
		return "N/A"
	}
	totalSeconds := int(paceSecPerKm)
	return fmt.Sprintf("%d:%02d min/km", totalSeconds/60, totalSeconds%60)
}

// FormatDurationMin renders a duration given in minutes as "Xh Ymin"
func FormatDurationMin(minutes float64) string {
	if minutes <= 0 {
		return "0h 0min"
	}
	totalMinutes := int(minutes)
	return fmt.Sprintf("%dh %dmin", totalMinutes/60, totalMinutes%60)
}

func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
