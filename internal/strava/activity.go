package strava

import "time"

// activity type as used by the Strava API
const TypeRun = "Run"

// Activity is a summary activity, as returned by
// https://developers.strava.com/docs/reference/#api-Activities-getLoggedInAthleteActivities
type Activity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	SportType          string    `json:"sport_type"`
	DistanceMeters     float64   `json:"distance"`
	MovingTimeSeconds  float64   `json:"moving_time"`
	ElapsedTimeSeconds float64   `json:"elapsed_time"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
	AverageSpeed       float64   `json:"average_speed"`
	StartDateLocal     time.Time `json:"start_date_local"`
}

// Athlete is the currently authenticated athlete profile
type Athlete struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	City      string `json:"city"`
	Country   string `json:"country"`
}
