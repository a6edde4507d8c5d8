package plan

import (
	"fmt"
	"math/rand"
	"time"
)

// weatherConditions stand in for a real forecast service. The pick is seeded
// from the session date so the same date always yields the same advisory.
var weatherConditions = []string{
	"Clear skies - perfect for running! Temperature around 65°F (18°C).",
	"Partly cloudy - good running weather. Light breeze expected.",
	"Overcast but dry - ideal running conditions, cooler temperatures.",
	"Light rain possible - consider indoor alternatives or waterproof gear.",
	"Hot and sunny - run early morning or evening, stay hydrated!",
	"Cool and crisp - great running weather, dress in layers.",
	"Windy conditions - choose a sheltered route if possible.",
}

// NoLocationAdvisory is emitted when the profile has no location set.
const NoLocationAdvisory = "No location provided - check weather forecast before your workout!"

// WeatherAdvisory returns a deterministic weather suggestion for a session.
// The seed is date.Day() + month, so regenerating a plan for the same start
// date produces identical advisories.
func WeatherAdvisory(location string, date time.Time) string {
	rng := rand.New(rand.NewSource(int64(date.Day() + int(date.Month()))))
	condition := weatherConditions[rng.Intn(len(weatherConditions))]
	return fmt.Sprintf("Weather forecast for %s: %s", location, condition)
}
