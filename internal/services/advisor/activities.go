package advisor

import (
	"outdoor-advisor/internal/models"
)

// MaxSuggestions caps how many activities are offered for one reading.
const MaxSuggestions = 6

type ActivityRule struct {
	Activity  models.Activity
	Predicate func(r models.WeatherReading) bool
}

// A nil operand never satisfies a comparison, so rules fail closed on
// missing data.
func between(v *float64, lo, hi float64) bool {
	return v != nil && *v >= lo && *v <= hi
}

func below(v *float64, limit float64) bool {
	return v != nil && *v < limit
}

func tempRain(lo, hi, rain float64) func(models.WeatherReading) bool {
	return func(r models.WeatherReading) bool {
		return between(r.TemperatureC, lo, hi) && below(r.PrecipitationMm, rain)
	}
}

func tempWindRain(lo, hi, wind, rain float64) func(models.WeatherReading) bool {
	return func(r models.WeatherReading) bool {
		return between(r.TemperatureC, lo, hi) && below(r.WindSpeedMs, wind) && below(r.PrecipitationMm, rain)
	}
}

func rainOnly(rain float64) func(models.WeatherReading) bool {
	return func(r models.WeatherReading) bool {
		return below(r.PrecipitationMm, rain)
	}
}

// activityRules is ordered; the order is the suggestion ranking.
var activityRules = []ActivityRule{
	{
		Activity:  models.Activity{ID: "picnic", Title: "Picnic in the Park 🌳", Description: "Sunny and mild, perfect for a group picnic."},
		Predicate: tempRain(18, 28, 1),
	},
	{
		Activity:  models.Activity{ID: "beach-volleyball", Title: "Beach Volleyball 🏖️", Description: "Warm and sunny, gather friends for volleyball."},
		Predicate: tempRain(25, 35, 1),
	},
	{
		Activity:  models.Activity{ID: "hiking", Title: "Group Hiking 🥾", Description: "Cool and dry, explore nearby trails with friends."},
		Predicate: tempRain(10, 22, 2),
	},
	{
		Activity:  models.Activity{ID: "cycling", Title: "Cycling Tour 🚴‍♂️", Description: "Mild temp and low wind, enjoy a group bike ride."},
		Predicate: tempWindRain(15, 25, 6, 1),
	},
	{
		Activity:  models.Activity{ID: "kayaking", Title: "Kayaking Adventure 🚣‍♀️", Description: "Calm waters, fun for small groups."},
		Predicate: tempWindRain(20, 30, 5, 1),
	},
	{
		Activity:  models.Activity{ID: "yoga", Title: "Outdoor Yoga 🧘‍♂️", Description: "Clear skies and mild temp, good for a relaxing group session."},
		Predicate: tempRain(18, 28, 1),
	},
	{
		Activity:  models.Activity{ID: "photography", Title: "Photography Walk 📸", Description: "Cloudy but dry, capture scenic shots with friends."},
		Predicate: rainOnly(2),
	},
	{
		Activity: models.Activity{ID: "kite-flying", Title: "Kite Flying 🌬️", Description: "Windy day, fly kites together in open spaces."},
		Predicate: func(r models.WeatherReading) bool {
			return between(r.WindSpeedMs, 4, 10)
		},
	},
	{
		Activity:  models.Activity{ID: "garden-volunteer", Title: "Garden Volunteer Day 🌱", Description: "Mild weather, help out in community gardens."},
		Predicate: tempRain(15, 28, 1),
	},
	{
		Activity:  models.Activity{ID: "fishing", Title: "Fishing Trip 🎣", Description: "Cool weather, organize a small group fishing activity."},
		Predicate: tempRain(5, 20, 2),
	},
	{
		Activity:  models.Activity{ID: "board-games", Title: "Outdoor Board Games 🎲", Description: "Light rain or cloudy, picnic tables and games with friends."},
		Predicate: rainOnly(2),
	},
	{
		Activity:  models.Activity{ID: "frisbee-soccer", Title: "Frisbee or Soccer ⚽", Description: "Clear skies and moderate temp, perfect for group sports."},
		Predicate: rainOnly(2),
	},
	{
		Activity:  models.Activity{ID: "camping", Title: "Camping Night ⛺", Description: "Dry and mild, set up tents and enjoy outdoor games."},
		Predicate: rainOnly(2),
	},
	{
		Activity:  models.Activity{ID: "bird-watching", Title: "Bird Watching 🐦", Description: "Cool, clear skies, ideal for a group walk in nature."},
		Predicate: rainOnly(2),
	},
	{
		Activity:  models.Activity{ID: "barbecue", Title: "Barbecue Party 🍖", Description: "Warm and sunny, gather friends for food and fun."},
		Predicate: tempRain(20, 32, 1),
	},
}

// Rules returns a copy of the rule table in ranking order.
func Rules() []ActivityRule {
	return append([]ActivityRule(nil), activityRules...)
}

// MatchActivities evaluates every rule against r in declaration order.
// Without a temperature no rule is evaluated.
func MatchActivities(r models.WeatherReading) []models.Activity {
	matches := []models.Activity{}
	if r.TemperatureC == nil {
		return matches
	}

	for _, rule := range activityRules {
		if rule.Predicate(r) {
			matches = append(matches, rule.Activity)
		}
	}
	return matches
}

// Suggest returns at most MaxSuggestions matching activities, best first.
// An empty result means nothing suits the weather.
func Suggest(r models.WeatherReading) []models.Activity {
	matches := MatchActivities(r)
	if len(matches) > MaxSuggestions {
		matches = matches[:MaxSuggestions]
	}
	return matches
}
