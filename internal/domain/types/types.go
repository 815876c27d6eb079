// Package types contains the record shapes served by the API.
package types

// Activity is one logged workout. Duration is in minutes.
type Activity struct {
	ID       int    `json:"id" koanf:"id"`
	Name     string `json:"name" koanf:"name"`
	Duration int    `json:"duration" koanf:"duration"`
	Calories int    `json:"calories" koanf:"calories"`
}

// User is a registered member.
type User struct {
	ID       int    `json:"id" koanf:"id"`
	Username string `json:"username" koanf:"username"`
	Email    string `json:"email" koanf:"email"`
}

// Team is a group of users; Members is a head count.
type Team struct {
	ID      int    `json:"id" koanf:"id"`
	Name    string `json:"name" koanf:"name"`
	Members int    `json:"members" koanf:"members"`
}

// LeaderboardEntry is one ranked row. Rank is 1-based.
type LeaderboardEntry struct {
	Rank            int    `json:"rank" koanf:"rank"`
	Username        string `json:"username" koanf:"username"`
	TotalCalories   int    `json:"total_calories" koanf:"total_calories"`
	TotalActivities int    `json:"total_activities" koanf:"total_activities"`
}
