// Package catalog holds the read-only record tables served by the read routes.
//
// Tables come from configuration when present and fall back to the built-in
// literals otherwise, so every collection is non-empty. A Catalog is built
// once and never mutated; accessors hand out copies.
package catalog

import (
	"slices"

	"github.com/octofit/tracker/internal/domain/types"
)

// Fixtures is the configuration-supplied form of the catalog. Empty tables
// are replaced by the defaults when the catalog is built.
type Fixtures struct {
	Activities  []types.Activity         `koanf:"activities"`
	Users       []types.User             `koanf:"users"`
	Teams       []types.Team             `koanf:"teams"`
	Leaderboard []types.LeaderboardEntry `koanf:"leaderboard"`
}

// Default returns the built-in tables.
func Default() Fixtures {
	return Fixtures{
		Activities: []types.Activity{
			{ID: 1, Name: "Running", Duration: 30, Calories: 300},
			{ID: 2, Name: "Cycling", Duration: 45, Calories: 400},
		},
		Users: []types.User{
			{ID: 1, Username: "john_doe", Email: "john@example.com"},
			{ID: 2, Username: "jane_smith", Email: "jane@example.com"},
		},
		Teams: []types.Team{
			{ID: 1, Name: "Fitness Warriors", Members: 15},
			{ID: 2, Name: "Marathon Runners", Members: 8},
		},
		Leaderboard: []types.LeaderboardEntry{
			{Rank: 1, Username: "john_doe", TotalCalories: 15000, TotalActivities: 45},
			{Rank: 2, Username: "jane_smith", TotalCalories: 12500, TotalActivities: 38},
		},
	}
}

// Catalog is an immutable snapshot of the record tables.
type Catalog struct {
	activities  []types.Activity
	users       []types.User
	teams       []types.Team
	leaderboard []types.LeaderboardEntry
}

// New builds a Catalog from f, filling empty tables from Default and
// ordering the leaderboard by ascending rank.
func New(f Fixtures) *Catalog {
	def := Default()
	c := &Catalog{
		activities:  orDefault(f.Activities, def.Activities),
		users:       orDefault(f.Users, def.Users),
		teams:       orDefault(f.Teams, def.Teams),
		leaderboard: orDefault(f.Leaderboard, def.Leaderboard),
	}
	slices.SortStableFunc(c.leaderboard, func(a, b types.LeaderboardEntry) int {
		return a.Rank - b.Rank
	})
	return c
}

func orDefault[T any](got, def []T) []T {
	if len(got) == 0 {
		return slices.Clone(def)
	}
	return slices.Clone(got)
}

// Activities returns a copy of the activity table.
func (c *Catalog) Activities() []types.Activity { return slices.Clone(c.activities) }

// Users returns a copy of the user table.
func (c *Catalog) Users() []types.User { return slices.Clone(c.users) }

// Teams returns a copy of the team table.
func (c *Catalog) Teams() []types.Team { return slices.Clone(c.teams) }

// Leaderboard returns a copy of the leaderboard ordered by rank.
func (c *Catalog) Leaderboard() []types.LeaderboardEntry { return slices.Clone(c.leaderboard) }
