package types_test

import (
	"encoding/json"
	"sort"
	"testing"

	"github.com/octofit/tracker/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func keysOf(v any) []string {
	raw, err := json.Marshal(v)
	So(err, ShouldBeNil)
	var m map[string]any
	So(json.Unmarshal(raw, &m), ShouldBeNil)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestWireShapes(t *testing.T) {
	Convey("Given each record type", t, func() {
		Convey("Then activities should expose id, name, duration, calories", func() {
			So(keysOf(types.Activity{}), ShouldResemble, []string{"calories", "duration", "id", "name"})
		})

		Convey("Then users should expose id, username, email", func() {
			So(keysOf(types.User{}), ShouldResemble, []string{"email", "id", "username"})
		})

		Convey("Then teams should expose id, name, members", func() {
			So(keysOf(types.Team{}), ShouldResemble, []string{"id", "members", "name"})
		})

		Convey("Then leaderboard entries should use snake_case totals", func() {
			So(keysOf(types.LeaderboardEntry{}), ShouldResemble,
				[]string{"rank", "total_activities", "total_calories", "username"})
		})
	})
}
