package pages

import (
	"sort"
	"strconv"
	"time"

	"testdesk/models"
)

type Tile struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Value string `json:"value"`
	Route string `json:"route"`
}

type DashboardSnapshot struct {
	TotalTestCases int             `json:"total_test_cases"`
	AutomatedTests int             `json:"automated_tests"`
	TotalModules   int             `json:"total_modules"`
	TotalReleases  int             `json:"total_releases"`
	LastRelease    *models.Release `json:"last_release"`
	NextRelease    *models.Release `json:"next_release"`
	Tiles          []Tile          `json:"tiles"`
}

// CountAutomated counts test cases whose status is automated or working.
func CountAutomated(testCases []models.TestCase) int {
	n := 0
	for _, tc := range testCases {
		if tc.IsAutomated() {
			n++
		}
	}
	return n
}

// SortReleasesDesc orders by release date, newest first. Releases without a
// parseable date sort as the Unix epoch. The input is not modified.
func SortReleasesDesc(releases []models.Release, loc *time.Location) []models.Release {
	out := make([]models.Release, len(releases))
	copy(out, releases)
	key := func(r models.Release) time.Time {
		if t, ok := r.Date(loc); ok {
			return t
		}
		return time.Unix(0, 0)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]).After(key(out[j]))
	})
	return out
}

// LastCompletedRelease is the most recent release dated before now whose
// overall status is completed.
func LastCompletedRelease(releases []models.Release, now time.Time) *models.Release {
	for _, r := range SortReleasesDesc(releases, now.Location()) {
		t, ok := r.Date(now.Location())
		if ok && t.Before(now) && r.OverallStatus == models.RELEASE_STATUS_COMPLETED {
			rel := r
			return &rel
		}
	}
	return nil
}

// NextRelease is the first release, scanning newest first, that is dated now
// or later or is still in progress / not started. Scanning newest first means
// a later release wins over an earlier upcoming one.
func NextRelease(releases []models.Release, now time.Time) *models.Release {
	for _, r := range SortReleasesDesc(releases, now.Location()) {
		t, ok := r.Date(now.Location())
		upcoming := ok && !t.Before(now)
		if upcoming || r.OverallStatus == models.RELEASE_STATUS_IN_PROGRESS || r.OverallStatus == models.RELEASE_STATUS_NOT_STARTED {
			rel := r
			return &rel
		}
	}
	return nil
}

// BuildDashboard computes every dashboard figure from the three fetched lists.
func BuildDashboard(testCases []models.TestCase, modules []models.Module, releases []models.Release, now time.Time) DashboardSnapshot {
	snap := DashboardSnapshot{
		TotalTestCases: len(testCases),
		AutomatedTests: CountAutomated(testCases),
		TotalModules:   len(modules),
		TotalReleases:  len(releases),
		LastRelease:    LastCompletedRelease(releases, now),
		NextRelease:    NextRelease(releases, now),
	}
	snap.Tiles = dashboardTiles(snap)
	return snap
}

// EmptyDashboard is what the page shows when any fetch failed.
func EmptyDashboard() DashboardSnapshot {
	snap := DashboardSnapshot{}
	snap.Tiles = dashboardTiles(snap)
	return snap
}

func dashboardTiles(s DashboardSnapshot) []Tile {
	return []Tile{
		{Key: "test_cases", Title: "Test Cases", Value: strconv.Itoa(s.TotalTestCases), Route: "/test-cases"},
		{Key: "automated", Title: "Automated Tests", Value: strconv.Itoa(s.AutomatedTests), Route: "/test-cases"},
		{Key: "modules", Title: "Modules", Value: strconv.Itoa(s.TotalModules), Route: "/modules"},
		{Key: "releases", Title: "Releases", Value: strconv.Itoa(s.TotalReleases), Route: "/releases"},
		releaseTile("last_release", "Last Release", s.LastRelease),
		releaseTile("next_release", "Next Release", s.NextRelease),
		{Key: "executions", Title: "Test Executions", Value: "", Route: "/executions"},
		{Key: "issues", Title: "Issues", Value: "", Route: "/issues"},
	}
}

func releaseTile(key, title string, r *models.Release) Tile {
	if r == nil {
		return Tile{Key: key, Title: title, Value: "N/A", Route: "/releases"}
	}
	value := r.Version
	if value == "" {
		value = r.Name
	}
	return Tile{Key: key, Title: title, Value: value, Route: "/releases/" + strconv.FormatInt(r.ID, 10)}
}
