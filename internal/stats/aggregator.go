package stats

import (
	"math"
	"sort"
	"time"

	"github.com/shouri123/WRAP-YOUR-GIT/internal/github"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/models"
)

var weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// * Aggregate reduces the three upstream GitHub responses into the stats
// * record the story UI renders. It is pure and never fails: empty
// * repository or event lists degrade to zero values and fixed defaults.
// * Presentational fields (personality) are filled by the caller.
func Aggregate(user *github.User, repos []github.Repository, events []github.Event) models.Stats {
	busiestDay, busiestHour := busiestDayAndHour(events)
	pushCount := countEventType(events, github.EventPush)

	return models.Stats{
		Commits:               estimateCommits(pushCount, user.PublicRepos),
		Repos:                 user.PublicRepos,
		StarsReceived:         sumStars(repos),
		Forks:                 sumForks(repos),
		TopLanguages:          topLanguages(repos),
		TopRepositories:       topRepositories(repos),
		BusiestDay:            busiestDay,
		BusiestTime:           timeOfDayLabel(busiestHour),
		LongestStreak:         longestStreak(events),
		MonthlyActivity:       monthlyActivity(events),
		ContributionBreakdown: contributionBreakdown(events),
	}
}

// * estimateCommits is an explicit heuristic, not a real count: the events
// * feed caps at 100 entries and one push bundles several commits, so push
// * events are scaled up. With no recent pushes the repository count is
// * the only signal left.
func estimateCommits(pushCount, publicRepos int) int {
	if pushCount > 0 {
		return pushCount * 12
	}
	return publicRepos * 10
}

func sumStars(repos []github.Repository) int {
	total := 0
	for _, r := range repos {
		total += r.StargazersCount
	}
	return total
}

func sumForks(repos []github.Repository) int {
	total := 0
	for _, r := range repos {
		total += r.ForksCount
	}
	return total
}

// * topLanguages weighs each repository once regardless of its size. Ties
// * keep the order languages were first seen in the repository list.
func topLanguages(repos []github.Repository) []models.LanguageStat {
	counts := make(map[string]int)
	var order []string

	for _, r := range repos {
		if r.Language == "" {
			continue
		}
		if _, seen := counts[r.Language]; !seen {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}

	total := 0
	for _, name := range order {
		total += counts[name]
	}

	langs := make([]models.LanguageStat, 0, len(order))
	for _, name := range order {
		langs = append(langs, models.LanguageStat{
			Name:    name,
			Percent: roundPercent(counts[name], total),
			Color:   ColorForLanguage(name),
		})
	}

	sort.SliceStable(langs, func(i, j int) bool {
		return langs[i].Percent > langs[j].Percent
	})

	if len(langs) > 4 {
		langs = langs[:4]
	}
	return langs
}

func topRepositories(repos []github.Repository) []models.RepositoryStat {
	sorted := make([]github.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StargazersCount > sorted[j].StargazersCount
	})

	if len(sorted) > 4 {
		sorted = sorted[:4]
	}

	top := make([]models.RepositoryStat, 0, len(sorted))
	for _, r := range sorted {
		description := r.Description
		if description == "" {
			description = "No description"
		}
		language := r.Language
		if language == "" {
			language = "Unknown"
		}
		top = append(top, models.RepositoryStat{
			Name:          r.Name,
			Description:   description,
			Stars:         r.StargazersCount,
			Forks:         r.ForksCount,
			Language:      language,
			LanguageColor: ColorForLanguage(language),
		})
	}
	return top
}

// * busiestDayAndHour buckets events by local weekday and hour. Ties go to
// * whichever bucket was filled first; with no events at all the defaults
// * are Monday and noon.
func busiestDayAndHour(events []github.Event) (string, int) {
	dayCounts := make(map[string]int)
	hourCounts := make(map[int]int)
	var dayOrder []string
	var hourOrder []int

	for _, ev := range events {
		local := ev.CreatedAt.Local()
		day := weekdays[int(local.Weekday())]
		hour := local.Hour()

		if _, seen := dayCounts[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		dayCounts[day]++

		if _, seen := hourCounts[hour]; !seen {
			hourOrder = append(hourOrder, hour)
		}
		hourCounts[hour]++
	}

	busiestDay := "Monday"
	best := 0
	for _, day := range dayOrder {
		if dayCounts[day] > best {
			best = dayCounts[day]
			busiestDay = day
		}
	}

	busiestHour := 12
	best = 0
	for _, hour := range hourOrder {
		if hourCounts[hour] > best {
			best = hourCounts[hour]
			busiestHour = hour
		}
	}

	return busiestDay, busiestHour
}

// * timeOfDayLabel maps an hour to its display bucket. Hour 18 still counts
// * as Afternoon; Evening starts at 19.
func timeOfDayLabel(hour int) string {
	switch {
	case hour < 6:
		return "Late Night"
	case hour < 12:
		return "Morning"
	case hour > 18:
		return "Evening"
	default:
		return "Afternoon"
	}
}

// * longestStreak walks the distinct local calendar dates that saw at least
// * one event and returns the longest run of consecutive days.
func longestStreak(events []github.Event) int {
	seen := make(map[string]bool)
	var days []time.Time

	for _, ev := range events {
		local := ev.CreatedAt.Local()
		key := local.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC))
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})

	longest := 1
	current := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// * monthlyActivity counts events per calendar month, Jan through Dec.
// * Multi-year samples fold into the same twelve buckets.
func monthlyActivity(events []github.Event) []models.MonthActivity {
	counts := make([]int, 12)
	for _, ev := range events {
		counts[int(ev.CreatedAt.Local().Month())-1]++
	}

	activity := make([]models.MonthActivity, 12)
	for i, month := range months {
		activity[i] = models.MonthActivity{Month: month, Value: counts[i]}
	}
	return activity
}

// * contributionBreakdown partitions every event into exactly one of four
// * buckets. Percentages are rounded per bucket independently, so they may
// * not sum to exactly 100.
func contributionBreakdown(events []github.Event) []models.BreakdownSlice {
	total := len(events)
	pushes := countEventType(events, github.EventPush)
	prs := countEventType(events, github.EventPullRequest)
	reviews := countEventType(events, github.EventPullRequestReview)
	other := total - pushes - prs - reviews

	return []models.BreakdownSlice{
		{Label: "Commits", Value: roundPercent(pushes, total), Color: "#4ade80"},
		{Label: "PRs", Value: roundPercent(prs, total), Color: "#a78bfa"},
		{Label: "Reviews", Value: roundPercent(reviews, total), Color: "#fbbf24"},
		{Label: "Other", Value: roundPercent(other, total), Color: "#f87171"},
	}
}

func countEventType(events []github.Event, eventType string) int {
	count := 0
	for _, ev := range events {
		if ev.Type == eventType {
			count++
		}
	}
	return count
}

func roundPercent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
