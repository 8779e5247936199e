package models

// * Wire shapes for the wrapped report, matching what the story UI consumes

type Report struct {
	Username string         `json:"username"`
	Avatar   string         `json:"avatar"`
	Year     int            `json:"year"`
	Profile  ProfileSummary `json:"profile"`
	Stats    Stats          `json:"stats"`
}

type ProfileSummary struct {
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Joined    string `json:"joined"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
}

type Stats struct {
	Commits               int              `json:"commits"`
	Repos                 int              `json:"repos"`
	StarsReceived         int              `json:"starsReceived"`
	Forks                 int              `json:"forks"`
	TopLanguages          []LanguageStat   `json:"topLanguages"`
	TopRepositories       []RepositoryStat `json:"topRepositories"`
	BusiestDay            string           `json:"busiestDay"`
	BusiestTime           string           `json:"busiestTime"`
	LongestStreak         int              `json:"longestStreak"`
	Personality           string           `json:"personality"`
	PersonalityDesc       string           `json:"personalityDesc"`
	MonthlyActivity       []MonthActivity  `json:"monthlyActivity"`
	ContributionBreakdown []BreakdownSlice `json:"contributionBreakdown"`
}

type LanguageStat struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

type RepositoryStat struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	Language      string `json:"language"`
	LanguageColor string `json:"languageColor"`
}

type MonthActivity struct {
	Month string `json:"month"`
	Value int    `json:"value"`
}

type BreakdownSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}
