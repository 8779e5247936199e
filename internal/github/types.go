package github

import "time"

// * Only the fields the stats aggregation reads are modeled. GitHub sends
// * plenty more; the decoder drops the rest at this boundary.

type User struct {
	Login       string    `json:"login"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

type Repository struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
}

type Event struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	EventPush              = "PushEvent"
	EventPullRequest       = "PullRequestEvent"
	EventPullRequestReview = "PullRequestReviewEvent"
)

// UserData bundles the three upstream responses one report is built from.
type UserData struct {
	User         *User
	Repositories []Repository
	Events       []Event
}
