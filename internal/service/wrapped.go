package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shouri123/WRAP-YOUR-GIT/internal/github"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/models"
	"github.com/shouri123/WRAP-YOUR-GIT/internal/stats"
)

// * DataFetcher is the slice of the GitHub client the service needs;
// * *github.Client satisfies it
type DataFetcher interface {
	FetchUserData(ctx context.Context, username, callerToken string) (*github.UserData, error)
}

type WrappedService struct {
	githubClient DataFetcher
}

func NewWrappedService(githubClient DataFetcher) *WrappedService {
	return &WrappedService{
		githubClient: githubClient,
	}
}

// * GetWrapped fetches the user's profile, repositories, and recent events
// * from GitHub and reduces them into a wrapped report. callerToken is the
// * token supplied by the caller (may be empty).
func (s *WrappedService) GetWrapped(ctx context.Context, username, callerToken string) (*models.Report, error) {
	data, err := s.githubClient.FetchUserData(ctx, username, callerToken)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch GitHub data for %s: %w", username, err)
	}

	userStats := stats.Aggregate(data.User, data.Repositories, data.Events)

	// * The personality card is presentational, not statistical
	userStats.Personality = "The Open Sourcerer 🧙‍♂️"
	userStats.PersonalityDesc = fmt.Sprintf(
		"You're most active on %ss during the %s.",
		userStats.BusiestDay,
		strings.ToLower(userStats.BusiestTime),
	)

	bio := data.User.Bio
	if bio == "" {
		bio = "No bio available."
	}
	location := data.User.Location
	if location == "" {
		location = "Earth"
	}

	report := &models.Report{
		Username: data.User.Login,
		Avatar:   data.User.AvatarURL,
		Year:     time.Now().Year(),
		Profile: models.ProfileSummary{
			Bio:       bio,
			Location:  location,
			Joined:    strconv.Itoa(data.User.CreatedAt.Year()),
			Followers: data.User.Followers,
			Following: data.User.Following,
		},
		Stats: userStats,
	}

	return report, nil
}
