package github

import (
	"context"

	"github.com/shouri123/WRAP-YOUR-GIT/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// * FetchUserData issues the profile, repository, and event reads
// * concurrently and fails fast: the first error cancels the remaining
// * calls and no partial result is returned.
func (c *Client) FetchUserData(ctx context.Context, username, callerToken string) (*UserData, error) {
	data := &UserData{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := c.GetUser(gCtx, username, callerToken)
		if err != nil {
			return err
		}
		data.User = user
		return nil
	})

	g.Go(func() error {
		repos, err := c.ListRepositories(gCtx, username, callerToken)
		if err != nil {
			return err
		}
		data.Repositories = repos
		return nil
	})

	g.Go(func() error {
		events, err := c.ListEvents(gCtx, username, callerToken)
		if err != nil {
			return err
		}
		data.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Fetched %d repositories and %d events for %s", len(data.Repositories), len(data.Events), username)
	return data, nil
}
