package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"main/config"
	"main/model"

	"github.com/sirupsen/logrus"
)

const defaultUserAgent = "portfolio-dashboard/0.1"

// contributionsQuery asks the code-hosting GraphQL API for the full
// contribution calendar of one profile.
const contributionsQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
            color
            weekday
          }
        }
      }
    }
  }
}`

// Github fetches the contribution calendar for the configured profile
// owner. Stateless; safe for concurrent use.
type Github struct {
	client   *http.Client
	baseURL  string
	username string
	token    string
}

func NewGithub(cfg config.Config) *Github {
	return &Github{
		client:   &http.Client{Timeout: cfg.UpstreamTimeout},
		baseURL:  cfg.GithubAPIURL,
		username: cfg.GithubUsername,
		token:    cfg.GithubToken,
	}
}

type graphqlRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

type contributionsResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar model.ContributionCalendar `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// FetchCalendar issues one GraphQL query and decodes the calendar
// substructure into the normalized model. Credentials are checked
// before any network traffic happens.
func (g *Github) FetchCalendar(ctx context.Context) (model.ContributionCalendar, error) {
	var empty model.ContributionCalendar

	if g.token == "" {
		return empty, model.ConfigError("github token is not configured")
	}
	if g.username == "" {
		return empty, model.ConfigError("github username is not configured")
	}

	body, err := json.Marshal(graphqlRequest{
		Query:     contributionsQuery,
		Variables: map[string]string{"login": g.username},
	})
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("github: marshal query: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL, bytes.NewReader(body))
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("github: new request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return empty, model.NetworkError(fmt.Errorf("github: do request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return empty, model.UpstreamError(fmt.Errorf("github: unexpected status %d", resp.StatusCode))
	}

	var decoded contributionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return empty, model.UpstreamError(fmt.Errorf("github: decode response: %w", err))
	}
	if len(decoded.Errors) > 0 {
		return empty, model.UpstreamError(fmt.Errorf("github: graphql error: %s", decoded.Errors[0].Message))
	}
	if decoded.Data.User == nil {
		return empty, model.UpstreamError(fmt.Errorf("github: user %q not found", g.username))
	}

	calendar := decoded.Data.User.ContributionsCollection.ContributionCalendar
	logrus.WithFields(logrus.Fields{
		"provider": "github",
		"user":     g.username,
		"total":    calendar.TotalContributions,
		"weeks":    len(calendar.Weeks),
	}).Debug("contribution calendar fetched")

	return calendar, nil
}
