package teams

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const searchPath = "/searchteams.php"

// ErrDoesNotExist - error returned when the search matches no team
var ErrDoesNotExist = errors.New("team does not exist")

// Team - Struct to parse a team record from the sports-metadata API
type Team struct {
	ID        string `json:"idTeam"`
	Name      string `json:"strTeam"`
	TeamBadge string `json:"strTeamBadge"`
	TeamLogo  string `json:"strTeamLogo"`
	Badge     string `json:"strBadge"`
	Logo      string `json:"strLogo"`
}

// ImageURL returns the badge URL, falling back to the logo URL.
// Empty when the record carries neither.
func (t Team) ImageURL() string {
	for _, u := range []string{t.TeamBadge, t.Badge, t.TeamLogo, t.Logo} {
		if u != "" {
			return u
		}
	}
	return ""
}

type searchResponse struct {
	Teams []Team `json:"teams"`
}

type fetcher struct {
	url    string
	client *http.Client
}

// Fetcher interface to search team information by name
type Fetcher interface {
	Search(ctx context.Context, name string) ([]Team, error)
}

// New returns a HTTP implementation of Fetcher. A zero timeout leaves
// the transport defaults in place.
func New(baseURL string, timeout time.Duration) Fetcher {
	return fetcher{
		url: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Search - searches teams by name. A single attempt is made.
func (f fetcher) Search(ctx context.Context, name string) ([]Team, error) {
	logger := zerolog.Ctx(ctx).
		With().
		Str("_function", "fetcher.Search").
		Str("team", name).
		Logger()

	query := url.Values{}
	query.Set("t", name)
	u := f.url + searchPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request to team search: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling team search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("team search: got non ok status: %d", resp.StatusCode)
	}

	body := searchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding team search response: %w", err)
	}

	if len(body.Teams) == 0 {
		return nil, ErrDoesNotExist
	}

	logger.Debug().Msgf("team search returned %d records", len(body.Teams))
	return body.Teams, nil
}
