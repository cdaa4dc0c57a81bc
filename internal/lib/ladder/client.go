// Package ladder reads the public Path of Exile ladder API.
package ladder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/deppfellow/ladder-stats/internal/errs"
	"github.com/deppfellow/ladder-stats/internal/model"
	"github.com/pkg/errors"
)

const realm = "pc"

// Client fetches ladder entries for a single account.
type Client struct {
	baseURL    string
	limit      int
	httpClient *http.Client
}

type ladderResponse struct {
	Total   int                 `json:"total"`
	Entries []model.LadderEntry `json:"entries"`
}

func NewClient(baseURL string, limit int, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		limit:      limit,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchEntries returns the ladder entries of accountName in leagueName in
// the order the API reports them. An unknown league is a ResourceNotFound.
func (c *Client) FetchEntries(ctx context.Context, leagueName, accountName string) ([]model.LadderEntry, error) {
	endpoint := c.endpoint(leagueName, accountName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building ladder request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "requesting ladder for league %s", leagueName)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.NewNotFoundError(fmt.Sprintf("No ladder found for league %s.", leagueName), true, nil)
	case resp.StatusCode != http.StatusOK:
		return nil, errors.Errorf("ladder api responded with status %d", resp.StatusCode)
	}

	var body ladderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "decoding ladder response")
	}

	return body.Entries, nil
}

func (c *Client) endpoint(leagueName, accountName string) string {
	query := url.Values{}
	query.Set("realm", realm)
	query.Set("limit", strconv.Itoa(c.limit))
	query.Set("accountName", accountName)

	return fmt.Sprintf("%s/ladders/%s?%s", c.baseURL, url.PathEscape(leagueName), query.Encode())
}
