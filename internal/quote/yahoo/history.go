package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"nikkeitracker/internal/quote"
)

// Client implements quote.Provider.
var _ quote.Provider = (*Client)(nil)

// History retrieves up to days daily bars for symbol from the chart API.
func (c *Client) History(ctx context.Context, symbol string, days int) ([]quote.Daily, error) {
	if days <= 0 {
		days = 5
	}

	query := url.Values{}
	query.Set("range", fmt.Sprintf("%dd", days))
	query.Set("interval", "1d")

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		break

	case http.StatusNotFound:
		return nil, fmt.Errorf("unknown symbol %q", symbol)

	case http.StatusTooManyRequests:
		return nil, fmt.Errorf("rate limited")

	default:
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	var body chartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("chart error: %s: %s", body.Chart.Error.Code, body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart result for %q", symbol)
	}

	return body.Chart.Result[0].dailies(), nil
}
