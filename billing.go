package polydub

import (
	"context"
	"net/http"
	"strconv"
)

// UsageHistoryOptions pages the usage history listing. Zero values are
// omitted from the query.
type UsageHistoryOptions struct {
	Offset int
	Limit  int
}

// Usage returns the account's current billing-period usage.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	var usage Usage
	if err := c.do(ctx, http.MethodGet, "/billing/usage", nil, nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// UsageHistory returns one page of the account's usage history.
func (c *Client) UsageHistory(ctx context.Context, opts *UsageHistoryOptions) (*UsagePage, error) {
	params := map[string]string{}
	if opts != nil {
		if opts.Offset > 0 {
			params["offset"] = strconv.Itoa(opts.Offset)
		}
		if opts.Limit > 0 {
			params["limit"] = strconv.Itoa(opts.Limit)
		}
	}
	var page UsagePage
	if err := c.do(ctx, http.MethodGet, "/billing/usage-history", nil, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
