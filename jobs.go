package polydub

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListJobsOptions filters and pages a job listing. Zero values are
// omitted from the query.
type ListJobsOptions struct {
	Offset int
	Limit  int
	Type   string
}

// GetJob fetches a single job by id.
func (c *Client) GetJob(ctx context.Context, jobID string) (*Job, error) {
	var job Job
	if err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns one page of the account's jobs.
func (c *Client) ListJobs(ctx context.Context, opts *ListJobsOptions) (*JobPage, error) {
	params := map[string]string{}
	if opts != nil {
		if opts.Offset > 0 {
			params["offset"] = strconv.Itoa(opts.Offset)
		}
		if opts.Limit > 0 {
			params["limit"] = strconv.Itoa(opts.Limit)
		}
		if opts.Type != "" {
			params["type"] = opts.Type
		}
	}
	var page JobPage
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// DeleteJobs deletes the given jobs and reports whether the server
// acknowledged the deletion.
func (c *Client) DeleteJobs(ctx context.Context, jobIDs []string) (bool, error) {
	body := map[string][]string{"jobIds": jobIDs}
	var result successResponse
	if err := c.do(ctx, http.MethodDelete, "/jobs", body, nil, &result); err != nil {
		return false, err
	}
	return result.Success, nil
}
