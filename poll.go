package polydub

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout marks a WaitForJob call that exhausted its wall-clock
// budget before the job reached a terminal state. It is a client-side
// budget violation, not an API failure, so it is deliberately not an
// *APIError.
var ErrWaitTimeout = errors.New("timed out waiting for job")

// DefaultPollInterval is the delay between job polls when WaitOptions
// does not override it.
const DefaultPollInterval = 2 * time.Second

// WaitOptions tunes a WaitForJob call. Timeout is the wall-clock budget
// for the whole polling session; zero means poll until the job is
// terminal or a poll fails.
type WaitOptions struct {
	PollInterval time.Duration
	Timeout      time.Duration
}

// WaitForJob polls the job until it reaches a terminal state
// (completed, failed or cancelled) and returns it as of the poll that
// first observed that state. Errors from an individual poll propagate
// immediately; polling never swallows or retries failures.
func (c *Client) WaitForJob(ctx context.Context, jobID string, opts *WaitOptions) (*Job, error) {
	interval := DefaultPollInterval
	var budget time.Duration
	if opts != nil {
		if opts.PollInterval > 0 {
			interval = opts.PollInterval
		}
		budget = opts.Timeout
	}

	started := c.clock.Now()
	for {
		job, err := c.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.State.IsTerminal() {
			c.logger.Debug().
				Str("job_id", jobID).
				Str("state", job.State.String()).
				Msg("job reached terminal state")
			return job, nil
		}

		if budget > 0 && c.clock.Now().Sub(started) >= budget {
			return nil, fmt.Errorf("%w: job %s not finished after %s", ErrWaitTimeout, jobID, budget)
		}

		if err := c.clock.Sleep(ctx, interval); err != nil {
			return nil, &APIError{Type: ErrorTypeGeneric, Message: err.Error(), Err: err}
		}
	}
}
