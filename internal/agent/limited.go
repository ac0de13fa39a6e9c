package agent

import (
	"context"

	"golang.org/x/time/rate"
)

// LimitedClient throttles invocations of the wrapped client. Discovery agents
// meter by request, so the limiter waits rather than dropping.
type LimitedClient struct {
	inner   Client
	limiter *rate.Limiter
}

func NewLimitedClient(inner Client, perSecond float64) *LimitedClient {
	return &LimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(perSecond), 1),
	}
}

func (c *LimitedClient) Invoke(ctx context.Context, message string) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return c.inner.Invoke(ctx, message)
}
