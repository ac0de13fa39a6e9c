package agent

import (
	"context"
)

// Client invokes the external discovery agent with a natural-language message
// and returns its payload opaque: a decoded JSON value for platform agents, a
// raw text completion for direct LLM providers. The caller hands the payload
// to the extraction layer untouched.
type Client interface {
	Invoke(ctx context.Context, message string) (any, error)
}
