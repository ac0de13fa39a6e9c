package agent

import (
	"context"
)

type MockClient struct {
	Payload any
	Err     error
	Calls   int
}

func (m *MockClient) Invoke(ctx context.Context, message string) (any, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Payload, nil
}
