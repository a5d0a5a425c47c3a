package intelligence

import (
	"context"

	"github.com/alexanderramin/respite/internal/llm"
)

// stubClient is a reachable model returning a canned completion or a
// canned call error.
type stubClient struct {
	text string
	err  error
}

func (s stubClient) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Text: s.text, Model: "stub"}, nil
}

func (s stubClient) Available(_ context.Context) bool { return true }

// offlineClient reports unavailable up front and records whether a call
// was attempted anyway.
type offlineClient struct {
	called *bool
}

func (c offlineClient) Complete(_ context.Context, _ llm.Request) (*llm.Response, error) {
	*c.called = true
	return nil, llm.ErrUnavailable
}

func (c offlineClient) Available(_ context.Context) bool { return false }
