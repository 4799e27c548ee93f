// Package registrytest provides an in-memory registry client fake.
// Tests use it to script listing results and per-tag deletion failures,
// and to assert on the calls a command actually made.
package registrytest

import (
	"context"
	"sync"

	"github.com/schmitthub/tagsweep/internal/registry"
)

// FakeClient implements registry.Client in memory.
type FakeClient struct {
	mu sync.Mutex

	// Tags is returned by ListTags, in order.
	Tags []string
	// ListErr, when set, is returned by ListTags.
	ListErr error
	// DeleteErrs maps tag → error for tags whose deletion should fail.
	DeleteErrs map[string]error

	// Deleted records tags passed to successful DeleteTag calls, in order.
	Deleted []string
	// ListCalls and DeleteCalls count invocations.
	ListCalls   int
	DeleteCalls int
}

var _ registry.Client = (*FakeClient)(nil)

// New creates a FakeClient that lists the given tags.
func New(tags ...string) *FakeClient {
	return &FakeClient{Tags: tags}
}

// ListTags returns the scripted tags or error.
func (f *FakeClient) ListTags(_ context.Context, _ string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return append([]string(nil), f.Tags...), nil
}

// DeleteTag records the call and returns any scripted per-tag error.
func (f *FakeClient) DeleteTag(_ context.Context, _ string, tag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if err, ok := f.DeleteErrs[tag]; ok {
		return err
	}
	f.Deleted = append(f.Deleted, tag)
	return nil
}
