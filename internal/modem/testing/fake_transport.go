// Package testing provides test doubles for the modem package.
package testing

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rileyhilliard/sherry/internal/modem"
)

// Response is one scripted answer.
type Response struct {
	Body string
	Err  error
}

// FakeTransport answers calls from per-path scripts and records every call.
// When a path's script runs out, its last response repeats.
type FakeTransport struct {
	mu      sync.Mutex
	scripts map[string][]Response

	// Calls holds every call received, in order.
	Calls []modem.Call
}

// NewFakeTransport creates an empty fake. Unscripted paths fail.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{
		scripts: make(map[string][]Response),
	}
}

// On appends responses for the request path (e.g. "cgi?5").
func (f *FakeTransport) On(path string, responses ...Response) *FakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[path] = append(f.scripts[path], responses...)
	return f
}

// Reply is shorthand for On with successful bodies.
func (f *FakeTransport) Reply(path string, bodies ...string) *FakeTransport {
	responses := make([]Response, len(bodies))
	for i, b := range bodies {
		responses[i] = Response{Body: b}
	}
	return f.On(path, responses...)
}

// Fail is shorthand for On with one failing response.
func (f *FakeTransport) Fail(path string, err error) *FakeTransport {
	return f.On(path, Response{Err: err})
}

// Send implements modem.Transport.
func (f *FakeTransport) Send(ctx context.Context, call modem.Call) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, call)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := PathOf(call.URL)
	script := f.scripts[path]
	if len(script) == 0 {
		return nil, fmt.Errorf("fake transport: no response for %q", path)
	}

	resp := script[0]
	if len(script) > 1 {
		f.scripts[path] = script[1:]
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return []byte(resp.Body), nil
}

// CallsTo returns how many calls were made to path.
func (f *FakeTransport) CallsTo(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, c := range f.Calls {
		if PathOf(c.URL) == path {
			n++
		}
	}
	return n
}

// PathOf returns the request path of a call URL, without the base.
func PathOf(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
