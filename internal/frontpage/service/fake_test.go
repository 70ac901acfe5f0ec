package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
)

// call is one recorded upstream request.
type call struct {
	Method string
	Path   string
	Values url.Values
}

// fakeUpstream serves canned JSON bodies keyed by path. A path may map to a list of
// bodies served in order, for paginated endpoints.
type fakeUpstream struct {
	mu     sync.Mutex
	bodies map[string][]string
	errs   map[string]error
	calls  []call
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{bodies: map[string][]string{}, errs: map[string]error{}}
}

func (f *fakeUpstream) on(path string, bodies ...string) *fakeUpstream {
	f.bodies[path] = append(f.bodies[path], bodies...)
	return f
}

func (f *fakeUpstream) fail(path string, err error) *fakeUpstream {
	f.errs[path] = err
	return f
}

func (f *fakeUpstream) Get(ctx context.Context, path string, query url.Values, out any) error {
	return f.serve("GET", path, query, out)
}

func (f *fakeUpstream) PostForm(ctx context.Context, path string, form url.Values, out any) error {
	return f.serve("POST", path, form, out)
}

func (f *fakeUpstream) serve(method, path string, values url.Values, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call{Method: method, Path: path, Values: values})

	if err, ok := f.errs[path]; ok {
		return err
	}
	queue := f.bodies[path]
	if len(queue) == 0 {
		return fmt.Errorf("fake upstream: no response for %s %s", method, path)
	}
	body := queue[0]
	if len(queue) > 1 {
		f.bodies[path] = queue[1:]
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

func (f *fakeUpstream) recorded() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

// post is a listing child builder for tests.
func post(fields string) string {
	return `{"kind":"t3","data":{` + fields + `}}`
}

func listing(after string, children ...string) string {
	return `{"kind":"Listing","data":{"after":` + jsonString(after) +
		`,"children":[` + strings.Join(children, ",") + `]}}`
}

func jsonString(s string) string {
	if s == "" {
		return "null"
	}
	b, _ := json.Marshal(s)
	return string(b)
}

func jsonUnmarshal(s string, out any) error {
	return json.Unmarshal([]byte(s), out)
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
