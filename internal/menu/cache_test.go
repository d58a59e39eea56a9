package menu

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeFetcher struct {
	menu  *Menu
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(ctx context.Context) (*Menu, error) {
	f.calls++
	return f.menu, f.err
}

func sampleMenu() *Menu {
	return &Menu{Categories: []Category{
		{Name: "Bijgerechten", Items: []Item{{Name: "Frietjes", Price: 4.5}}},
		{Name: "Extra's", Items: []Item{{Name: "Parmezaan", Description: "vers geraspt", Price: 2}}},
	}}
}

func TestCache_FetchesWhenEmpty(t *testing.T) {
	f := &fakeFetcher{menu: sampleMenu()}
	c := NewCache(f)
	m := c.GetOrRefresh(context.Background(), DefaultMaxAge)
	if m == nil || f.calls != 1 {
		t.Fatalf("expected one fetch, got menu=%v calls=%d", m, f.calls)
	}
	// A second read within the staleness window must not refetch.
	c.GetOrRefresh(context.Background(), DefaultMaxAge)
	if f.calls != 1 {
		t.Fatalf("expected cached read, got %d fetches", f.calls)
	}
}

func TestCache_RefreshesWhenStale(t *testing.T) {
	f := &fakeFetcher{menu: sampleMenu()}
	c := NewCache(f)
	c.GetOrRefresh(context.Background(), DefaultMaxAge)
	c.fetchedAt = time.Now().Add(-2 * time.Hour)
	c.GetOrRefresh(context.Background(), DefaultMaxAge)
	if f.calls != 2 {
		t.Fatalf("expected refresh of stale cache, got %d fetches", f.calls)
	}
}

func TestCache_ServesStaleOnFailure(t *testing.T) {
	f := &fakeFetcher{menu: sampleMenu()}
	c := NewCache(f)
	want := c.GetOrRefresh(context.Background(), DefaultMaxAge)
	c.fetchedAt = time.Now().Add(-2 * time.Hour)
	f.err = errors.New("menu api down")
	f.menu = nil
	got := c.GetOrRefresh(context.Background(), DefaultMaxAge)
	if got != want {
		t.Fatalf("expected stale menu on fetch failure")
	}
}

func TestCache_NilWhenNeverFetched(t *testing.T) {
	f := &fakeFetcher{err: errors.New("down")}
	c := NewCache(f)
	if m := c.GetOrRefresh(context.Background(), DefaultMaxAge); m != nil {
		t.Fatalf("expected nil menu when no fetch ever succeeded")
	}
}

func TestFormat(t *testing.T) {
	out := Format(sampleMenu())
	for _, want := range []string{"Bijgerechten:", "Extra's:", "Frietjes", "(€4.50)", "vers geraspt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("formatted menu missing %q:\n%s", want, out)
		}
	}
	if Format(nil) != "" {
		t.Fatalf("expected empty string for nil menu")
	}
}
