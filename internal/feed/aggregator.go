package feed

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/urielfortunato123-del/verdade-legal-br/internal/model"
)

// MaxItems is the global cap applied after merging all sources. There is no
// per-source quota, so a prolific feed can dominate the result.
const MaxItems = 15

type fetchResult struct {
	source string
	items  []model.NewsItem
	err    error
}

// Aggregator merges the feeds of one category into a single sorted list.
type Aggregator struct {
	fetcher  *Fetcher
	feeds    map[string][]Source
	maxItems int
}

func NewAggregator(fetcher *Fetcher, feeds map[string][]Source) *Aggregator {
	return &Aggregator{fetcher: fetcher, feeds: feeds, maxItems: MaxItems}
}

// Fetch pulls every feed of the category concurrently and returns up to
// MaxItems stories sorted by publication date, newest first. A failing feed
// contributes nothing; the call itself never fails, so an empty result can
// mean either no news or no reachable source.
func (a *Aggregator) Fetch(ctx context.Context, category string) ([]model.NewsItem, string) {
	sources, resolved := SourcesFor(a.feeds, category)

	results := make(chan fetchResult, len(sources))
	var wg sync.WaitGroup

	for _, src := range sources {
		wg.Add(1)
		go func(s Source) {
			defer wg.Done()
			items, err := a.fetcher.FetchSource(ctx, s)
			results <- fetchResult{source: s.Name, items: items, err: err}
		}(src)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	all := make([]model.NewsItem, 0, len(sources))
	for res := range results {
		if res.err != nil {
			slog.Error("feed fetch failed", "source", res.source, "error", res.err)
			continue
		}
		all = append(all, res.items...)
	}

	// Stable sort keeps arrival order for items with equal timestamps.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.After(all[j].PublishedAt)
	})

	if len(all) > a.maxItems {
		all = all[:a.maxItems]
	}

	return all, resolved
}
