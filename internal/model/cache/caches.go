package cache

import (
	"strings"
	"sync"

	"gopkg.in/guregu/null.v3"

	modelv1 "xivfinder.app/backend/internal/model/v1"
	"xivfinder.app/backend/internal/pkg/cache"
)

type Flusher func() error

var (
	// SearchResults caches paginated search responses, keyed by the full
	// normalized set of query parameters.
	SearchResults *cache.Set[modelv1.ListingsPage]

	// ListingDetail caches single-listing detail responses, keyed by
	// listing id and negotiated language.
	ListingDetail *cache.Set[modelv1.Listing]

	// Stats holds the last computed statistics snapshot.
	Stats *cache.Singular[modelv1.Stats]

	once sync.Once

	SetMap map[string]Flusher
)

func Initialize() {
	once.Do(initializeCaches)
}

// Delete flushes one named cache, or a single key of it when key is set.
// Names are matched case-insensitively, same as their validation.
func Delete(name string, key null.String) error {
	name = strings.ToLower(name)
	if key.Valid {
		if name == "listings#query" {
			return SearchResults.Delete(key.String)
		}
		if name == "listing#detail" {
			return ListingDetail.Delete(key.String)
		}
		return nil
	}
	if f, ok := SetMap[name]; ok {
		return f()
	}
	return nil
}

func initializeCaches() {
	SetMap = make(map[string]Flusher)

	// listing
	SearchResults = cache.NewSet[modelv1.ListingsPage]("listings#query")
	ListingDetail = cache.NewSet[modelv1.Listing]("listing#detail")

	SetMap["listings#query"] = SearchResults.Flush
	SetMap["listing#detail"] = ListingDetail.Flush

	// stats
	Stats = cache.NewSingular[modelv1.Stats]("stats")
}

// Flush drops every keyed cache. Used after bulk backfills.
func Flush() error {
	for _, f := range SetMap {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}
