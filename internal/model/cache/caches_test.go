package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/guregu/null.v3"

	modelv1 "xivfinder.app/backend/internal/model/v1"
	"xivfinder.app/backend/internal/pkg/cache"
)

func TestDeleteMatchesNamesCaseInsensitively(t *testing.T) {
	Initialize()

	assert.NoError(t, SearchResults.Set("q1", modelv1.ListingsPage{}, time.Minute))
	assert.NoError(t, Delete("LISTINGS#QUERY", null.String{}))

	var page modelv1.ListingsPage
	assert.ErrorIs(t, SearchResults.Get("q1", &page), cache.ErrNotFound)
}

func TestDeleteSingleKey(t *testing.T) {
	Initialize()

	assert.NoError(t, ListingDetail.Set("1|en", modelv1.Listing{ID: 1}, time.Minute))
	assert.NoError(t, ListingDetail.Set("2|en", modelv1.Listing{ID: 2}, time.Minute))
	assert.NoError(t, Delete("Listing#Detail", null.StringFrom("1|en")))

	var detail modelv1.Listing
	assert.ErrorIs(t, ListingDetail.Get("1|en", &detail), cache.ErrNotFound)
	assert.NoError(t, ListingDetail.Get("2|en", &detail))
	assert.Equal(t, uint32(2), detail.ID)
}
