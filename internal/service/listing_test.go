package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"xivfinder.app/backend/internal/app/appconfig"
	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
	"xivfinder.app/backend/internal/model/types"
	"xivfinder.app/backend/internal/pkg/pferr"
)

func newListingFixture() *Listing {
	category := newCategoryFixture()
	return NewListing(&appconfig.Config{}, nil, category, category.GameDataService)
}

func validSubmit() *types.SubmitListing {
	return &types.SubmitListing{
		ID:                42,
		LastServerRestart: 7,
		CreatedWorld:      1042,
		HomeWorld:         1044,
		CurrentWorld:      1042,
		ContentIDLower:    123456,
		DutyType:          uint8(model.DutyTypeNormal),
		DutyID:            100,
		SlotsAvailable:    4,
		Slots:             []uint64{1 << 8, 1 << 13, 1 << 11, 1 << 11},
		JobsPresent:       []uint8{19, 0, 0, 0},
		SecondsRemaining:  3600,
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	s := newListingFixture()

	t.Run("valid submission passes through unchanged", func(t *testing.T) {
		l, err := s.Normalize(validSubmit())
		assert.NoError(t, err)
		assert.Equal(t, uint32(42), l.ListingID)
		assert.Equal(t, uint32(7), l.LastServerRestart)
		assert.Equal(t, uint16(1042), l.CreatedWorld)
		assert.Equal(t, model.DutyTypeNormal, l.DutyType)
		assert.Equal(t, []int64{1 << 8, 1 << 13, 1 << 11, 1 << 11}, l.Slots)
		assert.Equal(t, []int64{19, 0, 0, 0}, l.JobsPresent)
		assert.Equal(t, uint16(3600), l.SecondsRemaining)
	})

	t.Run("excessive remaining time is rejected opaquely", func(t *testing.T) {
		submit := validSubmit()
		submit.SecondsRemaining = 3601
		_, err := s.Normalize(submit)
		assert.Same(t, pferr.ErrRejected, err)
	})

	t.Run("remaining time is checked before world ids", func(t *testing.T) {
		submit := validSubmit()
		submit.SecondsRemaining = 3601
		submit.CreatedWorld = 1
		_, err := s.Normalize(submit)
		assert.Same(t, pferr.ErrRejected, err)
	})

	t.Run("reserved world ids are an explicit error", func(t *testing.T) {
		for _, mutate := range []func(*types.SubmitListing){
			func(s *types.SubmitListing) { s.CreatedWorld = 999 },
			func(s *types.SubmitListing) { s.HomeWorld = 0 },
			func(s *types.SubmitListing) { s.CurrentWorld = 500 },
		} {
			submit := validSubmit()
			mutate(submit)
			_, err := s.Normalize(submit)
			if assert.Error(t, err) {
				var e *pferr.FinderError
				if assert.ErrorAs(t, err, &e) {
					assert.Equal(t, pferr.CodeInvalidRequest, e.ErrorCode)
				}
			}
		}
	})
}

func TestIngestBatchIsolatesFailures(t *testing.T) {
	t.Parallel()
	s := newListingFixture()

	bad := validSubmit()
	bad.SecondsRemaining = 3601
	worse := validSubmit()
	worse.ID = 43
	worse.HomeWorld = 999

	result := s.IngestBatch(context.Background(), []*types.SubmitListing{bad, worse})
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 0, result.Successful)
	if assert.Len(t, result.Verdicts, 2) {
		assert.Equal(t, uint32(42), result.Verdicts[0].ListingID)
		assert.Equal(t, "rejected", result.Verdicts[0].Result)
		assert.Equal(t, uint32(43), result.Verdicts[1].ListingID)
		assert.Equal(t, "rejected", result.Verdicts[1].Result)
		assert.NotEmpty(t, result.Verdicts[1].Message)
	}
}

func TestRenderLocation(t *testing.T) {
	t.Parallel()
	s := newListingFixture()
	now := time.Now()

	normalized := func(territory uint16) *model.Listing {
		submit := validSubmit()
		submit.Territory = territory
		l, err := s.Normalize(submit)
		assert.NoError(t, err)
		l.UpdatedAt = now
		return l
	}

	t.Run("unreported territory renders no location", func(t *testing.T) {
		view := s.render(normalized(0), now, gamedata.LangEN)
		assert.Equal(t, "", view.Location)
	})

	t.Run("known territory resolves in the negotiated language", func(t *testing.T) {
		view := s.render(normalized(144), now, gamedata.LangEN)
		assert.Equal(t, "Fixture Saucer Plaza", view.Location)

		view = s.render(normalized(144), now, gamedata.LangJA)
		assert.Equal(t, "フィクスチャ広場", view.Location)
	})

	t.Run("unknown territory degrades to a placeholder", func(t *testing.T) {
		view := s.render(normalized(9999), now, gamedata.LangEN)
		assert.Equal(t, "Unknown (9999)", view.Location)
	})
}

func TestIsLive(t *testing.T) {
	t.Parallel()
	s := newListingFixture()
	now := time.Now()

	base := func() *model.Listing {
		return &model.Listing{SecondsRemaining: 3600, UpdatedAt: now.Add(-time.Minute)}
	}

	t.Run("recently refreshed listing is live", func(t *testing.T) {
		assert.True(t, s.IsLive(base(), now))
	})

	t.Run("listing refreshed six minutes ago is stale", func(t *testing.T) {
		l := base()
		l.UpdatedAt = now.Add(-6 * time.Minute)
		assert.False(t, s.IsLive(l, now))
	})

	t.Run("expired timer excludes the listing", func(t *testing.T) {
		l := base()
		l.SecondsRemaining = 30
		assert.False(t, s.IsLive(l, now))
	})

	t.Run("private listings never appear", func(t *testing.T) {
		l := base()
		l.SearchArea = model.SearchAreaPrivate
		assert.False(t, s.IsLive(l, now))
	})
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	listings := make([]*model.Listing, 5)
	for i := range listings {
		listings[i] = &model.Listing{ListingID: uint32(i)}
	}

	t.Run("middle page", func(t *testing.T) {
		page, p := paginate(listings, 2, 2)
		assert.Len(t, page, 2)
		assert.Equal(t, uint32(2), page[0].ListingID)
		assert.Equal(t, 5, p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("short last page", func(t *testing.T) {
		page, _ := paginate(listings, 3, 2)
		assert.Len(t, page, 1)
	})

	t.Run("page beyond the end is empty but keeps true totals", func(t *testing.T) {
		page, p := paginate(listings, 4, 2)
		assert.Empty(t, page)
		assert.Equal(t, 5, p.Total)
		assert.Equal(t, 3, p.TotalPages)
	})
}

func TestSearchQueryNormalize(t *testing.T) {
	t.Parallel()

	q := SearchQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PerPage)

	q = SearchQuery{Page: 3, PerPage: 500}
	q.Normalize()
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.PerPage)
}

func TestSortForView(t *testing.T) {
	t.Parallel()
	s := newListingFixture()
	now := time.Now().Truncate(5 * time.Minute).Add(time.Minute)

	recent := now.Add(-30 * time.Second)
	older := now.Add(-6 * time.Minute)

	dungeon := func(updatedAt time.Time, secondsRemaining uint16) *model.Listing {
		return &model.Listing{
			DutyType: model.DutyTypeNormal, DutyID: 100,
			UpdatedAt: updatedAt, SecondsRemaining: secondsRemaining,
		}
	}
	raid := func(updatedAt time.Time) *model.Listing {
		return &model.Listing{
			DutyType: model.DutyTypeNormal, DutyID: 102,
			UpdatedAt: updatedAt, SecondsRemaining: 1800,
		}
	}

	oldDungeon := dungeon(older, 3600)
	newRaidA := raid(recent)
	newDungeonSoon := dungeon(recent, 600)
	newDungeonLater := dungeon(recent, 1800)

	listings := []*model.Listing{oldDungeon, newDungeonLater, newRaidA, newDungeonSoon}
	s.sortForView(listings, now)

	// Newest refresh bucket first; within it raids (a later enum value)
	// before dungeons; within dungeons the soonest-expiring first. The
	// stale bucket trails regardless of its longer timer.
	assert.Equal(t, []*model.Listing{newRaidA, newDungeonSoon, newDungeonLater, oldDungeon}, listings)
}
