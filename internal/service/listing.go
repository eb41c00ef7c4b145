package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"xivfinder.app/backend/internal/app/appconfig"
	"xivfinder.app/backend/internal/constant"
	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
	"xivfinder.app/backend/internal/model/cache"
	"xivfinder.app/backend/internal/model/types"
	modelv1 "xivfinder.app/backend/internal/model/v1"
	"xivfinder.app/backend/internal/pkg/pferr"
	"xivfinder.app/backend/internal/pkg/sestring"
	"xivfinder.app/backend/internal/repo"
)

type Listing struct {
	Config          *appconfig.Config
	ListingRepo     *repo.Listing
	CategoryService *Category
	GameDataService *gamedata.Service
}

func NewListing(conf *appconfig.Config, listingRepo *repo.Listing, categoryService *Category, gameDataService *gamedata.Service) *Listing {
	return &Listing{
		Config:          conf,
		ListingRepo:     listingRepo,
		CategoryService: categoryService,
		GameDataService: gameDataService,
	}
}

// Normalize validates a raw submission into its canonical stored form.
// Ordering matters: the remaining-time sanity bound is checked before the
// world ids, and trips the opaque rejection (the submitting client is
// untrusted and gets no diagnostic detail), whereas a bad world id is an
// explicit validation error.
func (s *Listing) Normalize(submit *types.SubmitListing) (*model.Listing, error) {
	if submit.SecondsRemaining > constant.MaxSecondsRemaining {
		return nil, pferr.ErrRejected
	}

	for _, world := range []uint16{submit.CreatedWorld, submit.HomeWorld, submit.CurrentWorld} {
		if world < constant.MinValidWorldID {
			return nil, pferr.ErrInvalidReq.Msg("invalid request: world id %d is out of the valid range", world)
		}
	}

	slots := lo.Map(submit.Slots, func(m uint64, _ int) int64 { return int64(m) })
	jobsPresent := lo.Map(submit.JobsPresent, func(j uint8, _ int) int64 { return int64(j) })

	return &model.Listing{
		ListingID:         submit.ID,
		LastServerRestart: submit.LastServerRestart,
		CreatedWorld:      submit.CreatedWorld,
		HomeWorld:         submit.HomeWorld,
		CurrentWorld:      submit.CurrentWorld,

		Territory: submit.Territory,

		ContentIDLower: submit.ContentIDLower,

		Name:        submit.Name,
		Description: submit.Description,

		DutyType:     model.DutyType(submit.DutyType),
		DutyCategory: model.DutyCategory(submit.DutyCategory),
		DutyID:       submit.DutyID,

		MinItemLevel:     submit.MinItemLevel,
		BeginnersWelcome: submit.BeginnersWelcome,

		Objective:          model.ObjectiveFlags(submit.Objective),
		Conditions:         model.ConditionFlags(submit.Conditions),
		SearchArea:         model.SearchAreaFlags(submit.SearchArea),
		DutyFinderSettings: model.DutyFinderSettingsFlags(submit.DutyFinderSettings),
		LootRules:          model.LootRuleFlags(submit.LootRules),

		SlotsAvailable: submit.SlotsAvailable,
		Slots:          slots,
		JobsPresent:    jobsPresent,

		SecondsRemaining: submit.SecondsRemaining,
	}, nil
}

// IngestResult reports what a single ingestion did.
type IngestResult struct {
	Inserted bool `json:"inserted"`
}

// Ingest normalizes and persists one submission. Re-ingesting the same
// natural key overwrites every mutable field and advances updated_at, but the
// first-seen created_at survives. The store's upsert is the atomicity
// boundary; no in-process lock spans the round-trip.
func (s *Listing) Ingest(ctx context.Context, submit *types.SubmitListing) (*IngestResult, error) {
	l, err := s.Normalize(submit)
	if err != nil {
		return nil, err
	}

	inserted, err := s.ListingRepo.Upsert(ctx, l)
	if err != nil {
		return nil, err
	}

	return &IngestResult{Inserted: inserted}, nil
}

// BatchVerdict is the per-item outcome of a batch ingestion.
type BatchVerdict struct {
	ListingID uint32 `json:"listingId"`
	Result    string `json:"result"`
	Message   string `json:"message,omitempty"`
}

// BatchIngestResult counts a batch. Failures are isolated per item: one bad
// listing never blocks the rest of the batch.
type BatchIngestResult struct {
	Successful int            `json:"successful"`
	Total      int            `json:"total"`
	Verdicts   []BatchVerdict `json:"verdicts"`
}

func (s *Listing) IngestBatch(ctx context.Context, submits []*types.SubmitListing) *BatchIngestResult {
	result := &BatchIngestResult{
		Total:    len(submits),
		Verdicts: make([]BatchVerdict, 0, len(submits)),
	}
	for _, submit := range submits {
		single, err := s.Ingest(ctx, submit)
		if err != nil {
			log.Warn().Err(err).
				Uint32("listingId", submit.ID).
				Uint16("createdWorld", submit.CreatedWorld).
				Msg("batch ingestion: listing skipped")
			result.Verdicts = append(result.Verdicts, BatchVerdict{
				ListingID: submit.ID,
				Result:    "rejected",
				Message:   err.Error(),
			})
			continue
		}
		verdict := BatchVerdict{ListingID: submit.ID, Result: "updated"}
		if single.Inserted {
			verdict.Result = "inserted"
		}
		result.Verdicts = append(result.Verdicts, verdict)
		result.Successful++
	}
	return result
}

// SearchQuery is the full normalized parameter set of a search request; its
// Key doubles as the cache key.
type SearchQuery struct {
	Page       int
	PerPage    int
	Category   string
	World      string
	DataCenter string
	Search     string
	Lang       gamedata.Lang
}

// Normalize clamps pagination into the documented bounds.
func (q *SearchQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = constant.DefaultPerPage
	}
	if q.PerPage > constant.MaxPerPage {
		q.PerPage = constant.MaxPerPage
	}
}

func (q SearchQuery) Key() string {
	return fmt.Sprintf("%d|%d|%s|%s|%s|%s|%s", q.Page, q.PerPage, q.Category, q.World, q.DataCenter, q.Search, q.Lang)
}

// Cache: listings#query:{key}, 30s (configurable)
func (s *Listing) Search(ctx context.Context, query SearchQuery) (*modelv1.ListingsPage, error) {
	query.Normalize()

	var page modelv1.ListingsPage
	_, err := cache.SearchResults.MutexGetSet(query.Key(), &page, func() (modelv1.ListingsPage, error) {
		return s.search(ctx, query)
	}, s.Config.SearchCacheTTL)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Listing) search(ctx context.Context, query SearchQuery) (modelv1.ListingsPage, error) {
	now := time.Now()

	stored, err := s.ListingRepo.RecentlyUpdated(ctx, now.Add(-constant.MaintainWindow))
	if err != nil {
		// Live listings are ephemeral; a temporarily empty view is an
		// acceptable degradation when the store is unreachable.
		log.Error().Err(err).Msg("listing search: store unavailable, serving empty view")
		stored = nil
	}

	live := lo.Filter(stored, func(l *model.Listing, _ int) bool {
		return s.IsLive(l, now)
	})
	live = s.filter(live, query)
	s.sortForView(live, now)

	paged, pagination := paginate(live, query.Page, query.PerPage)

	data := lo.Map(paged, func(l *model.Listing, _ int) *modelv1.Listing {
		return s.render(l, now, query.Lang)
	})

	return modelv1.ListingsPage{
		Data:       data,
		Pagination: pagination,
	}, nil
}

// Cache: listing#detail:{id}|{lang}, 30s (configurable)
func (s *Listing) GetByListingID(ctx context.Context, listingID uint32, lang gamedata.Lang) (*modelv1.Listing, error) {
	key := fmt.Sprintf("%d|%s", listingID, lang)

	var view modelv1.Listing
	_, err := cache.ListingDetail.MutexGetSet(key, &view, func() (modelv1.Listing, error) {
		l, err := s.ListingRepo.GetByListingID(ctx, listingID)
		if err != nil {
			return modelv1.Listing{}, err
		}
		now := time.Now()
		if !s.IsLive(l, now) {
			return modelv1.Listing{}, pferr.ErrNotFound
		}
		return *s.render(l, now, lang), nil
	}, s.Config.DetailCacheTTL)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// IsLive reports whether a stored record belongs in the public live view:
// its decayed timer has not expired, its submitter refreshed it within the
// maintenance window, and it is not flagged private.
func (s *Listing) IsLive(l *model.Listing, now time.Time) bool {
	if l.TimeLeft(now) < 0 {
		return false
	}
	if now.Sub(l.UpdatedAt) >= constant.MaintainWindow {
		return false
	}
	return !l.SearchArea.Private()
}

func (s *Listing) filter(listings []*model.Listing, query SearchQuery) []*model.Listing {
	if query.Category != "" {
		listings = lo.Filter(listings, func(l *model.Listing, _ int) bool {
			c, ok := s.CategoryService.Resolve(l.DutyType, l.DutyCategory, l.DutyID)
			return ok && c.String() == query.Category
		})
	}
	if query.World != "" {
		listings = lo.Filter(listings, func(l *model.Listing, _ int) bool {
			return s.worldName(l.CreatedWorld) == query.World || s.worldName(l.HomeWorld) == query.World
		})
	}
	if query.DataCenter != "" {
		listings = lo.Filter(listings, func(l *model.Listing, _ int) bool {
			w, ok := s.GameDataService.WorldInfo(l.CreatedWorld)
			return ok && w.DataCenter == query.DataCenter
		})
	}
	if query.Search != "" {
		needle := strings.ToLower(query.Search)
		listings = lo.Filter(listings, func(l *model.Listing, _ int) bool {
			return strings.Contains(strings.ToLower(sestring.Decode(l.Name)), needle) ||
				strings.Contains(strings.ToLower(sestring.Decode(l.Description)), needle)
		})
	}
	return listings
}

// sortForView orders the default view: refresh cohort first so the screen
// does not reshuffle on every poll, then category, then soonest-expiring.
func (s *Listing) sortForView(listings []*model.Listing, now time.Time) {
	sort.SliceStable(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		am, bm := a.UpdatedMinute(), b.UpdatedMinute()
		if !am.Equal(bm) {
			return am.After(bm)
		}
		ac, _ := s.CategoryService.Resolve(a.DutyType, a.DutyCategory, a.DutyID)
		bc, _ := s.CategoryService.Resolve(b.DutyType, b.DutyCategory, b.DutyID)
		if ac != bc {
			return ac > bc
		}
		return a.TimeLeft(now) < b.TimeLeft(now)
	})
}

func paginate(listings []*model.Listing, page, perPage int) ([]*model.Listing, modelv1.Pagination) {
	total := len(listings)
	totalPages := (total + perPage - 1) / perPage

	pagination := modelv1.Pagination{
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}

	// A page past the end yields an empty slice, not an error; the true
	// totals above let the caller correct its request.
	start := (page - 1) * perPage
	if start >= total {
		return []*model.Listing{}, pagination
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return listings[start:end], pagination
}

func (s *Listing) worldName(id uint16) string {
	if w, ok := s.GameDataService.WorldInfo(id); ok {
		return w.Name
	}
	return fmt.Sprintf("Unknown (%d)", id)
}

func (s *Listing) render(l *model.Listing, now time.Time, lang gamedata.Lang) *modelv1.Listing {
	category, _ := s.CategoryService.Resolve(l.DutyType, l.DutyCategory, l.DutyID)

	dataCenter := ""
	if w, ok := s.GameDataService.WorldInfo(l.CreatedWorld); ok {
		dataCenter = w.DataCenter
	}

	location := ""
	if l.Territory != 0 {
		if t, ok := s.GameDataService.TerritoryName(l.Territory); ok {
			location = t.In(lang)
		} else {
			location = fmt.Sprintf("Unknown (%d)", l.Territory)
		}
	}

	masks := l.SlotMasks()
	slots := make([]*modelv1.Slot, len(masks))
	filled := uint8(0)
	for i, m := range masks {
		slot := &modelv1.Slot{}
		if i < len(l.JobsPresent) && l.JobsPresent[i] != 0 {
			filled++
			if j, ok := s.GameDataService.JobInfo(uint8(l.JobsPresent[i])); ok {
				slot.Filled = j.Abbrev
			} else {
				slot.Filled = fmt.Sprintf("Unknown (%d)", l.JobsPresent[i])
			}
		} else if m.Open() {
			slot.Open = true
		} else {
			slot.Tank = m.HasTank()
			slot.Healer = m.HasHealer()
			slot.DPS = m.HasDPS()
		}
		slots[i] = slot
	}

	return &modelv1.Listing{
		ID: l.ListingID,

		Name:        sestring.Decode(l.Name),
		Description: sestring.Decode(l.Description),

		Category: category.String(),
		Duty:     s.CategoryService.DutyName(l, lang),

		MinItemLevel:     l.MinItemLevel,
		BeginnersWelcome: l.BeginnersWelcome,
		CrossWorld:       l.SearchArea.CrossWorld(),
		Practice:         l.Objective.Practice(),
		GreedOnly:        l.LootRules.GreedOnly(),

		CreatedWorld: s.worldName(l.CreatedWorld),
		HomeWorld:    s.worldName(l.HomeWorld),
		CurrentWorld: s.worldName(l.CurrentWorld),
		DataCenter:   dataCenter,

		Location: location,

		SlotsAvailable: l.SlotsAvailable,
		SlotsFilled:    filled,
		Slots:          slots,

		TimeLeft:  l.TimeLeft(now),
		UpdatedAt: l.UpdatedAt,
	}
}
