package service

import (
	"context"
	"time"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"xivfinder.app/backend/internal/constant"
	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model"
	modelcache "xivfinder.app/backend/internal/model/cache"
	modelv1 "xivfinder.app/backend/internal/model/v1"
	"xivfinder.app/backend/internal/pkg/cache"
	"xivfinder.app/backend/internal/pkg/sestring"
	"xivfinder.app/backend/internal/repo"
)

// statsSnapshotRetention bounds how long a stale snapshot keeps being served
// if the recomputation worker dies.
const statsSnapshotRetention = time.Hour

type Stats struct {
	ListingRepo     *repo.Listing
	GameDataService *gamedata.Service

	// snapshot persists the last computed aggregate across restarts so a
	// freshly booted process serves numbers immediately.
	snapshot *cache.RedisSingular
}

func NewStats(listingRepo *repo.Listing, gameDataService *gamedata.Service, client *redis.Client) *Stats {
	return &Stats{
		ListingRepo:     listingRepo,
		GameDataService: gameDataService,
		snapshot:        cache.NewRedisSingular(client, "stats:snapshot"),
	}
}

// Refresh recomputes the aggregate from scratch and publishes it. The facet
// queries are independent single-pass aggregations and run concurrently.
func (s *Stats) Refresh(ctx context.Context) (*modelv1.Stats, error) {
	var (
		totalListings   int
		totalSubmitters int
		dutyCounts      []*model.DutyCountResult
		topSubmitters   []*model.SubmitterCountResult
		aliases         []*model.AliasResult
		hourOfDay       []*model.BucketCountResult
		dayOfWeek       []*model.BucketCountResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalListings, err = s.ListingRepo.CountListings(gctx)
		return
	})
	g.Go(func() (err error) {
		totalSubmitters, err = s.ListingRepo.CountSubmitters(gctx)
		return
	})
	g.Go(func() (err error) {
		dutyCounts, err = s.ListingRepo.CalcDutyCounts(gctx)
		return
	})
	g.Go(func() (err error) {
		topSubmitters, err = s.ListingRepo.CalcTopSubmitters(gctx, constant.TopSubmitterCount)
		return
	})
	g.Go(func() (err error) {
		aliases, err = s.ListingRepo.CalcAliases(gctx)
		return
	})
	g.Go(func() (err error) {
		hourOfDay, err = s.ListingRepo.CalcHourOfDay(gctx)
		return
	})
	g.Go(func() (err error) {
		dayOfWeek, err = s.ListingRepo.CalcDayOfWeek(gctx)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	aliasOrder, aliasesBySubmitter := s.groupAliases(aliases)

	stats := &modelv1.Stats{
		UpdatedAt:       time.Now(),
		TotalListings:   totalListings,
		TotalSubmitters: totalSubmitters,
		DutyCounts: lo.Map(dutyCounts, func(r *model.DutyCountResult, _ int) *modelv1.DutyCount {
			return &modelv1.DutyCount{
				DutyType:     r.DutyType,
				DutyCategory: r.DutyCategory,
				DutyID:       r.DutyID,
				Count:        r.Count,
			}
		}),
		Aliases: lo.Map(aliasOrder, func(id uint64, _ int) *modelv1.SubmitterAliases {
			return &modelv1.SubmitterAliases{
				ContentIDLower: id,
				Aliases:        aliasesBySubmitter[id],
			}
		}),
		TopSubmitters: assembleSubmitters(topSubmitters, aliasesBySubmitter),
	}
	for _, b := range hourOfDay {
		if b.Bucket >= 0 && b.Bucket < len(stats.HourOfDay) {
			stats.HourOfDay[b.Bucket] = b.Count
		}
	}
	for _, b := range dayOfWeek {
		if b.Bucket >= 0 && b.Bucket < len(stats.DayOfWeek) {
			stats.DayOfWeek[b.Bucket] = b.Count
		}
	}

	if err := modelcache.Stats.Set(*stats, statsSnapshotRetention); err != nil {
		return nil, err
	}
	if err := s.snapshot.Set(ctx, stats, statsSnapshotRetention); err != nil {
		return nil, err
	}

	return stats, nil
}

// groupAliases groups the flat distinct rows by submitter identity,
// resolving home worlds and decoding packed names. The returned order is the
// first-occurrence order of each identity, kept stable for the view.
func (s *Stats) groupAliases(aliases []*model.AliasResult) ([]uint64, map[uint64][]*modelv1.Alias) {
	var groupedAliases []linq.Group
	linq.From(aliases).
		GroupByT(
			func(el *model.AliasResult) uint64 { return el.ContentIDLower },
			func(el *model.AliasResult) *model.AliasResult { return el }).
		ToSlice(&groupedAliases)

	order := make([]uint64, 0, len(groupedAliases))
	aliasesBySubmitter := make(map[uint64][]*modelv1.Alias, len(groupedAliases))
	for _, group := range groupedAliases {
		contentIdLower := group.Key.(uint64)
		order = append(order, contentIdLower)
		for _, el := range group.Group {
			alias := el.(*model.AliasResult)
			homeWorld := ""
			if w, ok := s.GameDataService.WorldInfo(alias.HomeWorld); ok {
				homeWorld = w.Name
			}
			aliasesBySubmitter[contentIdLower] = append(aliasesBySubmitter[contentIdLower], &modelv1.Alias{
				Name:      sestring.Decode(alias.Name),
				HomeWorld: homeWorld,
			})
		}
	}
	return order, aliasesBySubmitter
}

func assembleSubmitters(counts []*model.SubmitterCountResult, aliasesBySubmitter map[uint64][]*modelv1.Alias) []*modelv1.Submitter {
	return lo.Map(counts, func(r *model.SubmitterCountResult, _ int) *modelv1.Submitter {
		return &modelv1.Submitter{
			ContentIDLower: r.ContentIDLower,
			Count:          r.Count,
			Aliases:        aliasesBySubmitter[r.ContentIDLower],
		}
	})
}

// Get serves the last published snapshot: process memory first, then the
// redis copy written by a previous process, then a synchronous recomputation
// as the cold-start fallback.
func (s *Stats) Get(ctx context.Context) (*modelv1.Stats, error) {
	var stats modelv1.Stats
	if err := modelcache.Stats.Get(&stats); err == nil {
		return &stats, nil
	}

	if err := s.snapshot.Get(ctx, &stats); err == nil {
		if err := modelcache.Stats.Set(stats, statsSnapshotRetention); err != nil {
			return nil, err
		}
		return &stats, nil
	}

	return s.Refresh(ctx)
}
