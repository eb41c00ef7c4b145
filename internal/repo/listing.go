package repo

import (
	"context"
	"time"

	"github.com/uptrace/bun"

	"xivfinder.app/backend/internal/constant"
	"xivfinder.app/backend/internal/model"
	"xivfinder.app/backend/internal/repo/selector"
)

type Listing struct {
	DB  *bun.DB
	sel selector.S[model.Listing]
}

func NewListing(db *bun.DB) *Listing {
	return &Listing{
		DB:  db,
		sel: selector.New[model.Listing](db),
	}
}

// Upsert writes a listing against its natural key in a single atomic store
// operation. created_at survives from the first insert; every other mutable
// column, updated_at included, takes the submitted value. Returns whether the
// key was newly inserted.
func (r *Listing) Upsert(ctx context.Context, l *model.Listing) (inserted bool, err error) {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	err = r.DB.NewInsert().
		Model(l).
		ExcludeColumn("record_id").
		On("CONFLICT (listing_id, last_server_restart, created_world) DO UPDATE").
		Set("home_world = EXCLUDED.home_world").
		Set("current_world = EXCLUDED.current_world").
		Set("territory = EXCLUDED.territory").
		Set("content_id_lower = EXCLUDED.content_id_lower").
		Set("name = EXCLUDED.name").
		Set("description = EXCLUDED.description").
		Set("duty_type = EXCLUDED.duty_type").
		Set("duty_category = EXCLUDED.duty_category").
		Set("duty_id = EXCLUDED.duty_id").
		Set("min_item_level = EXCLUDED.min_item_level").
		Set("beginners_welcome = EXCLUDED.beginners_welcome").
		Set("objective = EXCLUDED.objective").
		Set("conditions = EXCLUDED.conditions").
		Set("search_area = EXCLUDED.search_area").
		Set("duty_finder_settings = EXCLUDED.duty_finder_settings").
		Set("loot_rules = EXCLUDED.loot_rules").
		Set("slots_available = EXCLUDED.slots_available").
		Set("slots = EXCLUDED.slots").
		Set("jobs_present = EXCLUDED.jobs_present").
		Set("seconds_remaining = EXCLUDED.seconds_remaining").
		Set("updated_at = EXCLUDED.updated_at").
		Returning("(xmax = 0) AS inserted").
		Scan(ctx, &inserted)
	return inserted, err
}

// RecentlyUpdated returns every listing refreshed after cutoff, newest first.
// The scan backstop stays in the query even when cutoff is tighter, bounding
// the history walked regardless of the caller's window.
func (r *Listing) RecentlyUpdated(ctx context.Context, cutoff time.Time) ([]*model.Listing, error) {
	return r.sel.SelectMany(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("l.updated_at > ?", cutoff).
			Where("l.updated_at > ?", time.Now().Add(-constant.ScanBackstop)).
			Order("updated_at DESC")
	})
}

// GetByListingID returns the most recently refreshed record carrying the
// listing id. Ids repeat across server restarts and worlds; the newest record
// is the one a reader means.
func (r *Listing) GetByListingID(ctx context.Context, listingID uint32) (*model.Listing, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("listing_id = ?", listingID).
			Where("updated_at > ?", time.Now().Add(-constant.ScanBackstop)).
			Order("updated_at DESC").
			Limit(1)
	})
}

// The statistics facets below run over all stored records, not windowed to
// the live view.

func (r *Listing) CountListings(ctx context.Context) (int, error) {
	return r.DB.NewSelect().Model((*model.Listing)(nil)).Count(ctx)
}

func (r *Listing) CountSubmitters(ctx context.Context) (int, error) {
	var count int
	err := r.DB.NewSelect().
		Model((*model.Listing)(nil)).
		ColumnExpr("COUNT(DISTINCT content_id_lower)").
		Scan(ctx, &count)
	return count, err
}

func (r *Listing) CalcDutyCounts(ctx context.Context) ([]*model.DutyCountResult, error) {
	results := make([]*model.DutyCountResult, 0)
	err := r.DB.NewSelect().
		Model((*model.Listing)(nil)).
		Column("duty_type", "duty_category", "duty_id").
		ColumnExpr("COUNT(*) AS count").
		Group("duty_type", "duty_category", "duty_id").
		OrderExpr("count DESC").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Listing) CalcTopSubmitters(ctx context.Context, limit int) ([]*model.SubmitterCountResult, error) {
	results := make([]*model.SubmitterCountResult, 0)
	err := r.DB.NewSelect().
		Model((*model.Listing)(nil)).
		Column("content_id_lower").
		ColumnExpr("COUNT(*) AS count").
		Group("content_id_lower").
		OrderExpr("count DESC").
		Limit(limit).
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CalcAliases lists every distinct (name, home world) pair each submitter
// identity has ever been seen as, over the whole table.
func (r *Listing) CalcAliases(ctx context.Context) ([]*model.AliasResult, error) {
	results := make([]*model.AliasResult, 0)
	err := r.DB.NewSelect().
		Model((*model.Listing)(nil)).
		ColumnExpr("DISTINCT content_id_lower, name, home_world").
		OrderExpr("content_id_lower").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Listing) CalcHourOfDay(ctx context.Context) ([]*model.BucketCountResult, error) {
	return r.calcCreatedAtBuckets(ctx, "HOUR")
}

func (r *Listing) CalcDayOfWeek(ctx context.Context) ([]*model.BucketCountResult, error) {
	return r.calcCreatedAtBuckets(ctx, "DOW")
}

func (r *Listing) calcCreatedAtBuckets(ctx context.Context, part string) ([]*model.BucketCountResult, error) {
	results := make([]*model.BucketCountResult, 0)
	err := r.DB.NewSelect().
		Model((*model.Listing)(nil)).
		ColumnExpr("EXTRACT(? FROM created_at AT TIME ZONE 'UTC')::int AS bucket", bun.Safe(part)).
		ColumnExpr("COUNT(*) AS count").
		GroupExpr("bucket").
		OrderExpr("bucket ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, err
	}
	return results, nil
}
