//go:build integration

package repo

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"xivfinder.app/backend/internal/model"
)

// newIntegrationDB connects to the database named by FINDER_POSTGRES_DSN and
// prepares an empty listings table. Skipped when no DSN is configured.
func newIntegrationDB(t *testing.T) *bun.DB {
	t.Helper()
	dsn := os.Getenv("FINDER_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("FINDER_POSTGRES_DSN not set")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	if _, err := db.NewCreateTable().Model((*model.Listing)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := db.NewCreateIndex().
		Model((*model.Listing)(nil)).
		Index("listings_natural_key").
		Unique().
		Column("listing_id", "last_server_restart", "created_world").
		IfNotExists().
		Exec(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := db.NewTruncateTable().Model((*model.Listing)(nil)).Exec(ctx); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestUpsertIdempotentByNaturalKey(t *testing.T) {
	db := newIntegrationDB(t)
	r := NewListing(db)
	ctx := context.Background()

	l := &model.Listing{
		ListingID:         42,
		LastServerRestart: 7,
		CreatedWorld:      1042,
		HomeWorld:         1044,
		CurrentWorld:      1042,
		ContentIDLower:    123456,
		Name:              []byte("Static Seven"),
		Description:       []byte("week one"),
		DutyType:          model.DutyTypeNormal,
		DutyID:            100,
		SlotsAvailable:    1,
		Slots:             []int64{1 << 8},
		JobsPresent:       []int64{0},
		SecondsRemaining:  3600,
	}

	inserted, err := r.Upsert(ctx, l)
	assert.NoError(t, err)
	assert.True(t, inserted)

	var first model.Listing
	assert.NoError(t, db.NewSelect().Model(&first).Where("listing_id = 42").Scan(ctx))

	// let the wall clock advance so the second updated_at is distinguishable
	time.Sleep(20 * time.Millisecond)

	again := *l
	again.Description = []byte("week two")
	again.SecondsRemaining = 1200
	inserted, err = r.Upsert(ctx, &again)
	assert.NoError(t, err)
	assert.False(t, inserted)

	count, err := db.NewSelect().Model((*model.Listing)(nil)).Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	var second model.Listing
	assert.NoError(t, db.NewSelect().Model(&second).Where("listing_id = 42").Scan(ctx))
	assert.WithinDuration(t, first.CreatedAt, second.CreatedAt, 0)
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	assert.Equal(t, []byte("week two"), second.Description)
	assert.Equal(t, uint16(1200), second.SecondsRemaining)
}
