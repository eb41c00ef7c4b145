package v1

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"xivfinder.app/backend/internal/gamedata"
	"xivfinder.app/backend/internal/model/types"
	"xivfinder.app/backend/internal/pkg/pferr"
	"xivfinder.app/backend/internal/server/svr"
	"xivfinder.app/backend/internal/service"
	"xivfinder.app/backend/internal/util/rekuest"
)

type Listing struct {
	fx.In

	ListingService *service.Listing
}

func RegisterListing(v1 *svr.V1, c Listing) {
	v1.Post("/listings", c.Submit)
	v1.Post("/listings/batch", c.SubmitBatch)
	v1.Get("/listings", c.Search)
	v1.Get("/listings/:listingId", buildSanitizer(), c.GetByID)
}

func buildSanitizer() func(ctx *fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		listingId := strings.TrimSpace(ctx.Params("listingId"))

		if _, err := strconv.ParseUint(listingId, 10, 32); err != nil {
			return pferr.ErrInvalidReq.Msg("invalid or missing listingId")
		}

		return ctx.Next()
	}
}

// Submit ingests one listing.
//
// @Summary   Submit a Listing
// @Tags      Listing
// @Accept    json
// @Produce   json
// @Param     listing  body  types.SubmitListing  true  "Listing submission"
// @Success   200  {object}  service.IngestResult
// @Failure   400  {object}  pferr.FinderError  "Invalid or missing parameters"
// @Failure   422  {object}  pferr.FinderError  "Submission rejected"
// @Router    /api/v1/listings [POST]
func (c *Listing) Submit(ctx *fiber.Ctx) error {
	var request types.SubmitListing
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	result, err := c.ListingService.Ingest(ctx.UserContext(), &request)
	if err != nil {
		return err
	}

	return ctx.JSON(result)
}

// SubmitBatch ingests a batch of listings, isolating per-item failures.
//
// @Summary   Submit a batch of Listings
// @Tags      Listing
// @Accept    json
// @Produce   json
// @Param     batch  body  types.BatchSubmitRequest  true  "Batch submission"
// @Success   200  {object}  service.BatchIngestResult
// @Failure   400  {object}  pferr.FinderError  "Invalid or missing parameters"
// @Router    /api/v1/listings/batch [POST]
func (c *Listing) SubmitBatch(ctx *fiber.Ctx) error {
	var request types.BatchSubmitRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}

	return ctx.JSON(c.ListingService.IngestBatch(ctx.UserContext(), request.Listings))
}

type searchRequest struct {
	Page       int    `query:"page"`
	PerPage    int    `query:"per_page"`
	Category   string `query:"category"`
	World      string `query:"world"`
	DataCenter string `query:"datacenter"`
	Search     string `query:"search"`
}

// Search returns the paginated live view.
//
// @Summary   Search live Listings
// @Tags      Listing
// @Produce   json
// @Param     page        query  int     false  "Page number, 1-based"
// @Param     per_page    query  int     false  "Page size, clamped to [1, 100]"
// @Param     category    query  string  false  "Category display name"
// @Param     world       query  string  false  "Created or home world display name"
// @Param     datacenter  query  string  false  "Data center of the created world"
// @Param     search      query  string  false  "Case-insensitive substring of name or description"
// @Success   200  {object}  modelv1.ListingsPage
// @Router    /api/v1/listings [GET]
func (c *Listing) Search(ctx *fiber.Ctx) error {
	var request searchRequest
	if err := ctx.QueryParser(&request); err != nil {
		return pferr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	page, err := c.ListingService.Search(ctx.UserContext(), service.SearchQuery{
		Page:       request.Page,
		PerPage:    request.PerPage,
		Category:   request.Category,
		World:      request.World,
		DataCenter: request.DataCenter,
		Search:     request.Search,
		Lang:       gamedata.MatchLanguage(ctx.Get(fiber.HeaderAcceptLanguage)),
	})
	if err != nil {
		return err
	}

	return ctx.JSON(page)
}

// GetByID returns the detail view of one live listing.
//
// @Summary   Get a Listing
// @Tags      Listing
// @Produce   json
// @Param     listingId  path  int  true  "Listing ID"
// @Success   200  {object}  modelv1.Listing
// @Failure   404  {object}  pferr.FinderError  "Listing not found or no longer live"
// @Router    /api/v1/listings/{listingId} [GET]
func (c *Listing) GetByID(ctx *fiber.Ctx) error {
	listingId, err := strconv.ParseUint(ctx.Params("listingId"), 10, 32)
	if err != nil {
		return pferr.ErrInvalidReq.Msg("invalid or missing listingId")
	}

	listing, err := c.ListingService.GetByListingID(ctx.UserContext(), uint32(listingId), gamedata.MatchLanguage(ctx.Get(fiber.HeaderAcceptLanguage)))
	if err != nil {
		return err
	}

	return ctx.JSON(listing)
}
