package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"midnight-auction/internal/api"
	"midnight-auction/internal/auctionerrors"
	bidding "midnight-auction/internal/biddingService"
	"midnight-auction/internal/hooks"
	"midnight-auction/internal/listingform"
	"midnight-auction/internal/models"
	"midnight-auction/services/auction/helpers"
	"midnight-auction/utils"

	"github.com/gin-gonic/gin"
)

// HomePageSize is the number of listings on one page of the home grid
const HomePageSize = 20

// homeState remembers the sort and page of the home grid between requests
type homeState struct {
	sort api.SortKey
	page int
}

func newHomeState() homeState {
	return homeState{sort: api.SortCreated, page: 1}
}

// apply moves to the requested sort or page. Changing the sort always goes back to the first page.
func (s *homeState) apply(sortParam, pageParam string) {
	if sortParam != "" {
		key := api.SortKey(sortParam)
		if !key.Valid() {
			key = api.SortCreated
		}
		if key != s.sort {
			s.sort = key
			s.page = 1
			return
		}
	}
	if p, err := strconv.Atoi(pageParam); err == nil && p > 0 {
		s.page = p
	}
}

func (s homeState) query() api.ListingsQuery {
	return api.ListingsQuery{
		Page:       s.page,
		Limit:      HomePageSize,
		Sort:       s.sort,
		SortOrder:  helpers.SortOrderFor(s.sort),
		ActiveOnly: true,
	}
}

// GetListingsHandler handles GET /listings
func (h *AuctionHandler) GetListingsHandler(c *gin.Context) {
	h.mu.Lock()
	h.home.apply(c.Query("sort"), c.Query("page"))
	q := h.home.query()
	h.mu.Unlock()

	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[[]models.Listing], error) {
		return client.GetListings(ctx, q)
	})
	if st.Err != nil {
		fail(c, "GetListingsHandler", st.Err, map[string]any{"sort": q.Sort, "page": q.Page})
		return
	}

	view := helpers.HomeView{
		Title:      helpers.HomeTitle(q.Sort),
		Sort:       string(q.Sort),
		SortOrder:  string(q.SortOrder),
		Page:       q.Page,
		TotalPages: 1,
		Listings:   st.Data,
	}
	if st.Meta != nil && st.Meta.PageCount > 0 {
		view.TotalPages = st.Meta.PageCount
	}
	if view.Listings == nil {
		view.Listings = []models.Listing{}
	}
	if len(view.Listings) == 0 {
		view.Empty = "No listings found."
	}

	utils.JSONResponse(c, http.StatusOK, view, "listings retrieved successfully")
	helpers.LogSuccess("GetListingsHandler", "listings retrieved successfully", map[string]any{
		"sort":  q.Sort,
		"page":  q.Page,
		"count": len(view.Listings),
	})
}

func (h *AuctionHandler) buildListingView(listing models.Listing, flow *bidding.BidFlow) helpers.ListingView {
	eligibility := bidding.Evaluate(listing, h.session.Profile(), h.now())
	return helpers.ListingView{
		Listing:     listing,
		Bids:        bidding.SortBidsDesc(listing.Bids),
		CurrentBid:  bidding.CurrentPrice(listing),
		TotalBids:   listing.Count.Bids,
		Eligibility: eligibility,
		BidInput:    flow.Input(),
		BidState:    flow.State(),
		CanEdit:     eligibility.IsOwner,
	}
}

// GetListingHandler handles GET /listings/:id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	id := c.Param("id")
	view := h.viewFor(id)

	st := view.req.Refetch(c.Request.Context())
	if st.Err != nil {
		fail(c, "GetListingHandler", st.Err, map[string]any{"listing_id": id})
		return
	}

	utils.JSONResponse(c, http.StatusOK, h.buildListingView(st.Data, view.flow), "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": id,
		"bids":       len(st.Data.Bids),
	})
}

// PlaceBidHandler handles POST /listings/:id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	id := c.Param("id")
	view := h.viewFor(id)
	ctx := c.Request.Context()

	// validate against the latest server state
	st := view.req.Refetch(ctx)
	if st.Err != nil {
		fail(c, "PlaceBidHandler", st.Err, map[string]any{"listing_id": id})
		return
	}

	bid, err := view.flow.Submit(ctx, st.Data, sess, string(req.Amount))
	if err != nil {
		if errors.Is(err, auctionerrors.ErrBidRejected) {
			message := view.flow.Error()
			utils.JSONError(c, http.StatusUnprocessableEntity, err, message)
			utils.Warn("PlaceBidHandler: bid rejected by the server", map[string]any{
				"listing_id": id,
				"user":       sess.Profile.Name,
				"error":      err.Error(),
			})
			return
		}
		fail(c, "PlaceBidHandler", err, map[string]any{"listing_id": id, "user": sess.Profile.Name})
		return
	}

	h.stats.Invalidate(sess.Profile.Name)

	// the listing shown after a bid must come from the reloaded server state
	if after := view.req.State(); after.Err != nil {
		utils.JSONResponse(c, http.StatusCreated, helpers.BidPlacedView{
			Bid:          bid,
			BidState:     view.flow.Outcome(),
			RefetchError: after.Error,
		}, "bid placed, listing could not be reloaded")
		utils.Warn("PlaceBidHandler: reload after bid failed", map[string]any{
			"listing_id": id,
			"user":       sess.Profile.Name,
			"error":      after.Err.Error(),
		})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, h.buildListingView(view.req.State().Data, view.flow), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"listing_id": id,
		"user":       sess.Profile.Name,
		"amount":     bid.Amount,
	})
}

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var form listingform.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	payload, err := listingform.Build(form, listingform.ModeCreate, h.now())
	if err != nil {
		h.notices.Error(auctionerrors.Message(err, auctionerrors.MsgUnexpectedMutation))
		fail(c, "CreateListingHandler", err, nil)
		return
	}

	client := h.client()
	created, err := mutate(c.Request.Context(), h.notices, func(ctx context.Context, p models.ListingPayload) (models.Listing, error) {
		env, err := client.CreateListing(ctx, p)
		return env.Data, err
	}, payload)
	if err != nil {
		fail(c, "CreateListingHandler", err, map[string]any{"user": sess.Profile.Name})
		return
	}

	h.stats.Invalidate(sess.Profile.Name)
	utils.JSONResponse(c, http.StatusCreated, helpers.ListingResult{
		Listing:  created,
		Redirect: "/listings/" + created.ID,
	}, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": created.ID,
		"user":       sess.Profile.Name,
		"ends_at":    created.EndsAt,
	})
}

// ownListing loads a listing and checks that the session user sold it.
// On failure the response has been written.
func (h *AuctionHandler) ownListing(c *gin.Context, handlerName string, sess models.Session, id string) (models.Listing, bool) {
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[models.Listing], error) {
		return client.GetListing(ctx, id, true)
	})
	if st.Err != nil {
		fail(c, handlerName, st.Err, map[string]any{"listing_id": id})
		return models.Listing{}, false
	}
	if st.Data.Seller == nil || st.Data.Seller.Name != sess.Profile.Name {
		utils.JSONRedirect(c, http.StatusForbidden, auctionerrors.ErrNotSeller.Error(), "/listings/"+id)
		utils.Warn(handlerName+": not the seller", map[string]any{"listing_id": id, "user": sess.Profile.Name})
		return models.Listing{}, false
	}
	return st.Data, true
}

// GetEditFormHandler handles GET /listings/:id/edit
func (h *AuctionHandler) GetEditFormHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	id := c.Param("id")
	listing, ok := h.ownListing(c, "GetEditFormHandler", sess, id)
	if !ok {
		return
	}
	utils.JSONResponse(c, http.StatusOK, listingform.FromListing(listing), "edit form retrieved successfully")
}

// UpdateListingHandler handles PUT /listings/:id
func (h *AuctionHandler) UpdateListingHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var form listingform.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.HandleBindError(c, "UpdateListingHandler", err)
		return
	}

	id := c.Param("id")
	if _, ok := h.ownListing(c, "UpdateListingHandler", sess, id); !ok {
		return
	}

	payload, err := listingform.Build(form, listingform.ModeEdit, h.now())
	if err != nil {
		h.notices.Error(auctionerrors.Message(err, auctionerrors.MsgUnexpectedMutation))
		fail(c, "UpdateListingHandler", err, map[string]any{"listing_id": id})
		return
	}

	client := h.client()
	updated, err := mutate(c.Request.Context(), h.notices, func(ctx context.Context, p models.ListingPayload) (models.Listing, error) {
		env, err := client.UpdateListing(ctx, id, p)
		return env.Data, err
	}, payload)
	if err != nil {
		fail(c, "UpdateListingHandler", err, map[string]any{"listing_id": id})
		return
	}

	h.dropView(id)
	utils.JSONResponse(c, http.StatusOK, helpers.ListingResult{
		Listing:  updated,
		Redirect: "/listings/" + updated.ID,
	}, "listing updated successfully")
	helpers.LogSuccess("UpdateListingHandler", "listing updated successfully", map[string]any{
		"listing_id": id,
		"user":       sess.Profile.Name,
	})
}

// DeleteListingHandler handles DELETE /listings/:id
func (h *AuctionHandler) DeleteListingHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	id := c.Param("id")
	listing, ok := h.ownListing(c, "DeleteListingHandler", sess, id)
	if !ok {
		return
	}

	client := h.client()
	_, err := mutate(c.Request.Context(), h.notices,
		func(ctx context.Context, listingID string) (struct{}, error) {
			return struct{}{}, client.DeleteListing(ctx, listingID)
		},
		id,
		hooks.WithOnSuccess[string](func(struct{}) {
			h.notices.Success(fmt.Sprintf("\"%s\" was successfully deleted.", listing.Title))
		}),
		hooks.WithOnError[string, struct{}](func(message string) {
			h.notices.Error("Failed to delete listing: " + message)
		}),
	)
	if err != nil {
		fail(c, "DeleteListingHandler", err, map[string]any{"listing_id": id})
		return
	}

	h.dropView(id)
	h.stats.Invalidate(sess.Profile.Name)
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "listing deleted successfully")
	helpers.LogSuccess("DeleteListingHandler", "listing deleted successfully", map[string]any{
		"listing_id": id,
		"user":       sess.Profile.Name,
	})
}

// SearchHandler handles GET /search
func (h *AuctionHandler) SearchHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	view := helpers.SearchView{Query: query, Results: []models.Listing{}}

	if query == "" {
		utils.JSONResponse(c, http.StatusOK, view, "empty search")
		return
	}

	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[[]models.Listing], error) {
		return client.SearchListings(ctx, query, 1, api.DefaultPageSize)
	})
	if st.Err != nil {
		fail(c, "SearchHandler", st.Err, map[string]any{"query": query})
		return
	}

	view.Results = helpers.RankByTitle(query, helpers.ActiveListings(st.Data, h.now()))
	if len(view.Results) == 0 {
		view.Empty = "No results found."
	}

	utils.JSONResponse(c, http.StatusOK, view, "search completed successfully")
	helpers.LogSuccess("SearchHandler", "search completed successfully", map[string]any{
		"query":   query,
		"results": len(view.Results),
	})
}
