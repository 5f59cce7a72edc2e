package handler

import (
	"context"
	"net/http"
	"strconv"

	"midnight-auction/internal/listingform"
	"midnight-auction/internal/models"
	"midnight-auction/services/auction/helpers"
	"midnight-auction/utils"

	"github.com/gin-gonic/gin"
)

// showEnded reads the ended toggle of the profile tabs
func showEnded(c *gin.Context) bool {
	ended, _ := strconv.ParseBool(c.Query("ended"))
	return ended
}

// GetProfileHandler handles GET /profile
func (h *AuctionHandler) GetProfileHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	name := sess.Profile.Name
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[models.FullProfileStats], error) {
		return client.FullProfileStats(ctx, name)
	})
	if st.Err != nil {
		fail(c, "GetProfileHandler", st.Err, map[string]any{"user": name})
		return
	}

	view := helpers.ProfileView{Stats: st.Data, Breakdown: st.Data.Breakdown()}
	utils.JSONResponse(c, http.StatusOK, view, "profile retrieved successfully")
	helpers.LogSuccess("GetProfileHandler", "profile retrieved successfully", map[string]any{
		"user":     name,
		"listings": st.Data.ListingsCount,
		"bids":     st.Data.BidsCount,
		"wins":     st.Data.WinsCount,
	})
}

// mergeProfile overlays the fields returned by an update on the stored profile.
// The credit balance always comes from the server.
func mergeProfile(stored, updated models.UserProfile) models.UserProfile {
	merged := stored
	if updated.Name != "" {
		merged.Name = updated.Name
	}
	if updated.Email != "" {
		merged.Email = updated.Email
	}
	merged.Bio = updated.Bio
	if updated.Avatar != nil {
		merged.Avatar = updated.Avatar
	}
	if updated.Banner != nil {
		merged.Banner = updated.Banner
	}
	merged.Credits = updated.Credits
	if updated.Count != nil {
		merged.Count = updated.Count
	}
	return merged
}

// UpdateProfileHandler handles PUT /profile
func (h *AuctionHandler) UpdateProfileHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req helpers.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateProfileHandler", err)
		return
	}

	stored := *sess.Profile
	update := listingform.BuildProfileUpdate(stored, req.Bio, req.AvatarURL)

	client := h.client()
	updated, err := mutate(c.Request.Context(), h.notices, func(ctx context.Context, u models.ProfileUpdate) (models.UserProfile, error) {
		env, err := client.UpdateProfile(ctx, stored.Name, u)
		return env.Data, err
	}, update)
	if err != nil {
		fail(c, "UpdateProfileHandler", err, map[string]any{"user": stored.Name})
		return
	}

	merged := mergeProfile(stored, updated)
	if err := h.session.UpdateProfile(merged); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err, "could not store profile")
		utils.Error("UpdateProfileHandler: failed to store profile", map[string]any{
			"user":  stored.Name,
			"error": err.Error(),
		})
		return
	}
	h.stats.Invalidate(stored.Name)

	utils.JSONResponse(c, http.StatusOK, merged, "profile updated successfully")
	helpers.LogSuccess("UpdateProfileHandler", "profile updated successfully", map[string]any{"user": stored.Name})
}

// GetMyListingsHandler handles GET /profile/listings
func (h *AuctionHandler) GetMyListingsHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	name := sess.Profile.Name
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[[]models.Listing], error) {
		return client.GetProfileListings(ctx, name)
	})
	if st.Err != nil {
		fail(c, "GetMyListingsHandler", st.Err, map[string]any{"user": name})
		return
	}

	view := helpers.TabView[models.Listing]{ShowEnded: showEnded(c), Items: st.Data}
	if !view.ShowEnded {
		view.Items = helpers.ActiveListings(st.Data, h.now())
	}
	if view.Items == nil {
		view.Items = []models.Listing{}
	}
	if len(view.Items) == 0 {
		view.Empty = "No listings to display."
	}

	utils.JSONResponse(c, http.StatusOK, view, "listings retrieved successfully")
	helpers.LogSuccess("GetMyListingsHandler", "listings retrieved successfully", map[string]any{
		"user":  name,
		"count": len(view.Items),
	})
}

// GetMyBidsHandler handles GET /profile/bids. Only the highest bid per listing is shown.
func (h *AuctionHandler) GetMyBidsHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	name := sess.Profile.Name
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[[]models.Bid], error) {
		return client.GetProfileBids(ctx, name)
	})
	if st.Err != nil {
		fail(c, "GetMyBidsHandler", st.Err, map[string]any{"user": name})
		return
	}

	view := helpers.TabView[models.Bid]{ShowEnded: showEnded(c), Items: helpers.HighestBidPerListing(st.Data)}
	if !view.ShowEnded {
		view.Items = helpers.ActiveBids(view.Items, h.now())
	}
	if len(view.Items) == 0 {
		view.Empty = "You have no active bids."
		if view.ShowEnded {
			view.Empty = "You have no bid history."
		}
	}

	utils.JSONResponse(c, http.StatusOK, view, "bids retrieved successfully")
	helpers.LogSuccess("GetMyBidsHandler", "bids retrieved successfully", map[string]any{
		"user":  name,
		"count": len(view.Items),
	})
}

// GetMyWinsHandler handles GET /profile/wins
func (h *AuctionHandler) GetMyWinsHandler(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	name := sess.Profile.Name
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[[]models.Listing], error) {
		return client.GetProfileWins(ctx, name)
	})
	if st.Err != nil {
		fail(c, "GetMyWinsHandler", st.Err, map[string]any{"user": name})
		return
	}

	view := helpers.TabView[models.Listing]{ShowEnded: true, Items: st.Data}
	if view.Items == nil {
		view.Items = []models.Listing{}
	}
	if len(view.Items) == 0 {
		view.Empty = "No won auctions yet!"
	}

	utils.JSONResponse(c, http.StatusOK, view, "wins retrieved successfully")
	helpers.LogSuccess("GetMyWinsHandler", "wins retrieved successfully", map[string]any{
		"user":  name,
		"count": len(view.Items),
	})
}

// GetProfileStatsHandler handles GET /profiles/:name/stats
func (h *AuctionHandler) GetProfileStatsHandler(c *gin.Context) {
	name := c.Param("name")
	client := h.client()
	st := load(c.Request.Context(), h.notices, func(ctx context.Context) (models.Envelope[models.FullProfileStats], error) {
		return h.stats.Get(ctx, name, client)
	})
	if st.Err != nil {
		fail(c, "GetProfileStatsHandler", st.Err, map[string]any{"profile": name})
		return
	}

	view := helpers.ProfileView{Stats: st.Data, Breakdown: st.Data.Breakdown()}
	utils.JSONResponse(c, http.StatusOK, view, "profile stats retrieved successfully")
	helpers.LogSuccess("GetProfileStatsHandler", "profile stats retrieved successfully", map[string]any{"profile": name})
}
