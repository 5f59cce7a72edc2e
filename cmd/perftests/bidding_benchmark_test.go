package perftests

import (
	"fmt"
	"testing"
	"time"

	bidding "midnight-auction/internal/biddingService"
	"midnight-auction/internal/listingform"
	"midnight-auction/internal/models"
	"midnight-auction/services/auction/helpers"
)

var benchNow = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

func benchListing(numBids int) models.Listing {
	l := models.Listing{
		ID:     "bench",
		Title:  "Benchmark listing",
		EndsAt: benchNow.Add(time.Hour),
		Seller: &models.UserProfile{Name: "seller"},
	}
	for i := 0; i < numBids; i++ {
		l.Bids = append(l.Bids, models.Bid{
			ID:     fmt.Sprintf("bid_%d", i),
			Amount: 50 + i,
			Bidder: models.UserProfile{Name: fmt.Sprintf("user_%d", i)},
		})
	}
	l.Count.Bids = numBids
	return l
}

// Benchmark 1: Validate against a listing with a long bid history
func Benchmark_Validate(b *testing.B) {
	listing := benchListing(200)
	sess := models.Session{Token: "t", Profile: &models.UserProfile{Name: "bidder", Credits: 1_000_000}}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := bidding.Validate(listing, sess, "5000", benchNow); err != nil {
			b.Fatalf("unexpected rejection: %v", err)
		}
	}
}

// Benchmark 2: Evaluate - concurrent readers of the same listing
func Benchmark_Evaluate_Concurrent(b *testing.B) {
	listing := benchListing(200)
	profile := &models.UserProfile{Name: "user_199", Credits: 500}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if e := bidding.Evaluate(listing, profile, benchNow); !e.IsHighestBidder {
				b.Fatal("expected highest bidder")
			}
		}
	})
}

// Benchmark 3: SortBidsDesc on the bid history shown on the detail page
func Benchmark_SortBidsDesc(b *testing.B) {
	bids := benchListing(500).Bids

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bidding.SortBidsDesc(bids)
	}
}

// Benchmark 4: HighestBidPerListing over a large bid history
func Benchmark_HighestBidPerListing(b *testing.B) {
	listings := make([]models.Listing, 50)
	for i := range listings {
		listings[i] = models.Listing{ID: fmt.Sprintf("listing_%d", i), EndsAt: benchNow.Add(time.Hour)}
	}
	bids := make([]models.Bid, 0, 5000)
	for i := 0; i < 5000; i++ {
		bids = append(bids, models.Bid{ID: fmt.Sprintf("bid_%d", i), Amount: i % 97, Listing: &listings[i%len(listings)]})
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if got := helpers.HighestBidPerListing(bids); len(got) != len(listings) {
			b.Fatalf("expected %d bids, got %d", len(listings), len(got))
		}
	}
}

// Benchmark 5: building a create payload from a full form
func Benchmark_BuildListing(b *testing.B) {
	form := listingform.Form{
		Title:        "Brass compass",
		Description:  "<p>Works <b>fine</b></p><script>alert(1)</script>",
		Tags:         "antique, brass, navigation, rare",
		Media:        []listingform.MediaInput{{URL: "https://img.example.com/1.png"}, {URL: "https://img.example.com/2.png"}},
		DurationDays: 7,
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := listingform.Build(form, listingform.ModeCreate, benchNow); err != nil {
			b.Fatalf("failed to build listing: %v", err)
		}
	}
}
