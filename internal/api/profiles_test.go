package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"

	"github.com/stretchr/testify/require"
)

func statsHandler(failBids bool) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/bids"):
			if failBids {
				writeJSON(w, http.StatusNotFound, map[string]any{
					"errors": []map[string]any{{"message": "No profile with this name"}}, "status": "Not Found", "statusCode": 404,
				})
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"data": []any{}, "meta": map[string]any{"totalCount": 7}})
		default:
			writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
				"name": "alice", "credits": 900, "_count": map[string]int{"listings": 3, "wins": 2},
			}})
		}
	}
}

func TestClient_FullProfileStats(t *testing.T) {
	t.Parallel()

	client, remote := newTestClient(t, statsHandler(false))

	env, err := client.WithToken("tok").FullProfileStats(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", env.Data.Name)
	require.Equal(t, 3, env.Data.ListingsCount)
	require.Equal(t, 2, env.Data.WinsCount)
	require.Equal(t, 7, env.Data.BidsCount)
	require.Len(t, remote.requests, 2)
}

func TestClient_FullProfileStatsFailure(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, statsHandler(true))

	_, err := client.FullProfileStats(context.Background(), "ghost")
	require.Error(t, err)
	var apiErr *auctionerrors.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "No profile with this name", auctionerrors.Message(err, auctionerrors.MsgUnexpectedRequest))
}

func TestFullProfileStats_Breakdown(t *testing.T) {
	t.Parallel()

	stats := models.FullProfileStats{ListingsCount: 2, BidsCount: 6, WinsCount: 2}
	shares := stats.Breakdown()
	require.Len(t, shares, 3)
	require.InDelta(t, 0.2, shares[0].Percent, 1e-9)
	require.InDelta(t, 0.6, shares[1].Percent, 1e-9)
	require.InDelta(t, 0.2, shares[2].Percent, 1e-9)

	for _, s := range (models.FullProfileStats{}).Breakdown() {
		require.Zero(t, s.Percent)
	}
}

type countingFetcher struct {
	calls atomic.Int32
	err   error
}

func (f *countingFetcher) FullProfileStats(_ context.Context, name string) (models.Envelope[models.FullProfileStats], error) {
	f.calls.Add(1)
	if f.err != nil {
		return models.Envelope[models.FullProfileStats]{}, f.err
	}
	return models.Envelope[models.FullProfileStats]{Data: models.FullProfileStats{
		UserProfile: models.UserProfile{Name: name},
		BidsCount:   int(f.calls.Load()),
	}}, nil
}

func TestStatsCache(t *testing.T) {
	t.Parallel()

	cache, err := NewStatsCache(2, time.Minute)
	require.NoError(t, err)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	fetcher := &countingFetcher{}
	ctx := context.Background()

	first, err := cache.Get(ctx, "seller1", fetcher)
	require.NoError(t, err)
	second, err := cache.Get(ctx, "seller1", fetcher)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.EqualValues(t, 1, fetcher.calls.Load())

	now = now.Add(2 * time.Minute)
	_, err = cache.Get(ctx, "seller1", fetcher)
	require.NoError(t, err)
	require.EqualValues(t, 2, fetcher.calls.Load(), "expired entries are reloaded")

	cache.Invalidate("seller1")
	require.Equal(t, 0, cache.Len())
}

func TestStatsCache_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	cache, err := NewStatsCache(2, time.Minute)
	require.NoError(t, err)

	fetcher := &countingFetcher{err: errors.New("boom")}
	_, err = cache.Get(context.Background(), "seller1", fetcher)
	require.Error(t, err)
	_, err = cache.Get(context.Background(), "seller1", fetcher)
	require.Error(t, err)
	require.EqualValues(t, 2, fetcher.calls.Load())
	require.Equal(t, 0, cache.Len())
}

func TestNewStatsCache_InvalidSize(t *testing.T) {
	t.Parallel()
	_, err := NewStatsCache(0, time.Minute)
	require.Error(t, err)
}
