package hooks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"

	"github.com/stretchr/testify/require"
)

func staticProducer(v string, err error) Producer[string] {
	return func(context.Context) (models.Envelope[string], error) {
		if err != nil {
			return models.Envelope[string]{}, err
		}
		return models.Envelope[string]{Data: v, Meta: &models.Meta{TotalCount: 1}}, nil
	}
}

func TestRequest_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		producer   Producer[string]
		wantData   string
		wantError  string
		wantNotice bool
	}{
		{
			name:     "success",
			producer: staticProducer("listing", nil),
			wantData: "listing",
		},
		{
			name: "structured_api_error",
			producer: staticProducer("", &auctionerrors.APIError{
				Errors:     []auctionerrors.ErrorDetail{{Message: "No listing with such ID"}},
				Status:     "Not Found",
				StatusCode: 404,
			}),
			wantError:  "No listing with such ID",
			wantNotice: true,
		},
		{
			name:       "api_error_without_messages",
			producer:   staticProducer("", &auctionerrors.APIError{StatusCode: 500}),
			wantError:  auctionerrors.MsgEmptyAPIError,
			wantNotice: true,
		},
		{
			name:       "transport_error",
			producer:   staticProducer("", &auctionerrors.TransportError{Op: "GET /listings", Err: errors.New("dial tcp: refused")}),
			wantError:  auctionerrors.MsgUnexpectedRequest,
			wantNotice: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			center := notify.NewCenter(10)
			r := NewRequest(tc.producer, center)
			require.True(t, r.State().IsLoading, "a new request starts loading")

			st := r.Fetch(context.Background())
			require.False(t, st.IsLoading)
			require.Equal(t, tc.wantError, st.Error)
			require.Equal(t, tc.wantData, st.Data)
			require.Equal(t, tc.wantError == "", st.HasData)
			require.Equal(t, tc.wantError == "", st.Err == nil)

			notes := center.Drain()
			if tc.wantNotice {
				require.Len(t, notes, 1)
				require.Equal(t, tc.wantError, notes[0].Message)
			} else {
				require.Empty(t, notes)
			}
		})
	}
}

func TestRequest_ErrorWithoutNotifier(t *testing.T) {
	t.Parallel()

	r := NewRequest(staticProducer("", &auctionerrors.APIError{
		Errors:     []auctionerrors.ErrorDetail{{Message: "No listing with such ID"}},
		StatusCode: 404,
	}), nil)
	defer r.Close()

	var st RequestState[string]
	require.NotPanics(t, func() { st = r.Fetch(context.Background()) })
	require.Equal(t, "No listing with such ID", st.Error)
	require.Error(t, st.Err)
}

func TestRequest_ErrorKeepsPreviousData(t *testing.T) {
	t.Parallel()

	fail := false
	r := UseRequest(context.Background(), func(context.Context) (models.Envelope[int], error) {
		if fail {
			return models.Envelope[int]{}, errors.New("boom")
		}
		return models.Envelope[int]{Data: 7}, nil
	}, notify.NewCenter(10))
	require.Equal(t, 7, r.State().Data)

	fail = true
	st := r.Refetch(context.Background())
	require.Equal(t, 7, st.Data)
	require.Equal(t, auctionerrors.MsgUnexpectedRequest, st.Error)

	fail = false
	st = r.Refetch(context.Background())
	require.Empty(t, st.Error, "success clears the error")
}

func TestRequest_SetProducerRefetches(t *testing.T) {
	t.Parallel()

	r := UseRequest(context.Background(), staticProducer("first", nil), notify.NewCenter(10))
	require.Equal(t, "first", r.State().Data)

	st := r.SetProducer(context.Background(), staticProducer("second", nil))
	require.Equal(t, "second", st.Data)
	require.Equal(t, 1, st.Meta.TotalCount)
}

func TestRequest_StaleResponseIsDiscarded(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex

	r := NewRequest(func(context.Context) (models.Envelope[string], error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-release
			return models.Envelope[string]{Data: "old"}, nil
		}
		return models.Envelope[string]{Data: "new"}, nil
	}, notify.NewCenter(10))

	done := make(chan RequestState[string])
	go func() { done <- r.Fetch(context.Background()) }()
	<-started

	// the newer call resolves first
	st := r.Fetch(context.Background())
	require.Equal(t, "new", st.Data)

	close(release)
	<-done
	require.Equal(t, "new", r.State().Data, "the older response must not overwrite the newer one")
	require.False(t, r.State().IsLoading)
}

func TestRequest_CloseDiscardsResults(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	r := NewRequest(func(context.Context) (models.Envelope[string], error) {
		close(started)
		<-release
		return models.Envelope[string]{Data: "late"}, nil
	}, notify.NewCenter(10))

	done := make(chan struct{})
	go func() {
		r.Fetch(context.Background())
		close(done)
	}()
	<-started
	r.Close()
	close(release)
	<-done

	require.False(t, r.State().HasData)
	require.Empty(t, r.State().Data)

	// fetching a closed request is a no-op
	r.Fetch(context.Background())
	require.False(t, r.State().HasData)
}
