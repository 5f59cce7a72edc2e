package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"midnight-auction/internal/api"
	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
	"midnight-auction/internal/notify"
	"midnight-auction/internal/repository"
	"midnight-auction/internal/server"
	"midnight-auction/internal/session"
	"midnight-auction/services/auction/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "integration-key"

// fakeRemote is an in-memory stand-in for the remote auction API
type fakeRemote struct {
	mu       sync.Mutex
	users    map[string]models.UserProfile
	tokens   map[string]string
	listings map[string]*models.Listing
	nextBid  int
}

func newFakeRemote(listings ...models.Listing) *fakeRemote {
	f := &fakeRemote{
		users:    map[string]models.UserProfile{},
		tokens:   map[string]string{},
		listings: map[string]*models.Listing{},
	}
	for i := range listings {
		l := listings[i]
		f.listings[l.ID] = &l
	}
	return f
}

func (f *fakeRemote) addUser(email string, profile models.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[email] = profile
}

func remoteError(c *gin.Context, status int, message string) {
	c.JSON(status, auctionerrors.APIError{
		Errors:     []auctionerrors.ErrorDetail{{Message: message}},
		Status:     http.StatusText(status),
		StatusCode: status,
	})
}

// bearer resolves the calling user from the Authorization header
func (f *fakeRemote) bearer(c *gin.Context) (models.UserProfile, bool) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	email, ok := f.tokens[token]
	if !ok {
		return models.UserProfile{}, false
	}
	return f.users[email], true
}

func (f *fakeRemote) routes() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if c.GetHeader(api.APIKeyHeader) != testAPIKey {
			remoteError(c, http.StatusUnauthorized, "No API key header was found")
			c.Abort()
			return
		}
		c.Next()
	})

	r.POST("/auth/login", func(c *gin.Context) {
		var creds models.LoginCredentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			remoteError(c, http.StatusBadRequest, "Invalid body")
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		profile, ok := f.users[creds.Email]
		if !ok || creds.Password != "secret123" {
			remoteError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		token := "token-" + profile.Name
		f.tokens[token] = creds.Email
		c.JSON(http.StatusOK, gin.H{"data": models.AuthResult{UserProfile: profile, AccessToken: token}})
	})

	r.GET("/auction/listings", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := make([]models.Listing, 0, len(f.listings))
		for _, l := range f.listings {
			out = append(out, *l)
		}
		c.JSON(http.StatusOK, gin.H{"data": out, "meta": models.Meta{CurrentPage: 1, PageCount: 1, TotalCount: len(out)}})
	})

	r.GET("/auction/listings/:id", func(c *gin.Context) {
		f.mu.Lock()
		defer f.mu.Unlock()
		l, ok := f.listings[c.Param("id")]
		if !ok {
			remoteError(c, http.StatusNotFound, "No listing with such ID")
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": l})
	})

	r.POST("/auction/listings/:id/bids", func(c *gin.Context) {
		var body struct {
			Amount float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			remoteError(c, http.StatusBadRequest, "Invalid body")
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()
		bidder, ok := f.bearer(c)
		if !ok {
			remoteError(c, http.StatusUnauthorized, "Missing authorization header")
			return
		}
		l, ok := f.listings[c.Param("id")]
		if !ok {
			remoteError(c, http.StatusNotFound, "No listing with such ID")
			return
		}
		if !l.EndsAt.After(time.Now()) {
			remoteError(c, http.StatusBadRequest, "Listing has ended")
			return
		}
		for _, b := range l.Bids {
			if float64(b.Amount) >= body.Amount {
				remoteError(c, http.StatusBadRequest, "Your bid must be higher than the current bid")
				return
			}
		}

		f.nextBid++
		bid := models.Bid{
			ID:      fmt.Sprintf("bid-%d", f.nextBid),
			Amount:  int(body.Amount),
			Bidder:  models.UserProfile{Name: bidder.Name},
			Created: time.Now().UTC(),
		}
		l.Bids = append(l.Bids, bid)
		l.Count.Bids = len(l.Bids)
		c.JSON(http.StatusCreated, gin.H{"data": bid})
	})

	return r
}

// SetupTestRouter wires the real router to a fake remote and returns both
func SetupTestRouter(t *testing.T, remote *fakeRemote) (*gin.Engine, *notify.Center) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(remote.routes())
	t.Cleanup(srv.Close)

	notices := notify.NewCenter(50)
	store := session.NewStore(repository.NewMemoryRepo(), notices)
	store.Restore()

	client := api.New(api.Config{BaseURL: srv.URL, APIKey: testAPIKey, Timeout: 5 * time.Second})
	stats, err := api.NewStatsCache(8, time.Minute)
	require.NoError(t, err)

	h := handler.NewAuctionHandler(store, client.Factory(), stats, notices)
	return server.SetupRouter(h), notices
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}
