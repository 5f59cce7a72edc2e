package models

import "time"

// Media is an image reference attached to a listing or a profile
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ProfileCount holds the server-side counters of a profile
type ProfileCount struct {
	Listings int `json:"listings"`
	Wins     int `json:"wins"`
}

// UserProfile represents a participant in the auction
type UserProfile struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Bio      string        `json:"bio,omitempty"`
	Avatar   *Media        `json:"avatar,omitempty"`
	Banner   *Media        `json:"banner,omitempty"`
	Credits  int           `json:"credits"`
	Listings []Listing     `json:"listings,omitempty"`
	Wins     []Listing     `json:"wins,omitempty"`
	Count    *ProfileCount `json:"_count,omitempty"`
}

// ListingCount holds the server-side counters of a listing
type ListingCount struct {
	Bids int `json:"bids"`
}

// Listing represents an auction item
type Listing struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Tags        []string     `json:"tags"`
	Media       []Media      `json:"media"`
	Created     time.Time    `json:"created"`
	Updated     time.Time    `json:"updated"`
	EndsAt      time.Time    `json:"endsAt"`
	Seller      *UserProfile `json:"seller,omitempty"`
	Bids        []Bid        `json:"bids,omitempty"`
	Count       ListingCount `json:"_count"`
}

// Bid represents a user's bid on a listing
type Bid struct {
	ID      string      `json:"id"`
	Amount  int         `json:"amount"`
	Bidder  UserProfile `json:"bidder"`
	Created time.Time   `json:"created"`
	Listing *Listing    `json:"listing,omitempty"`
}

// Meta is the pagination block of a list response
type Meta struct {
	IsFirstPage  bool `json:"isFirstPage"`
	IsLastPage   bool `json:"isLastPage"`
	CurrentPage  int  `json:"currentPage"`
	PreviousPage *int `json:"previousPage"`
	NextPage     *int `json:"nextPage"`
	PageCount    int  `json:"pageCount"`
	TotalCount   int  `json:"totalCount"`
}

// Envelope is the success wrapper of every remote response
type Envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Session pairs the access token with the profile it belongs to.
// Both halves are set or both are empty.
type Session struct {
	Token   string       `json:"-"`
	Profile *UserProfile `json:"profile"`
}

// Authenticated reports whether both halves of the session are present
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Profile != nil
}

// FullProfileStats is a profile together with the counters shown on the stats chart
type FullProfileStats struct {
	UserProfile
	ListingsCount int `json:"listingsCount"`
	WinsCount     int `json:"winsCount"`
	BidsCount     int `json:"bidsCount"`
}

// StatsShare is one segment of the profile stats chart
type StatsShare struct {
	Name    string  `json:"name"`
	Value   int     `json:"value"`
	Percent float64 `json:"percent"`
}

// Breakdown splits the profile counters into chart segments.
// Shares are zero when the profile has no activity at all.
func (s FullProfileStats) Breakdown() []StatsShare {
	total := s.ListingsCount + s.BidsCount + s.WinsCount
	share := func(v int) float64 {
		if total == 0 {
			return 0
		}
		return float64(v) / float64(total)
	}
	return []StatsShare{
		{Name: "listings", Value: s.ListingsCount, Percent: share(s.ListingsCount)},
		{Name: "bids", Value: s.BidsCount, Percent: share(s.BidsCount)},
		{Name: "wins", Value: s.WinsCount, Percent: share(s.WinsCount)},
	}
}

// ListingPayload is the body of a create or update listing call.
// EndsAt is nil for updates.
type ListingPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Media       []Media    `json:"media,omitempty"`
	EndsAt      *time.Time `json:"endsAt,omitempty"`
}

// ProfileUpdate is the body of an update profile call
type ProfileUpdate struct {
	Bio    *string `json:"bio,omitempty"`
	Avatar *Media  `json:"avatar,omitempty"`
}

// RegisterCredentials is the body of a register call
type RegisterCredentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
	Avatar   *Media `json:"avatar,omitempty"`
	Banner   *Media `json:"banner,omitempty"`
}

// LoginCredentials is the body of a login call
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is a profile returned by register or login together with its access token
type AuthResult struct {
	UserProfile
	AccessToken string `json:"accessToken"`
}
