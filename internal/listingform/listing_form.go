package listingform

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"
)

// Mode selects between creating a listing and editing an existing one
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

// MaxMedia is the largest number of images a listing can carry
const MaxMedia = 4

// DefaultDurationDays is the duration preselected on a new form
const DefaultDurationDays = 7

// Durations are the auction lengths offered on creation, in days
var Durations = []int{3, 7, 14, 30}

const (
	MsgTitleRequired   = "Title is required."
	MsgMediaRequired   = "At least one image URL is required."
	MsgTooManyMedia    = "A listing can have at most %d images."
	MsgInvalidDuration = "Auction duration must be 3, 7, 14 or 30 days."
	MsgInvalidUsername = "Username can only contain letters, numbers, and underscores."
)

var (
	policy          = bluemonday.UGCPolicy()
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// Sanitize neutralizes markup and script in user supplied text
func Sanitize(in string) string {
	return strings.TrimSpace(policy.Sanitize(in))
}

// MediaInput is one image row of the form
type MediaInput struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Form is the raw input of the listing form
type Form struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Tags         string       `json:"tags"`
	Media        []MediaInput `json:"media"`
	DurationDays int          `json:"duration_days"`
}

// NewForm returns an empty create form with one image row
func NewForm() Form {
	return Form{
		Media:        []MediaInput{{}},
		DurationDays: DefaultDurationDays,
	}
}

// FromListing pre-fills an edit form from an existing listing
func FromListing(listing models.Listing) Form {
	form := Form{
		Title:        listing.Title,
		Description:  listing.Description,
		Tags:         strings.Join(listing.Tags, ", "),
		DurationDays: DefaultDurationDays,
	}
	for _, m := range listing.Media {
		form.Media = append(form.Media, MediaInput{URL: m.URL, Alt: m.Alt})
	}
	if len(form.Media) == 0 {
		form.Media = []MediaInput{{}}
	}
	return form
}

// ParseTags splits a comma-separated tag list, trimming entries and dropping empty ones
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := Sanitize(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ValidDuration reports whether days is one of the offered durations
func ValidDuration(days int) bool {
	for _, d := range Durations {
		if d == days {
			return true
		}
	}
	return false
}

// Build turns the form into a request payload. In create mode the deadline is now plus the
// chosen duration; in edit mode no deadline is sent.
func Build(form Form, mode Mode, now time.Time) (models.ListingPayload, error) {
	title := Sanitize(form.Title)
	if title == "" {
		return models.ListingPayload{}, auctionerrors.NewValidation(auctionerrors.ErrTitleRequired, MsgTitleRequired)
	}

	media, err := buildMedia(form.Media, title)
	if err != nil {
		return models.ListingPayload{}, err
	}

	payload := models.ListingPayload{
		Title:       title,
		Description: Sanitize(form.Description),
		Tags:        ParseTags(form.Tags),
		Media:       media,
	}

	if mode == ModeCreate {
		if !ValidDuration(form.DurationDays) {
			return models.ListingPayload{}, auctionerrors.NewValidation(auctionerrors.ErrInvalidDuration, MsgInvalidDuration)
		}
		endsAt := now.AddDate(0, 0, form.DurationDays)
		payload.EndsAt = &endsAt
	}

	return payload, nil
}

func buildMedia(rows []MediaInput, title string) ([]models.Media, error) {
	if len(rows) > MaxMedia {
		return nil, auctionerrors.NewValidation(auctionerrors.ErrTooManyMedia, MsgTooManyMedia, MaxMedia)
	}
	if len(rows) == 0 || strings.TrimSpace(rows[0].URL) == "" {
		return nil, auctionerrors.NewValidation(auctionerrors.ErrMediaRequired, MsgMediaRequired)
	}

	media := make([]models.Media, 0, len(rows))
	for _, row := range rows {
		url := Sanitize(row.URL)
		if url == "" {
			continue
		}
		alt := Sanitize(row.Alt)
		if alt == "" {
			alt = fmt.Sprintf("Image for %s", title)
		}
		media = append(media, models.Media{URL: url, Alt: alt})
	}
	if len(media) == 0 {
		return nil, auctionerrors.NewValidation(auctionerrors.ErrMediaRequired, MsgMediaRequired)
	}
	return media, nil
}

// BuildProfileUpdate sanitizes the editable profile fields. The avatar is only sent when a URL is given.
func BuildProfileUpdate(profile models.UserProfile, bio, avatarURL string) models.ProfileUpdate {
	cleanBio := Sanitize(bio)
	update := models.ProfileUpdate{Bio: &cleanBio}
	if url := Sanitize(avatarURL); url != "" {
		update.Avatar = &models.Media{URL: url, Alt: fmt.Sprintf("%s's avatar", profile.Name)}
	}
	return update
}

// ValidateUsername checks the name chosen at registration
func ValidateUsername(name string) error {
	if !usernamePattern.MatchString(name) {
		return auctionerrors.NewValidation(auctionerrors.ErrInvalidUsername, MsgInvalidUsername)
	}
	return nil
}
