package listingform

import (
	"testing"
	"time"

	"midnight-auction/internal/auctionerrors"
	"midnight-auction/internal/models"

	"github.com/stretchr/testify/require"
)

var submittedAt = time.Date(2026, 5, 10, 9, 30, 0, 0, time.UTC)

func validForm() Form {
	return Form{
		Title:        "Brass compass",
		Description:  "Works fine",
		Tags:         "art,  rare ,, space",
		Media:        []MediaInput{{URL: "https://img.example.com/compass.png"}},
		DurationDays: 7,
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "trims_and_drops_empties", raw: "art,  rare ,, space", want: []string{"art", "rare", "space"}},
		{name: "empty_input", raw: "", want: []string{}},
		{name: "only_separators", raw: " , ,", want: []string{}},
		{name: "markup_removed", raw: "<script>x</script>lamp, decor", want: []string{"lamp", "decor"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ParseTags(tc.raw))
		})
	}
}

func TestBuild_Create(t *testing.T) {
	t.Parallel()

	payload, err := Build(validForm(), ModeCreate, submittedAt)
	require.NoError(t, err)

	require.Equal(t, "Brass compass", payload.Title)
	require.Equal(t, "Works fine", payload.Description)
	require.Equal(t, []string{"art", "rare", "space"}, payload.Tags)
	require.Equal(t, []models.Media{{URL: "https://img.example.com/compass.png", Alt: "Image for Brass compass"}}, payload.Media)
	require.NotNil(t, payload.EndsAt)
	require.Equal(t, submittedAt.AddDate(0, 0, 7), *payload.EndsAt)
}

func TestBuild_DeadlineFollowsSubmissionTime(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.DurationDays = 30

	first, err := Build(form, ModeCreate, submittedAt)
	require.NoError(t, err)
	later, err := Build(form, ModeCreate, submittedAt.Add(time.Hour))
	require.NoError(t, err)

	require.Equal(t, time.Hour, later.EndsAt.Sub(*first.EndsAt))
}

func TestBuild_EditOmitsDeadline(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.DurationDays = 0

	payload, err := Build(form, ModeEdit, submittedAt)
	require.NoError(t, err)
	require.Nil(t, payload.EndsAt)
}

func TestBuild_Sanitizes(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Title = `<script>alert(1)</script>Brass compass`
	form.Description = `<img src=x onerror=alert(1)>Works <b>fine</b>`
	form.Media = []MediaInput{{URL: "https://img.example.com/a.png", Alt: "<i>front</i>"}}

	payload, err := Build(form, ModeCreate, submittedAt)
	require.NoError(t, err)
	require.Equal(t, "Brass compass", payload.Title)
	require.NotContains(t, payload.Description, "onerror")
	require.NotContains(t, payload.Description, "script")
	require.Contains(t, payload.Description, "fine")
	require.Equal(t, "<i>front</i>", payload.Media[0].Alt)
}

func TestBuild_Media(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Media = []MediaInput{
		{URL: "https://img.example.com/1.png", Alt: "front"},
		{URL: "  "},
		{URL: "https://img.example.com/3.png"},
	}

	payload, err := Build(form, ModeCreate, submittedAt)
	require.NoError(t, err)
	require.Equal(t, []models.Media{
		{URL: "https://img.example.com/1.png", Alt: "front"},
		{URL: "https://img.example.com/3.png", Alt: "Image for Brass compass"},
	}, payload.Media)
}

func TestBuild_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Form)
		mode    Mode
		wantErr error
	}{
		{name: "blank_title", mutate: func(f *Form) { f.Title = "   " }, wantErr: auctionerrors.ErrTitleRequired},
		{name: "markup_only_title", mutate: func(f *Form) { f.Title = "<script>x</script>" }, wantErr: auctionerrors.ErrTitleRequired},
		{name: "missing_first_image", mutate: func(f *Form) { f.Media = []MediaInput{{URL: ""}, {URL: "https://img.example.com/2.png"}} }, wantErr: auctionerrors.ErrMediaRequired},
		{name: "no_media_rows", mutate: func(f *Form) { f.Media = nil }, wantErr: auctionerrors.ErrMediaRequired},
		{
			name: "too_many_images",
			mutate: func(f *Form) {
				f.Media = make([]MediaInput, MaxMedia+1)
				for i := range f.Media {
					f.Media[i].URL = "https://img.example.com/x.png"
				}
			},
			wantErr: auctionerrors.ErrTooManyMedia,
		},
		{name: "unsupported_duration", mutate: func(f *Form) { f.DurationDays = 5 }, wantErr: auctionerrors.ErrInvalidDuration},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tc.mutate(&form)
			_, err := Build(form, tc.mode, submittedAt)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFromListing(t *testing.T) {
	t.Parallel()

	form := FromListing(models.Listing{
		Title: "Old radio",
		Tags:  []string{"audio", "vintage"},
		Media: []models.Media{{URL: "https://img.example.com/r.png", Alt: "radio"}},
	})
	require.Equal(t, "audio, vintage", form.Tags)
	require.Equal(t, []MediaInput{{URL: "https://img.example.com/r.png", Alt: "radio"}}, form.Media)

	empty := FromListing(models.Listing{Title: "Bare"})
	require.Len(t, empty.Media, 1)
}

func TestBuildProfileUpdate(t *testing.T) {
	t.Parallel()

	update := BuildProfileUpdate(models.UserProfile{Name: "alice"}, "<script>x</script>Collector", "https://img.example.com/me.png")
	require.Equal(t, "Collector", *update.Bio)
	require.Equal(t, &models.Media{URL: "https://img.example.com/me.png", Alt: "alice's avatar"}, update.Avatar)

	noAvatar := BuildProfileUpdate(models.UserProfile{Name: "alice"}, "", " ")
	require.Nil(t, noAvatar.Avatar)
	require.Equal(t, "", *noAvatar.Bio)
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateUsername("night_owl_42"))

	for _, name := range []string{"", "night owl", "owl-1", "émile"} {
		err := ValidateUsername(name)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidUsername, name)
		require.Equal(t, MsgInvalidUsername, err.Error())
	}
}
