package handler

import (
	"net/http"
	"testing"

	"midnight-auction/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestMergeProfile(t *testing.T) {
	t.Parallel()

	avatar := &models.Media{URL: "https://img.example.com/a.png", Alt: "alice's avatar"}
	stored := models.UserProfile{Name: "alice", Email: "alice@stud.noroff.no", Bio: "old", Credits: 150, Avatar: avatar}

	tests := []struct {
		name    string
		updated models.UserProfile
		want    models.UserProfile
	}{
		{
			name:    "server_balance_of_zero_wins",
			updated: models.UserProfile{Name: "alice", Credits: 0, Bio: "old"},
			want:    models.UserProfile{Name: "alice", Email: "alice@stud.noroff.no", Bio: "old", Credits: 0, Avatar: avatar},
		},
		{
			name:    "server_fields_replace_stored",
			updated: models.UserProfile{Name: "alice", Email: "alice@stud.noroff.no", Bio: "new", Credits: 90},
			want:    models.UserProfile{Name: "alice", Email: "alice@stud.noroff.no", Bio: "new", Credits: 90, Avatar: avatar},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, mergeProfile(stored, tc.updated))
		})
	}
}

func TestUpdateProfileHandler_StoresServerCredits(t *testing.T) {
	env := newTestEnv(t, alice(150))

	env.api.EXPECT().UpdateProfile(gomock.Any(), "alice", gomock.Any()).
		Return(models.Envelope[models.UserProfile]{Data: models.UserProfile{Name: "alice", Bio: "night bidder", Credits: 0}}, nil)

	w, _ := env.do(t, http.MethodPut, "/profile", map[string]string{"bio": "night bidder"})
	require.Equal(t, http.StatusOK, w.Code)

	profile := env.store.Profile()
	require.NotNil(t, profile)
	require.Equal(t, 0, profile.Credits)
	require.Equal(t, "night bidder", profile.Bio)
}
