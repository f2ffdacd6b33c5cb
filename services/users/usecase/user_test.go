package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"costera/internal/pkg/apperrors"
	"costera/internal/pkg/models"
)

func seedUser(t *testing.T, uc *UserUC) int64 {
	t.Helper()
	resp, err := uc.Register(context.Background(), models.RegisterRequest{
		Handle:      "maya",
		Password:    "longenough",
		DisplayName: "Maya",
		Whatsapp:    "+620001",
	})
	require.NoError(t, err)
	return resp.UserID
}

func TestGetProfile(t *testing.T) {
	uc, _, _ := newTestUserUC()
	userID := seedUser(t, uc)

	user, err := uc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "maya", user.Handle)
	assert.Equal(t, "Maya", user.DisplayName)

	_, err = uc.GetProfile(context.Background(), 404)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateProfile(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		uc, _, _ := newTestUserUC()
		userID := seedUser(t, uc)

		phone := "+620002"
		user, err := uc.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{Phone: &phone})
		require.NoError(t, err)
		assert.Equal(t, "+620002", user.Phone)
		assert.Equal(t, "+620001", user.Whatsapp, "untouched field survives")
		assert.Equal(t, "Maya", user.DisplayName)
	})

	t.Run("display name cannot be blanked", func(t *testing.T) {
		uc, _, _ := newTestUserUC()
		userID := seedUser(t, uc)

		blank := "   "
		_, err := uc.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{DisplayName: &blank})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("contact fields can be cleared", func(t *testing.T) {
		uc, _, _ := newTestUserUC()
		userID := seedUser(t, uc)

		empty := ""
		user, err := uc.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{Whatsapp: &empty})
		require.NoError(t, err)
		assert.Empty(t, user.Whatsapp)
	})
}
