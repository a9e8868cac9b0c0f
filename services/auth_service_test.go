package services

import (
	"context"
	"testing"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countUsers(t *testing.T, svc *AuthService) int64 {
	t.Helper()
	var count int64
	require.NoError(t, svc.DB.Model(&entity.User{}).Count(&count).Error)
	return count
}

func TestSignUp_PasswordMismatchNeverReachesStore(t *testing.T) {
	svc := newAuthService(t, setupDB(t))

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email:           "a@example.com",
		Password:        "abc12",
		ConfirmPassword: "abc123",
		Name:            "A",
		Role:            entity.RoleCustomer,
	})

	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "passwords do not match", err.Error())
	assert.Zero(t, countUsers(t, svc), "form must not be submitted on validation failure")
}

func TestSignUp_ShortPassword(t *testing.T) {
	svc := newAuthService(t, setupDB(t))

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email:           "a@example.com",
		Password:        "abc12",
		ConfirmPassword: "abc12",
		Name:            "A",
		Role:            entity.RoleCustomer,
	})

	assert.True(t, apperr.IsValidation(err))
	assert.Zero(t, countUsers(t, svc))
}

func TestSignUp_InitialisesRewardProfile(t *testing.T) {
	svc := newAuthService(t, setupDB(t))

	user, err := svc.SignUp(context.Background(), SignUpInput{
		Email:           "New.Customer@Example.com ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Name:            "New Customer",
		Role:            entity.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "new.customer@example.com", user.Email, "email is normalised")
	assert.Equal(t, 0, user.PointsEarned)
	assert.Equal(t, 0, user.OrdersCompleted)
	assert.Equal(t, "bronze", user.CurrentTier)
	assert.NotNil(t, user.LastLogin)
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	svc := newAuthService(t, setupDB(t))
	in := SignUpInput{
		Email: "dup@example.com", Password: "secret1", ConfirmPassword: "secret1",
		Name: "Dup", Role: entity.RoleCustomer,
	}

	_, err := svc.SignUp(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.SignUp(context.Background(), in)
	assert.True(t, apperr.IsAuth(err))
	assert.Equal(t, int64(1), countUsers(t, svc))
}

func TestLogIn(t *testing.T) {
	svc := newAuthService(t, setupDB(t))
	_, err := svc.SignUp(context.Background(), SignUpInput{
		Email: "login@example.com", Password: "secret1", ConfirmPassword: "secret1",
		Name: "L", Role: entity.RoleCustomer,
	})
	require.NoError(t, err)

	t.Run("wrong_password", func(t *testing.T) {
		_, _, err := svc.LogIn(context.Background(), "login@example.com", "nope")
		assert.True(t, apperr.IsAuth(err))
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, _, err := svc.LogIn(context.Background(), "who@example.com", "secret1")
		assert.True(t, apperr.IsAuth(err))
	})

	t.Run("success", func(t *testing.T) {
		token, user, err := svc.LogIn(context.Background(), "Login@Example.com", "secret1")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, entity.RoleCustomer, user.Role)
	})
}

func TestSignUpOwner(t *testing.T) {
	t.Run("invalid_image_url", func(t *testing.T) {
		svc := newAuthService(t, setupDB(t))
		_, _, err := svc.SignUpOwner(context.Background(), OwnerSignUpInput{
			Account: SignUpInput{
				Email: "o@example.com", Password: "secret1", ConfirmPassword: "secret1", Name: "O",
			},
			RestaurantName: "Casa", CuisineType: "Mexican", Address: "1 St", Phone: "555",
			ImageURL: "not a url",
		})
		assert.True(t, apperr.IsValidation(err))
		assert.Zero(t, countUsers(t, svc))
	})

	t.Run("creates_account_and_restaurant", func(t *testing.T) {
		svc := newAuthService(t, setupDB(t))
		user, rest, err := svc.SignUpOwner(context.Background(), OwnerSignUpInput{
			Account: SignUpInput{
				Email: "o@example.com", Password: "secret1", ConfirmPassword: "secret1", Name: "O",
			},
			RestaurantName: "Casa", CuisineType: "Mexican", Address: "1 St", Phone: "555",
			Website: "https://casa.example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleRestaurantOwner, user.Role)
		assert.Equal(t, user.ID, rest.UserID)
		assert.True(t, rest.IsActive)
		assert.Equal(t, entity.DefaultOpeningHours(), rest.OpeningHours)

		got, err := svc.RestaurantFor(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, rest.ID, got.ID)
	})
}

func TestResolveRole_ReadsProfileRecord(t *testing.T) {
	svc := newAuthService(t, setupDB(t))
	user, err := svc.SignUp(context.Background(), SignUpInput{
		Email: "r@example.com", Password: "secret1", ConfirmPassword: "secret1",
		Name: "R", Role: entity.RoleCustomer,
	})
	require.NoError(t, err)

	role, err := svc.ResolveRole(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, role)

	_, err = svc.ResolveRole(context.Background(), 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSendReset(t *testing.T) {
	svc := newAuthService(t, setupDB(t))
	user, err := svc.SignUp(context.Background(), SignUpInput{
		Email: "reset@example.com", Password: "secret1", ConfirmPassword: "secret1",
		Name: "R", Role: entity.RoleCustomer,
	})
	require.NoError(t, err)

	token, err := svc.SendReset(context.Background(), "reset@example.com")
	require.NoError(t, err)
	assert.Len(t, token, 32)

	stored, err := svc.Profile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, token, stored.ResetToken)
	require.NotNil(t, stored.ResetTokenExpiry)

	_, err = svc.SendReset(context.Background(), "nobody@example.com")
	assert.True(t, apperr.IsAuth(err))
}
