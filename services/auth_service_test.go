package services

import (
	"testing"

	"github.com/rochiyat/mutabaah-app/models"
	"github.com/rochiyat/mutabaah-app/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	svc := NewAuthService(db)

	user, token, err := svc.Register("alice@example.com", "Alice", "rahasia1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "rahasia1", user.Password, "password is stored hashed")

	// The issued token decodes back to the same identity.
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(user.ID), claims["userId"])
	assert.Equal(t, "alice@example.com", claims["email"])

	_, _, err = svc.Register("alice@example.com", "Alice again", "rahasia1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	logged, _, err := svc.Login("alice@example.com", "rahasia1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	// Wrong password and unknown email fail identically.
	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login("nobody@example.com", "rahasia1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestResetPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := openTestDB(t)
	svc := NewAuthService(db)

	_, _, err := svc.Register("alice@example.com", "Alice", "rahasia1")
	require.NoError(t, err)

	// Unknown emails are silently accepted.
	require.NoError(t, svc.ForgotPassword("nobody@example.com"))

	// The mailer is not initialized in tests; the code is still stored.
	require.NoError(t, svc.ForgotPassword("alice@example.com"))

	var user models.User
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&user).Error)
	require.NotEmpty(t, user.ResetToken)

	assert.ErrorIs(t, svc.ResetPassword("", "newpassword"), ErrInvalidResetCode)
	assert.ErrorIs(t, svc.ResetPassword("bogus!", "newpassword"), ErrInvalidResetCode)

	require.NoError(t, svc.ResetPassword(user.ResetToken, "newpassword"))

	_, _, err = svc.Login("alice@example.com", "newpassword")
	assert.NoError(t, err)
	_, _, err = svc.Login("alice@example.com", "rahasia1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Codes are single use.
	assert.ErrorIs(t, svc.ResetPassword(user.ResetToken, "another"), ErrInvalidResetCode)
}

func TestEnsureSuperadmin(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	require.NoError(t, svc.EnsureSuperadmin("root@mutabaah.com", "Super Admin", "superadmin123"))
	require.NoError(t, svc.EnsureSuperadmin("root@mutabaah.com", "Super Admin", "superadmin123"), "idempotent")

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "root@mutabaah.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var user models.User
	require.NoError(t, db.Where("email = ?", "root@mutabaah.com").First(&user).Error)
	assert.Equal(t, models.RoleSuperadmin, user.Role)
	assert.True(t, utils.CheckPasswordHash("superadmin123", user.Password))
}
