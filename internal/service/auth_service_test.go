package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/repo/repotest"
	"eventplanner-api/pkg/utils"
)

func newAuthService(users *repotest.Users) *AuthService {
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "eventplanner-api", TTL: time.Hour}
	return NewAuthService(users, jwter)
}

func TestLoginSuccess(t *testing.T) {
	users := &repotest.Users{}
	svc := newAuthService(users)

	_, err := svc.RegisterFirstAdmin(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.True(t, res.User.IsAdmin)
}

func TestLoginFailureIndistinguishable(t *testing.T) {
	users := &repotest.Users{}
	svc := newAuthService(users)

	_, err := svc.RegisterFirstAdmin(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), "alice@example.com", "not-the-password")
	_, noUser := svc.Login(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, wrongPw)
	require.Error(t, noUser)

	var e1, e2 *domain.Error
	require.ErrorAs(t, wrongPw, &e1)
	require.ErrorAs(t, noUser, &e2)
	// status, code and message must be byte-identical for both causes
	assert.Equal(t, e1.Status, e2.Status)
	assert.Equal(t, e1.Code, e2.Code)
	assert.Equal(t, e1.Message, e2.Message)
	assert.Equal(t, domain.CodeInvalidCredentials, e1.Code)
}

func TestRegisterFirstAdminOnlyOnce(t *testing.T) {
	users := &repotest.Users{}
	svc := newAuthService(users)

	first, err := svc.RegisterFirstAdmin(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.True(t, first.User.IsAdmin)
	assert.NotEmpty(t, first.Token)

	// a second bootstrap fails even with a different email
	_, err = svc.RegisterFirstAdmin(context.Background(), "Bob", "bob@example.com", "hunter2")
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeAdminExists, de.Code)
}

func TestRegisterEmailTaken(t *testing.T) {
	users := &repotest.Users{}
	svc := newAuthService(users)

	_, err := svc.RegisterFirstAdmin(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Alice", "alice@example.com", "pw", false)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeEmailTaken, de.Code)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := newAuthService(&repotest.Users{})

	_, err := svc.Register(context.Background(), "", "carol@example.com", "", false)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, domain.CodeValidation, de.Code)
	assert.ElementsMatch(t, []string{"name", "password"}, de.Fields)
}

func TestPasswordStoredAsHash(t *testing.T) {
	users := &repotest.Users{}
	svc := newAuthService(users)

	_, err := svc.RegisterFirstAdmin(context.Background(), "Alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	stored := users.Items[0]
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.True(t, utils.CheckPassword("s3cret", stored.Password))
}
