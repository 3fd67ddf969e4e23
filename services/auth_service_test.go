package services

import (
	"context"
	"testing"
	"time"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)
	assert.NotZero(t, session.UserID)
	assert.Equal(t, entity.RoleCustomer, session.Role)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, session.RefreshToken)

	// the stored password is a hash, not the plaintext
	var stored entity.User
	require.NoError(t, db.First(&stored, session.UserID).Error)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NotEmpty(t, stored.Password)

	// role names are case-insensitive
	s2, err := svc.Register(ctx, RegisterInput{
		Name: "Bob", Email: "b@x.com", Password: "secret1", Role: "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, s2.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	in := RegisterInput{Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Customer"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.Register(ctx, in)
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// the duplicate check is exact: a differently-cased email is a
	// different identity
	_, err = svc.Register(ctx, RegisterInput{
		Name: "Alice", Email: "A@x.com", Password: "secret1", Role: "Customer",
	})
	assert.NoError(t, err)
}

func TestRegister_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Owner",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)

	_, wrongPass := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "wrong"})
	_, unknownEmail := svc.Login(ctx, LoginInput{Email: "nobody@x.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPass.Error(), unknownEmail.Error())

	session, err := svc.Login(ctx, LoginInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
}

func TestRefresh(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// expired issuer: tokens come out already past their exp
	expiredTokens := NewTokenService(testSecret, testIssuer, testAudience, -time.Minute)
	svc := NewAuthService(repository.NewUserRepository(db), expiredTokens)

	session, err := svc.Register(ctx, RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, fresh.UserID)
	assert.NotEmpty(t, fresh.Token)

	_, err = svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefresh_DeletedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{
		Name: "Alice", Email: "a@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)

	require.NoError(t, db.Unscoped().Delete(&entity.User{}, session.UserID).Error)

	_, err = svc.Refresh(ctx, session.Token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterBulk_PartialFailure(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name: "Early Bird", Email: "dup@x.com", Password: "secret1", Role: "Customer",
	})
	require.NoError(t, err)

	result := svc.RegisterBulk(ctx, []RegisterInput{
		{Name: "One", Email: "one@x.com", Password: "secret1", Role: "Customer"},
		{Name: "Two", Email: "dup@x.com", Password: "secret1", Role: "Customer"},
		{Name: "Three", Email: "three@x.com", Password: "secret1", Role: "Staff"},
	})

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)

	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Success)
	assert.False(t, result.Results[1].Success)
	assert.Equal(t, "dup@x.com", result.Results[1].Email)
	assert.True(t, result.Results[2].Success)

	// entries 1 and 3 are persisted despite entry 2 failing
	var count int64
	require.NoError(t, db.Model(&entity.User{}).
		Where("email IN ?", []string{"one@x.com", "three@x.com"}).
		Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAuthService(t, db)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := svc.Register(ctx, RegisterInput{
			Name: "U", Email: email, Password: "secret1", Role: "Customer",
		})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
