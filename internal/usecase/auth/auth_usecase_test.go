package auth

import (
	"context"
	"testing"
	"time"

	"tosraider/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	user.ID = "user-" + user.Email
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeUsageRepo struct {
	created []*entity.APIUsage
}

func (r *fakeUsageRepo) Create(_ context.Context, u *entity.APIUsage) error {
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUsageRepo) FindByUserID(_ context.Context, _ string) (*entity.APIUsage, error) {
	return nil, nil
}

func (r *fakeUsageRepo) IncrementCalls(_ context.Context, _ string, _ time.Time) error {
	return nil
}

func newTestUsecase() (*AuthUsecase, *fakeUserRepo, *fakeUsageRepo) {
	userRepo := newFakeUserRepo()
	usageRepo := &fakeUsageRepo{}
	return NewAuthUsecase(userRepo, usageRepo, "secret", time.Hour), userRepo, usageRepo
}

func TestRegisterCreatesUsageRow(t *testing.T) {
	uc, _, usageRepo := newTestUsecase()

	user, err := uc.Register(context.Background(), "User@Example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", user.Email, "email is normalized")
	require.Equal(t, entity.RoleFree, user.Role)

	require.Len(t, usageRepo.created, 1)
	require.Equal(t, user.ID, usageRepo.created[0].UserID)
	require.Equal(t, entity.PlanFree, usageRepo.created[0].Plan)
	require.Zero(t, usageRepo.created[0].CallsToday)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.Register(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), "user@example.com", "password456")
	require.ErrorIs(t, err, entity.ErrEmailTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.Register(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	token, user, err := uc.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "user@example.com", user.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, err := uc.Register(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	_, _, err = uc.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, entity.ErrBadCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	uc, _, _ := newTestUsecase()

	_, _, err := uc.Login(context.Background(), "nobody@example.com", "password123")
	require.ErrorIs(t, err, entity.ErrBadCredentials)
}
