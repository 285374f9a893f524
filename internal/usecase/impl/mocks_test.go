package impl

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	"accounts/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// Hand-written testify doubles for the interfaces userService depends on.

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Generate(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *mockTokenService) Validate(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenService) TokenDuration() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

// recordingMailer captures welcome mails on a channel so tests can wait for
// the background send.
type recordingMailer struct {
	sent chan [2]string
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan [2]string, 1)}
}

func (m *recordingMailer) SendWelcome(to string, name string) error {
	m.sent <- [2]string{to, name}
	return nil
}
