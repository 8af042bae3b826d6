package auth_test

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/stretchr/testify/mock"

	"github.com/Pragadeesh-19/Task-Management/auth"
)

// MockLogger implements auth.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockIdentityProvider implements auth.IdentityProvider for testing
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, username, password string) (auth.Identity, error) {
	args := m.Called(ctx, username, password)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByUsername(ctx context.Context, username string) (auth.Identity, error) {
	args := m.Called(ctx, username)
	if identity := args.Get(0); identity != nil {
		return identity.(auth.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUserStore implements auth.UserStore and auth.UserRegistry for testing
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string, criteria ...repository.SelectCriteria) (*auth.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserStore) Register(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	if created := args.Get(0); created != nil {
		return created.(*auth.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// TestIdentity is a simple implementation of the Identity interface for testing
type TestIdentity struct {
	id       string
	username string
	role     string
}

func (t TestIdentity) ID() string       { return t.id }
func (t TestIdentity) Username() string { return t.username }
func (t TestIdentity) Role() string     { return t.role }
