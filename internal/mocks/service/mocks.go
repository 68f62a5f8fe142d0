// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"
	"testing"

	"agenda/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher mocks service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, encoded string) (bool, error) {
	args := m.Called(password, encoded)

	return args.Bool(0), args.Error(1)
}

// MockIdentityTokenVerifier mocks service.IdentityTokenVerifier.
type MockIdentityTokenVerifier struct {
	mock.Mock
}

func NewMockIdentityTokenVerifier(t *testing.T) *MockIdentityTokenVerifier {
	m := &MockIdentityTokenVerifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockIdentityTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.ExternalIdentity, error) {
	args := m.Called(ctx, idToken)
	identity, _ := args.Get(0).(*service.ExternalIdentity)

	return identity, args.Error(1)
}
