package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Zargham-Waheed/medicalCareBackend/internal/domain/models"
)

type MockResetTokenRepository struct {
	mock.Mock
}

func (m *MockResetTokenRepository) Replace(ctx context.Context, email, token string, expiresAt time.Time) error {
	args := m.Called(ctx, email, token, expiresAt)
	return args.Error(0)
}

func (m *MockResetTokenRepository) FindActive(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PasswordResetToken), args.Error(1)
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResetTokenRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
