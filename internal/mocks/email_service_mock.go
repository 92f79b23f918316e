package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type EmailService struct{ mock.Mock }

func (m *EmailService) SendPasswordReset(ctx context.Context, to, name, resetLink string, expiresAt time.Time) error {
	return m.Called(ctx, to, name, resetLink, expiresAt).Error(0)
}
