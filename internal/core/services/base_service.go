package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/books_ledger/internal/apperrors"
	"github.com/SscSPs/books_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	now   func() time.Time
	newID func() string
}

// ServiceOption is a functional option shared by the ledger services.
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for audit timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

// WithIDGenerator overrides how new transaction, line and staging ids are generated.
func WithIDGenerator(newID func() string) ServiceOption {
	return func(s *BaseService) {
		s.newID = newID
	}
}

func newBaseService(options []ServiceOption) BaseService {
	s := BaseService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range options {
		opt(&s)
	}
	return s
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a rejected request with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Warn(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// fail logs err at the level its category deserves and returns the error the caller should
// see. Anything outside the domain taxonomy is reported as a persistence failure.
func (s *BaseService) fail(ctx context.Context, err error, msg string, keyvals ...any) error {
	if errors.Is(err, apperrors.ErrBalance) {
		// an unbalanced derivation is a bug, never a user error
		s.LogError(ctx, err, msg, keyvals...)
		return err
	}
	if apperrors.IsDomainError(err) {
		s.LogWarn(ctx, err, msg, keyvals...)
		return err
	}
	s.LogError(ctx, err, msg, keyvals...)
	return fmt.Errorf("%w: %w", apperrors.ErrPersistence, err)
}
