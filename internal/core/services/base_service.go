package services

import (
	"context"
	"log/slog"

	"github.com/tablestack/resto_ledger_app/internal/middleware"
)

// BaseService provides request-scoped logging helpers shared by all services.
type BaseService struct{}

func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

func (s *BaseService) LogError(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).ErrorContext(ctx, msg, args...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).InfoContext(ctx, msg, args...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, args ...any) {
	s.GetLogger(ctx).DebugContext(ctx, msg, args...)
}
