package service

import (
	"context"

	"recruit/internal/audit"
	"recruit/pkg/attrs"
	dErrors "recruit/pkg/domain-errors"
	"recruit/pkg/requestcontext"
)

// emit persists an audit event inside the caller's unit of work. A failed
// write fails the unit so the trail never disagrees with committed state.
func (s *Service) emit(ctx context.Context, event audit.Event) error {
	if s.auditPublisher == nil {
		return nil
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record audit event")
	}
	return nil
}

func (s *Service) logAudit(ctx context.Context, event string, attributes ...any) {
	if attrs.ExtractString(attributes, "request_id") == "" {
		if requestID := requestcontext.RequestID(ctx); requestID != "" {
			attributes = append(attributes, "request_id", requestID)
		}
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}
