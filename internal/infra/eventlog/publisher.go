package eventlog

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"fleet-ledger/internal/domain/fleet"
	"fleet-ledger/internal/usecase/shared"
)

// LogPublisher writes every committed event to the structured log.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, events []fleet.Event) {
	for _, e := range events {
		fields := shared.EventFields(e)
		attrs := make([]any, 0, len(fields))
		for _, k := range slices.Sorted(maps.Keys(fields)) {
			attrs = append(attrs, slog.Any(k, fields[k]))
		}
		p.logger.InfoContext(ctx, "ledger event",
			slog.String("kind", string(e.Kind())),
			slog.Group("event", attrs...),
		)
	}
}
