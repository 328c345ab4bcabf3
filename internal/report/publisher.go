package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/stormwatch/tropics-dashboard/internal/domain"
)

// BulletinPublisher forwards storm bulletins to a downstream sink.
type BulletinPublisher interface {
	PublishBulletins(ctx context.Context, generatedAt time.Time, bulletins []domain.FeedSummary) error
}

// PublishingBuilder decorates a Builder so every built report's bulletins are
// also published downstream. Publish failures are logged and never affect the
// rendered report.
type PublishingBuilder struct {
	inner     *Builder
	publisher BulletinPublisher
	logger    *slog.Logger
}

// WithPublisher wraps builder with bulletin publishing.
func WithPublisher(builder *Builder, publisher BulletinPublisher, logger *slog.Logger) *PublishingBuilder {
	return &PublishingBuilder{
		inner:     builder,
		publisher: publisher,
		logger:    logger,
	}
}

func (p *PublishingBuilder) BuildReport(ctx context.Context) Report {
	r := p.inner.BuildReport(ctx)
	if err := p.publisher.PublishBulletins(ctx, r.GeneratedAt, r.Bulletins); err != nil {
		p.logger.Warn("bulletin publish failed", "error", err)
	}
	return r
}

// CheckReadiness delegates to the wrapped builder.
func (p *PublishingBuilder) CheckReadiness(ctx context.Context) error {
	return p.inner.CheckReadiness(ctx)
}
