package report

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormwatch/tropics-dashboard/internal/domain"
)

type stubPublisher struct {
	err       error
	published []domain.FeedSummary
}

func (s *stubPublisher) PublishBulletins(_ context.Context, _ time.Time, bulletins []domain.FeedSummary) error {
	s.published = append(s.published, bulletins...)
	return s.err
}

func TestPublishingBuilder_PublishesBulletins(t *testing.T) {
	feeds := &stubFeeds{descriptions: map[string]string{
		"https://nhc.test/feed.xml": "Tropical storm forming",
		"https://spc.test/feed.xml": "quiet",
	}}
	pub := &stubPublisher{}
	b := WithPublisher(newTestBuilder(feeds, healthyWeather()), pub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := b.BuildReport(context.Background())

	require.Len(t, pub.published, 2)
	assert.Equal(t, r.Bulletins, pub.published)
}

func TestPublishingBuilder_PublishFailureDoesNotAffectReport(t *testing.T) {
	pub := &stubPublisher{err: errors.New("broker unreachable")}
	b := WithPublisher(newTestBuilder(&stubFeeds{}, healthyWeather()), pub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := b.BuildReport(context.Background())

	require.Len(t, r.Bulletins, 2)
	assert.NoError(t, b.CheckReadiness(context.Background()))
}
