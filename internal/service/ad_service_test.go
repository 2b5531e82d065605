package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
	"github.com/Freeeeeet/flightads_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAdRepo struct {
	inserted  []*model.Ad
	insertErr error
}

func (f *fakeAdRepo) Insert(_ context.Context, ad *model.Ad) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	ad.ID = int64(len(f.inserted) + 1)
	ad.CreatedAt = time.Now()
	f.inserted = append(f.inserted, ad)
	return nil
}

func (f *fakeAdRepo) ListByAuthor(_ context.Context, author string, limit int) ([]model.Ad, error) {
	var ads []model.Ad
	for _, ad := range f.inserted {
		if ad.Author == author && len(ads) < limit {
			ads = append(ads, *ad)
		}
	}
	return ads, nil
}

type publishCall struct {
	channelID string
	text      string
}

type fakePublisher struct {
	published  []publishCall
	publishErr error
}

func (f *fakePublisher) Publish(_ context.Context, channelID string, text string) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, publishCall{channelID: channelID, text: text})
	return nil
}

func testTemplates() *config.Templates {
	return &config.Templates{
		Preview: "preview: {role} {source} {destination} {flight_date} {description} {user_id}",
		Message: "post: {role} {source} {destination} {flight_date} {description} {user_id}",
	}
}

func testFields() formatting.AdFields {
	return formatting.AdFields{
		Role:        "Пассажир",
		Source:      "Baku",
		Destination: "Istanbul",
		FlightDate:  "2025-07-10",
		Description: "2 bags, flexible dates",
		Author:      "ivan",
	}
}

func TestPublishSavesAndSendsEscapedText(t *testing.T) {
	repo := &fakeAdRepo{}
	publisher := &fakePublisher{}
	svc := NewAdService(repo, publisher, testTemplates(), "@testchannel", zap.NewNop())

	ad, err := svc.Publish(context.Background(), testFields())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	saved := repo.inserted[0]
	require.Equal(t, "Пассажир", saved.Role)
	require.Equal(t, "Baku", saved.Source)
	require.Equal(t, "Istanbul", saved.Destination)
	require.Equal(t, "2025-07-10", saved.FlightDate)
	require.Equal(t, "2 bags, flexible dates", saved.Description)
	require.Equal(t, "ivan", saved.Author)
	require.NotEqual(t, uuid.Nil, saved.PublicID)
	require.Equal(t, saved.ID, ad.ID)

	require.Len(t, publisher.published, 1)
	require.Equal(t, "@testchannel", publisher.published[0].channelID)
	expected := bot.EscapeMarkdown("post: Пассажир Baku Istanbul 2025-07-10 2 bags, flexible dates ivan")
	require.Equal(t, expected, publisher.published[0].text)
}

func TestPublishStorageFailure(t *testing.T) {
	repo := &fakeAdRepo{insertErr: errors.New("connection refused")}
	publisher := &fakePublisher{}
	svc := NewAdService(repo, publisher, testTemplates(), "@testchannel", zap.NewNop())

	_, err := svc.Publish(context.Background(), testFields())
	require.ErrorIs(t, err, ErrStorage)
	require.Empty(t, publisher.published)
}

func TestPublishChannelFailure(t *testing.T) {
	repo := &fakeAdRepo{}
	publisher := &fakePublisher{publishErr: errors.New("chat not found")}
	svc := NewAdService(repo, publisher, testTemplates(), "@testchannel", zap.NewNop())

	_, err := svc.Publish(context.Background(), testFields())
	require.ErrorIs(t, err, ErrPublish)
	// Строка уже сохранена, данные не потеряны
	require.Len(t, repo.inserted, 1)
}

func TestPublishRejectsIncompleteDraftBeforeInsert(t *testing.T) {
	repo := &fakeAdRepo{}
	publisher := &fakePublisher{}
	svc := NewAdService(repo, publisher, testTemplates(), "@testchannel", zap.NewNop())

	fields := testFields()
	fields.FlightDate = ""

	_, err := svc.Publish(context.Background(), fields)
	require.ErrorIs(t, err, formatting.ErrMissingField)
	require.Empty(t, repo.inserted)
	require.Empty(t, publisher.published)
}

func TestPreviewRendersTemplate(t *testing.T) {
	svc := NewAdService(&fakeAdRepo{}, &fakePublisher{}, testTemplates(), "@testchannel", zap.NewNop())

	preview, err := svc.Preview(testFields())
	require.NoError(t, err)
	require.Equal(t, "preview: Пассажир Baku Istanbul 2025-07-10 2 bags, flexible dates ivan", preview)
}

func TestListByAuthor(t *testing.T) {
	repo := &fakeAdRepo{}
	svc := NewAdService(repo, &fakePublisher{}, testTemplates(), "@testchannel", zap.NewNop())

	_, err := svc.Publish(context.Background(), testFields())
	require.NoError(t, err)

	ads, err := svc.ListByAuthor(context.Background(), "ivan", 5)
	require.NoError(t, err)
	require.Len(t, ads, 1)

	ads, err = svc.ListByAuthor(context.Background(), "someone_else", 5)
	require.NoError(t, err)
	require.Empty(t, ads)
}
