package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/formatting"
	"github.com/Freeeeeet/flightads_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStorage = errors.New("ad storage failure")
	ErrPublish = errors.New("ad publish failure")
)

// AdRepository — контракт хранилища объявлений
type AdRepository interface {
	Insert(ctx context.Context, ad *model.Ad) error
	ListByAuthor(ctx context.Context, author string, limit int) ([]model.Ad, error)
}

type AdService struct {
	adRepo    AdRepository
	publisher Publisher
	templates *config.Templates
	channelID string
	logger    *zap.Logger
}

func NewAdService(
	adRepo AdRepository,
	publisher Publisher,
	templates *config.Templates,
	channelID string,
	logger *zap.Logger,
) *AdService {
	return &AdService{
		adRepo:    adRepo,
		publisher: publisher,
		templates: templates,
		channelID: channelID,
		logger:    logger,
	}
}

// Preview строит текст предпросмотра объявления
func (s *AdService) Preview(fields formatting.AdFields) (string, error) {
	return formatting.Render(s.templates.Preview, fields)
}

// Publish сохраняет объявление и публикует его в канал.
// Финальный текст рендерится до вставки, чтобы сломанный шаблон
// не оставлял в базе строку без публикации.
func (s *AdService) Publish(ctx context.Context, fields formatting.AdFields) (*model.Ad, error) {
	text, err := formatting.Render(s.templates.Message, fields)
	if err != nil {
		return nil, fmt.Errorf("render message template: %w", err)
	}

	ad := &model.Ad{
		PublicID:    uuid.New(),
		Role:        fields.Role,
		Source:      fields.Source,
		Destination: fields.Destination,
		FlightDate:  fields.FlightDate,
		Description: fields.Description,
		Author:      fields.Author,
	}

	if err := s.adRepo.Insert(ctx, ad); err != nil {
		s.logger.Error("Failed to save ad",
			zap.String("author", ad.Author),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	// Экранируем спецсимволы MarkdownV2: описание — свободный пользовательский текст
	safe := bot.EscapeMarkdown(text)

	if err := s.publisher.Publish(ctx, s.channelID, safe); err != nil {
		s.logger.Error("Failed to publish ad",
			zap.Int64("ad_id", ad.ID),
			zap.String("public_id", ad.PublicID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPublish, err)
	}

	s.logger.Info("Ad published",
		zap.Int64("ad_id", ad.ID),
		zap.String("public_id", ad.PublicID.String()),
		zap.String("author", ad.Author),
		zap.String("flight_date", ad.FlightDate))

	return ad, nil
}

// ListByAuthor возвращает последние объявления автора
func (s *AdService) ListByAuthor(ctx context.Context, author string, limit int) ([]model.Ad, error) {
	ads, err := s.adRepo.ListByAuthor(ctx, author, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return ads, nil
}
