package callbacks

import (
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/controller/gateway"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/Freeeeeet/flightads_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит все зависимости для обработки нажатий inline-кнопок
type Handler struct {
	gateway   gateway.Messenger
	adService *service.AdService
	states    *state.Manager
	messages  *config.Messages
	location  *time.Location
	logger    *zap.Logger
}

// NewHandler создаёт новый обработчик callback query
func NewHandler(
	gw gateway.Messenger,
	adService *service.AdService,
	states *state.Manager,
	messages *config.Messages,
	location *time.Location,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		gateway:   gw,
		adService: adService,
		states:    states,
		messages:  messages,
		location:  location,
		logger:    logger,
	}
}
