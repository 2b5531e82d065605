package handlers

import (
	"time"

	"github.com/Freeeeeet/flightads_bot/internal/config"
	"github.com/Freeeeeet/flightads_bot/internal/controller/gateway"
	"github.com/Freeeeeet/flightads_bot/internal/controller/state"
	"github.com/Freeeeeet/flightads_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд и текстовых шагов диалога
type Handlers struct {
	gateway   gateway.Messenger
	adService *service.AdService
	states    *state.Manager
	messages  *config.Messages
	location  *time.Location
	logger    *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(
	gw gateway.Messenger,
	adService *service.AdService,
	states *state.Manager,
	messages *config.Messages,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		gateway:   gw,
		adService: adService,
		states:    states,
		messages:  messages,
		location:  location,
		logger:    logger,
	}
}
