package state

import (
	"sync"
)

// Manager управляет сессиями пользователей.
// Единственный владелец и мутатор — диалоговые обработчики,
// между пользователями сессии полностью независимы.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session // telegramID -> Session
}

// NewManager создаёт новый менеджер сессий
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Get возвращает копию сессии пользователя (пустую, если сессии нет)
func (sm *Manager) Get(telegramID int64) Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if session, exists := sm.sessions[telegramID]; exists {
		return *session
	}
	return Session{State: StateNone}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if session, exists := sm.sessions[telegramID]; exists {
		return session.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		// Состояние None эквивалентно отсутствию сессии
		delete(sm.sessions, telegramID)
		return
	}

	if session, exists := sm.sessions[telegramID]; exists {
		session.State = state
	} else {
		sm.sessions[telegramID] = &Session{State: state}
	}
}

// Reset начинает диалог заново: все собранные поля сбрасываются
func (sm *Manager) Reset(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.sessions[telegramID] = &Session{State: StateChoosingRole}
}

// Clear полностью удаляет сессию пользователя
func (sm *Manager) Clear(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, telegramID)
}

// SetRole сохраняет выбранную роль
func (sm *Manager) SetRole(telegramID int64, role string) {
	sm.mutate(telegramID, func(s *Session) { s.Role = &role })
}

// SetSource сохраняет пункт отправления
func (sm *Manager) SetSource(telegramID int64, source string) {
	sm.mutate(telegramID, func(s *Session) { s.Source = &source })
}

// SetDestination сохраняет пункт назначения
func (sm *Manager) SetDestination(telegramID int64, destination string) {
	sm.mutate(telegramID, func(s *Session) { s.Destination = &destination })
}

// SetFlightDate сохраняет дату вылета в формате YYYY-MM-DD
func (sm *Manager) SetFlightDate(telegramID int64, flightDate string) {
	sm.mutate(telegramID, func(s *Session) { s.FlightDate = &flightDate })
}

// SetDescription сохраняет описание объявления
func (sm *Manager) SetDescription(telegramID int64, description string) {
	sm.mutate(telegramID, func(s *Session) { s.Description = &description })
}

func (sm *Manager) mutate(telegramID int64, fn func(*Session)) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	session, exists := sm.sessions[telegramID]
	if !exists {
		session = &Session{State: StateNone}
		sm.sessions[telegramID] = session
	}
	fn(session)
}
