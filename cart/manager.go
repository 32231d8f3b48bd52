package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager keys carts by session id. Carts are created empty on first touch
// and live for the process lifetime; there is no persistence.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// NewSession mints a fresh session id.
func (m *Manager) NewSession() string {
	return uuid.NewString()
}

// Get returns the cart for the session, creating it when absent.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.carts[sessionID]
	if !ok {
		c = New()
		m.carts[sessionID] = c
	}
	return c
}
