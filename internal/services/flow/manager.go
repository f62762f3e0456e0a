package flow

import (
	"context"
	"sync"
)

// Manager holds one flow controller per device. Controllers are created
// lazily on first use and live for the life of the process.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*Controller
	build       func(deviceID string) *Controller
}

// NewManager creates a Manager that builds controllers with the given
// function.
func NewManager(build func(deviceID string) *Controller) *Manager {
	return &Manager{
		controllers: make(map[string]*Controller),
		build:       build,
	}
}

// For returns the controller for the given device, creating and starting
// it on first use.
func (m *Manager) For(ctx context.Context, deviceID string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if controller, ok := m.controllers[deviceID]; ok {
		return controller, nil
	}

	controller := m.build(deviceID)
	if err := controller.Start(ctx); err != nil {
		return nil, err
	}
	m.controllers[deviceID] = controller
	return controller, nil
}

// Close unsubscribes every controller.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, controller := range m.controllers {
		controller.Close()
	}
	m.controllers = make(map[string]*Controller)
}
