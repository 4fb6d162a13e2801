package slcore

import (
	"reflect"
	"sync"
)

// ServiceProvider gives access to the services of the connected backend.
// Services are only available while a backend connection is alive.
type ServiceProvider interface {
	// Lookup returns the service registered for the given interface type.
	Lookup(serviceType reflect.Type) (any, bool)
	// Set registers a service under the given interface type, replacing any previous one.
	Set(serviceType reflect.Type, service any)
	// Clear unregisters all services.
	Clear()
}

type serviceProvider struct {
	mu       sync.RWMutex
	services map[reflect.Type]any
}

// NewServiceProvider creates an empty ServiceProvider.
func NewServiceProvider() ServiceProvider {
	return &serviceProvider{services: make(map[reflect.Type]any)}
}

func (p *serviceProvider) Lookup(serviceType reflect.Type) (any, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	svc, ok := p.services[serviceType]
	return svc, ok
}

func (p *serviceProvider) Set(serviceType reflect.Type, service any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.services[serviceType] = service
}

func (p *serviceProvider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.services)
}

// TryGetService returns the service of type T, or false if the backend has not registered one.
func TryGetService[T any](p ServiceProvider) (T, bool) {
	var zero T
	svc, ok := p.Lookup(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := svc.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Register makes svc available as T.
func Register[T any](p ServiceProvider, svc T) {
	p.Set(reflect.TypeFor[T](), svc)
}
