package slcore

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePropertiesService struct{}

func (fakePropertiesService) SetAnalysisProperties(ctx context.Context, scopeID string, properties map[string]string) error {
	return nil
}

func TestTryGetService(t *testing.T) {
	p := NewServiceProvider()

	_, ok := TryGetService[AnalysisPropertiesService](p)
	assert.False(t, ok, "nothing registered yet")

	Register[AnalysisPropertiesService](p, fakePropertiesService{})
	svc, ok := TryGetService[AnalysisPropertiesService](p)
	assert.True(t, ok)
	assert.Equal(t, fakePropertiesService{}, svc)

	_, ok = TryGetService[AnalysisService](p)
	assert.False(t, ok, "other services stay unavailable")

	p.Clear()
	_, ok = TryGetService[AnalysisPropertiesService](p)
	assert.False(t, ok)
}

func TestTryGetServiceWrongType(t *testing.T) {
	p := NewServiceProvider()
	p.Set(reflect.TypeFor[AnalysisService](), "not a service")

	_, ok := TryGetService[AnalysisService](p)
	assert.False(t, ok)
}
