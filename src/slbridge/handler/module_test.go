package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestModule(t *testing.T) {
	assert.NotNil(t, Module)
	assert.IsType(t, fx.Options(), Module)
}
