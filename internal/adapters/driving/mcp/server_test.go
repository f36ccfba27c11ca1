package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil converter returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingConverter)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Converter: &mockConverter{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil converter returns error", func(t *testing.T) {
		ports := &Ports{}
		assert.ErrorIs(t, ports.Validate(), ErrMissingConverter)
	})

	t.Run("converter only is valid", func(t *testing.T) {
		ports := &Ports{Converter: &mockConverter{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Converter: &mockConverter{},
			Registry:  &mockRegistry{},
			Store:     &mockStore{},
		}
		assert.NoError(t, ports.Validate())
	})
}
