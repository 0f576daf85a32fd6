package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionStore(t *testing.T) {
	store := NewSessionStore(nil)

	assert.NotNil(t, store)
	assert.Nil(t, store.client)
}
