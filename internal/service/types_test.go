package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwi/internal/service"
)

func TestEventKey(t *testing.T) {
	key := service.EventKey("Pay rent, a=b")

	parsed, err := uuid.Parse(key)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), parsed.Version())
	assert.NotContains(t, key, "=")
	assert.NotContains(t, key, ",")

	assert.Equal(t, key, service.EventKey("PAY RENT, A=B"), "case is ignored")
	assert.NotEqual(t, key, service.EventKey("Pay rent, a=c"))
	assert.NotEqual(t, service.EventKey("a"), service.EventKey("a "))
}
