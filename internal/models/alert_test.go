package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertEvent_Texts(t *testing.T) {
	near := CheckpointNear("Store")
	assert.Equal(t, "You are near Store!", near.NotificationBody())
	assert.Equal(t, "Near Store!", near.DisplayText())

	down := NetworkDown(NetworkDownMessage)
	assert.Equal(t, NetworkDownMessage, down.NotificationBody())
	assert.Equal(t, NetworkDownMessage, down.DisplayText())
}
