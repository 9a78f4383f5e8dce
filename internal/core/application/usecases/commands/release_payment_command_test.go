package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReleasePaymentCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	callerID := kernel.NewUUID()

	cmd, err := commands.NewReleasePaymentCommand(orderID, callerID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, callerID, cmd.CallerID())
}

func TestNewReleasePaymentCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewReleasePaymentCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestReleasePaymentCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ReleasePaymentCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrReleasePaymentCommandIsNotConstructed)
}
