package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewDispatchPrintJobsCommand_Success(t *testing.T) {
	cmd := commands.NewDispatchPrintJobsCommand()
	require.NoError(t, cmd.Validate())
}

func TestDispatchPrintJobsCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.DispatchPrintJobsCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDispatchPrintJobsCommandIsNotConstructed)
}
