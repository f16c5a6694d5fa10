package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serverless/modal-bridge/util"
)

func TestInitiateShutdown_Idempotent(t *testing.T) {
	guard := util.NewShutdownGuard()

	guard.InitiateShutdown()
	guard.InitiateShutdown()

	_, open := <-guard.ShuttingDown
	assert.False(t, open)
}

func TestShutdownAndWait(t *testing.T) {
	guard := util.NewShutdownGuard()
	guard.Add(1)
	go func() {
		<-guard.ShuttingDown
		guard.Done()
	}()

	guard.ShutdownAndWait()
}
