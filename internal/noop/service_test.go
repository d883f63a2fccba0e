package noop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLogger struct {
	messages []string
}

func (f *fakeLogger) Info(s string) { f.messages = append(f.messages, s) }

func Test_Service(t *testing.T) {
	t.Parallel()

	logger := &fakeLogger{}
	service := New("state file watcher", logger)

	assert.Equal(t, "state file watcher (disabled)", service.String())

	runError, err := service.Start(context.Background())
	assert.Nil(t, runError)
	assert.NoError(t, err)
	assert.Equal(t, []string{"state file watcher is disabled"}, logger.messages)

	err = service.Stop()
	assert.NoError(t, err)
}
