package tgbot

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestBot_StopBeforeRun(t *testing.T) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	b := newBot(nil, l, NewCommands(&fakePlayers{}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Stop()
		}()
	}
	wg.Wait()
	assert.ErrorIs(t, b.stopped.Err(), context.Canceled)

	// A stopped bot returns at once without touching the api.
	done := make(chan struct{})
	go func() {
		b.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run kept going after Stop")
	}
}
