package ethereum_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/olta-art/editions-indexer/internal/domain"
	"github.com/olta-art/editions-indexer/internal/logger"
	"github.com/olta-art/editions-indexer/internal/mocks"
	"github.com/olta-art/editions-indexer/internal/providers/ethereum"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		panic(err)
	}
	m.Run()
}

type testSubscriberMocks struct {
	ctrl   *gomock.Controller
	client *mocks.MockEthClient
	blocks *mocks.MockBlockProvider
	clock  *mocks.MockClock
}

func setupSubscriberTest(t *testing.T) *testSubscriberMocks {
	ctrl := gomock.NewController(t)
	return &testSubscriberMocks{
		ctrl:   ctrl,
		client: mocks.NewMockEthClient(ctrl),
		blocks: mocks.NewMockBlockProvider(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
}

func TestSubscribeEvents_RetriesAfterSubscribeFailure(t *testing.T) {
	tm := setupSubscriberTest(t)
	defer tm.ctrl.Finish()

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).
		MinTimes(2)

	// Every backoff wait fires immediately so the retry loop spins until
	// the context is canceled
	tm.clock.EXPECT().
		After(gomock.Any()).
		DoAndReturn(func(d time.Duration) <-chan time.Time {
			ch := make(chan time.Time, 1)
			ch <- time.Time{}
			return ch
		}).
		MinTimes(1)

	sub := ethereum.NewSubscriber(ethereum.Config{
		Addresses:            []string{"0xA000000000000000000000000000000000000001"},
		MaxSubscribeInterval: time.Second,
	}, tm.client, tm.blocks, tm.clock)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- sub.SubscribeEvents(ctx, 0, func(event *domain.ContractEvent) error {
			return nil
		})
	}()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not stop after context cancellation")
	}
}

func TestSubscribeEvents_StopsWhenContextCanceled(t *testing.T) {
	tm := setupSubscriberTest(t)
	defer tm.ctrl.Finish()

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).
		AnyTimes()

	// A wait that never fires; cancellation must win the select
	tm.clock.EXPECT().
		After(gomock.Any()).
		Return((<-chan time.Time)(make(chan time.Time))).
		AnyTimes()

	sub := ethereum.NewSubscriber(ethereum.Config{
		Addresses:            []string{"0xA000000000000000000000000000000000000001"},
		MaxSubscribeInterval: time.Second,
	}, tm.client, tm.blocks, tm.clock)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- sub.SubscribeEvents(ctx, 0, func(event *domain.ContractEvent) error {
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("subscriber did not stop after context cancellation")
	}
}
