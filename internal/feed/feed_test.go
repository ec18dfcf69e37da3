package feed

import (
	"context"
	"testing"
	"time"

	"github.com/ebarbosa87/pixmart/internal/config"
	"github.com/ebarbosa87/pixmart/internal/logger"
	"github.com/ebarbosa87/pixmart/internal/models"
	"github.com/ebarbosa87/pixmart/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestBroker_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	broker := NewBroker(mockNotifications)

	chAna, cancelAna := broker.Subscribe("ana")
	defer cancelAna()
	chJoao, cancelJoao := broker.Subscribe("joao")
	defer cancelJoao()

	broker.Dispatch(models.NotificationData{ID: "n1", UserID: "ana", Title: "New sale"})

	select {
	case n := <-chAna:
		if n.ID != "n1" {
			t.Errorf("Expected notification 'n1', got: '%s'", n.ID)
		}
	default:
		t.Errorf("Expected a notification for the subscribed user")
	}

	select {
	case n := <-chJoao:
		t.Errorf("Unexpected notification '%s' for another user", n.ID)
	default:
	}
}

func TestBroker_DispatchDropsSlowConsumer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	broker := NewBroker(mockNotifications)

	ch, cancel := broker.Subscribe("ana")
	defer cancel()

	// nobody drains the channel, events past the buffer must be dropped
	// without blocking the broker
	for i := 0; i < subscriberBuffer+5; i++ {
		broker.Dispatch(models.NotificationData{ID: "n", UserID: "ana"})
	}

	if len(ch) != subscriberBuffer {
		t.Errorf("Expected %d buffered notifications, got: %d", subscriberBuffer, len(ch))
	}
}

func TestBroker_Poll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockNotifications := mocks.NewMockNotificationsStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	broker := NewBroker(mockNotifications)

	// no subscribers: the store is not queried, the cursor still advances
	before := broker.lastSeen
	time.Sleep(5 * time.Millisecond)
	broker.Poll(context.Background())
	if !broker.lastSeen.After(before) {
		t.Errorf("Expected the cursor to advance while idle")
	}

	ch, cancel := broker.Subscribe("ana")
	defer cancel()

	created := time.Now()
	mockNotifications.EXPECT().GetNotificationsAfter(gomock.Any(), gomock.Any()).Return([]models.NotificationData{
		{ID: "n1", UserID: "ana", Title: "New sale", CreatedAt: created},
	}, nil)

	broker.Poll(context.Background())

	select {
	case n := <-ch:
		if n.ID != "n1" {
			t.Errorf("Expected notification 'n1', got: '%s'", n.ID)
		}
	default:
		t.Errorf("Expected the polled notification to be dispatched")
	}

	if !broker.lastSeen.Equal(created) {
		t.Errorf("Expected the cursor to land on the newest row")
	}
}
