// Copyright 2025 Rentledger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/rentledger-io/rentledger/event"
)

func TestEventBusSingleSubscriber(t *testing.T) {
	var testEvtData int = 999
	var testEvtType event.EventType = "test.event"
	eb := event.NewEventBus(nil, nil)
	_, subCh := eb.Subscribe(testEvtType)
	eb.Publish(testEvtType, event.NewEvent(testEvtType, testEvtData))
	select {
	case evt, ok := <-subCh:
		if !ok {
			t.Fatalf("event channel closed unexpectedly")
		}
		switch v := evt.Data.(type) {
		case int:
			if v != testEvtData {
				t.Fatalf("did not get expected event")
			}
		default:
			t.Fatalf(
				"event data was not of expected type, expected int, got %T",
				evt.Data,
			)
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	var testEvtData int = 999
	var testEvtType event.EventType = "test.event"
	eb := event.NewEventBus(nil, nil)
	_, sub1Ch := eb.Subscribe(testEvtType)
	_, sub2Ch := eb.Subscribe(testEvtType)
	eb.Publish(testEvtType, event.NewEvent(testEvtType, testEvtData))
	var gotVal1, gotVal2 bool
	for {
		if gotVal1 && gotVal2 {
			break
		}
		select {
		case evt, ok := <-sub1Ch:
			if !ok {
				t.Fatalf("event channel closed unexpectedly")
			}
			if evt.Data.(int) != testEvtData {
				t.Fatalf("did not get expected event")
			}
			gotVal1 = true
		case evt, ok := <-sub2Ch:
			if !ok {
				t.Fatalf("event channel closed unexpectedly")
			}
			if evt.Data.(int) != testEvtData {
				t.Fatalf("did not get expected event")
			}
			gotVal2 = true
		case <-time.After(1 * time.Second):
			t.Fatalf("timeout waiting for event")
		}
	}
}

func TestEventBusSubscribeFunc(t *testing.T) {
	var testEvtType event.EventType = "test.event"
	var handlerCalls atomic.Int64
	eb := event.NewEventBus(nil, nil)
	eb.SubscribeFunc(testEvtType, func(evt event.Event) {
		handlerCalls.Add(1)
	})
	eb.Publish(testEvtType, event.NewEvent(testEvtType, nil))
	eb.Publish(testEvtType, event.NewEvent(testEvtType, nil))
	deadline := time.Now().Add(1 * time.Second)
	for time.Now().Before(deadline) {
		if handlerCalls.Load() == 2 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf(
		"expected 2 handler calls, got %d",
		handlerCalls.Load(),
	)
}

func TestEventBusUnsubscribe(t *testing.T) {
	var testEvtType event.EventType = "test.event"
	eb := event.NewEventBus(nil, nil)
	subId, subCh := eb.Subscribe(testEvtType)
	eb.Unsubscribe(testEvtType, subId)
	// Channel should be closed after unsubscribe
	select {
	case _, ok := <-subCh:
		if ok {
			t.Fatalf("expected closed channel, got event")
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}
	// Publishing after unsubscribe should not panic
	eb.Publish(testEvtType, event.NewEvent(testEvtType, nil))
}

func TestEventBusStopClosesSubscribers(t *testing.T) {
	var testEvtType event.EventType = "test.event"
	eb := event.NewEventBus(nil, nil)
	_, subCh := eb.Subscribe(testEvtType)
	eb.Stop()
	select {
	case _, ok := <-subCh:
		if ok {
			t.Fatalf("expected closed channel, got event")
		}
	case <-time.After(1 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}
}
