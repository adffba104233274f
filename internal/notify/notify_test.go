package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_DeliversEvents(t *testing.T) {
	received := make(chan Event, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		received <- event
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	d := NewDispatcher(srv.URL, 8)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go d.Run(ctx)

	d.Emit(Event{Name: EventBalanceChanged, Payload: map[string]interface{}{"affiliate_id": float64(1)}})

	select {
	case event := <-received:
		assert.Equal(t, EventBalanceChanged, event.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestDispatcher_EmitNeverBlocks(t *testing.T) {
	d := NewDispatcher("http://localhost:0", 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			d.Emit(Event{Name: EventBatchStatusChanged})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit blocked with a full buffer")
	}
}
