package realtime

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/ports"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hub.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	e := echo.New()
	e.GET("/ws", hub.ServeWS)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(frame, &env); err != nil {
		t.Fatalf("invalid frame: %v", err)
	}
	return env
}

func TestHub_PublishReachesAllClients(t *testing.T) {
	hub, srv := startHub(t)

	first := dial(t, srv)
	second := dial(t, srv)

	// Registration happens on the hub goroutine; give it a beat.
	time.Sleep(50 * time.Millisecond)

	hub.Publish(ports.TopicAppointments, []map[string]any{{"id": "a1"}})

	for _, conn := range []*websocket.Conn{first, second} {
		env := readEnvelope(t, conn)
		if env.Event != ports.TopicAppointments {
			t.Fatalf("unexpected event: %s", env.Event)
		}
		list, ok := env.Data.([]any)
		if !ok || len(list) != 1 {
			t.Fatalf("unexpected payload: %+v", env.Data)
		}
	}
}

func TestHub_FrameCarriesEventAndData(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	time.Sleep(50 * time.Millisecond)

	hub.Publish(ports.TopicDepartments, []string{"Cardiology"})

	env := readEnvelope(t, conn)
	if env.Event != ports.TopicDepartments {
		t.Fatalf("unexpected event: %s", env.Event)
	}
}

func TestBroadcaster_DeliversThroughHub(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	time.Sleep(50 * time.Millisecond)

	b := NewBroadcaster(zerolog.Nop())
	if err := b.AttachHub(hub); err != nil {
		t.Fatalf("attach failed: %v", err)
	}

	b.Publish(ports.TopicUsers, []map[string]any{{"username": "alice"}})

	env := readEnvelope(t, conn)
	if env.Event != ports.TopicUsers {
		t.Fatalf("unexpected event: %s", env.Event)
	}
}

func TestBroadcaster_PublishWithoutSubscribersDoesNotBlock(t *testing.T) {
	b := NewBroadcaster(zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			b.Publish(ports.TopicPermissions, map[string]any{"username": "alice"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("publish blocked without subscribers")
	}
}
