package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/homeroom/internal/app/models"
)

func newTestClient(perm models.Permission, buffer int) *Client {
	return &Client{send: make(chan []byte, buffer), perm: perm}
}

func TestDeliverRespectsClassScope(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	admin := newTestClient(models.Permission{Role: models.RoleAdmin}, 4)
	teacherA := newTestClient(models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"一年甲班"}}, 4)
	teacherB := newTestClient(models.Permission{Role: models.RoleTeacher, AssignedClasses: []string{"二年乙班"}}, 4)
	for _, c := range []*Client{admin, teacherA, teacherB} {
		hub.registerClient(c)
	}

	hub.deliver(Event{Type: EventAttendanceSaved, ClassName: "一年甲班"})
	assert.Len(t, admin.send, 1)
	assert.Len(t, teacherA.send, 1)
	assert.Len(t, teacherB.send, 0)

	hub.deliver(Event{Type: EventAnnouncementCreated})
	assert.Len(t, admin.send, 2)
	assert.Len(t, teacherA.send, 2)
	assert.Len(t, teacherB.send, 1)

	var got Event
	require.NoError(t, json.Unmarshal(<-teacherB.send, &got))
	assert.Equal(t, EventAnnouncementCreated, got.Type)
}

func TestDeliverDropsSlowClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	slow := newTestClient(models.Permission{Role: models.RoleAdmin}, 1)
	hub.registerClient(slow)

	hub.deliver(Event{Type: EventAnnouncementCreated})
	hub.deliver(Event{Type: EventAnnouncementUpdated})

	assert.Equal(t, 0, hub.ClientCount())
	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)
}

func TestRunDeliversPublishedEvents(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()

	c := newTestClient(models.Permission{Role: models.RolePartTime, AssignedClasses: []string{"一年甲班"}}, 4)
	require.True(t, hub.attach(c))
	hub.Publish(Event{Type: EventAnnouncementDeleted, Payload: map[string]int64{"id": 3}})

	select {
	case msg := <-c.send:
		assert.Contains(t, string(msg), EventAnnouncementDeleted)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}

	cancel()
	<-done
	_, open := <-c.send
	assert.False(t, open)
}

func TestStoppedHubReleasesClients(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := newTestClient(models.Permission{Role: models.RoleAdmin}, 1)
	require.True(t, hub.attach(c))
	cancel()
	<-stopped

	result := make(chan bool)
	go func() {
		hub.detach(c)
		result <- hub.attach(newTestClient(models.Permission{Role: models.RoleTeacher}, 1))
	}()

	select {
	case attached := <-result:
		assert.False(t, attached)
	case <-time.After(time.Second):
		t.Fatal("client blocked on a stopped hub")
	}
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHandleConnectionAfterHubStopped(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	hub.Run(ctx)

	r := gin.New()
	r.GET("/ws", func(c *gin.Context) {
		c.Set(ContextUserID, int64(7))
		c.Set(ContextPermission, models.Permission{Role: models.RoleAdmin})
	}, NewHandler(hub, nil, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}

func TestCanReceive(t *testing.T) {
	assert.False(t, canReceive(models.Permission{Role: "guest"}, Event{}))
	assert.True(t, canReceive(models.Permission{Role: models.RolePartTime}, Event{}))
	assert.False(t, canReceive(models.Permission{Role: models.RolePartTime}, Event{ClassName: "一年甲班"}))
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://school.example.tw/"})

	req := httptest.NewRequest("GET", "/api/v1/events/ws", nil)
	req.Header.Set("Origin", "https://school.example.tw")
	assert.True(t, check(req))

	req.Header.Set("Origin", "https://evil.example.com")
	assert.False(t, check(req))

	req.Header.Del("Origin")
	assert.True(t, check(req))

	assert.True(t, originChecker(nil)(req))
}
