package realtime

import (
	evbus "github.com/asaskevich/EventBus"
	"github.com/rs/zerolog"

	"github.com/ahams/appointment-register/internal/core/ports"
)

// Broadcaster implements ports.Broadcaster on an in-process event bus.
// Mutation services publish onto the bus; the websocket hub subscribes.
// Keeping the bus between them means the services never know whether, or
// to whom, anything is delivered.
type Broadcaster struct {
	bus evbus.Bus
	log zerolog.Logger
}

func NewBroadcaster(log zerolog.Logger) *Broadcaster {
	return &Broadcaster{bus: evbus.New(), log: log}
}

// Publish fires the payload to all bus subscribers asynchronously. The
// handler runs on a bus goroutine, so the publishing request handler never
// waits on subscriber processing.
func (b *Broadcaster) Publish(topic string, payload any) {
	b.bus.Publish(topic, payload)
}

// AttachHub subscribes the websocket hub to every broadcast topic.
func (b *Broadcaster) AttachHub(hub *Hub) error {
	for _, topic := range []string{
		ports.TopicAppointments,
		ports.TopicDepartments,
		ports.TopicUsers,
		ports.TopicPermissions,
	} {
		topic := topic
		if err := b.bus.SubscribeAsync(topic, func(payload any) {
			hub.Publish(topic, payload)
		}, false); err != nil {
			return err
		}
	}
	return nil
}
