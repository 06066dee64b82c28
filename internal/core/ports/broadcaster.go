package ports

// Broadcast topics. The names are the original front-desk client's event
// vocabulary and are part of the wire contract.
const (
	TopicAppointments = "appointmentUpdated"
	TopicDepartments  = "departmentsUpdated"
	TopicUsers        = "usersUpdated"
	TopicPermissions  = "permissionsUpdated"
)

// Broadcaster fans a payload out to every connected client. Delivery is
// fire-and-forget: no acknowledgment, no retry, latest snapshot wins.
// Publish never blocks on subscriber processing.
type Broadcaster interface {
	Publish(topic string, payload any)
}

// NopBroadcaster discards all publishes. Useful in tests and tooling.
type NopBroadcaster struct{}

func (NopBroadcaster) Publish(string, any) {}
