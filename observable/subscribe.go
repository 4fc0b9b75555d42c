package observable

import "github.com/formbind-dev/formbind-sdk/domain/ports"

// Compile-time checks that Model satisfies the binding-layer contracts.
var (
	_ ports.ValidationSource = (*Model)(nil)
	_ ports.ChangeNotifier   = (*Model)(nil)
)

type subscription struct {
	token ports.Token
	fn    ports.Subscriber
}

// Subscribe adds a change-notification subscriber and returns a token for
// later removal. Subscribers are invoked synchronously, in registration
// order, on the goroutine that performs the mutation. The subscriber must
// not retain ownership of the model; the model owns the subscriber list.
// A nil fn is ignored and its token unsubscribes nothing.
func (m *Model) Subscribe(fn ports.Subscriber) ports.Token {
	m.nextToken++
	token := ports.Token(m.nextToken)
	if fn != nil {
		m.subs = append(m.subs, subscription{token: token, fn: fn})
	}
	return token
}

// Unsubscribe removes the subscriber identified by token. Unknown tokens are
// ignored.
func (m *Model) Unsubscribe(token ports.Token) {
	for i, s := range m.subs {
		if s.token == token {
			// Copy rather than shift in place, so a fan-out that is mid
			// delivery keeps iterating its own snapshot.
			remaining := make([]subscription, 0, len(m.subs)-1)
			remaining = append(remaining, m.subs[:i]...)
			m.subs = append(remaining, m.subs[i+1:]...)
			return
		}
	}
}

// notify fans a change notification out to every current subscriber.
// The subscriber list is captured once, so subscribing or unsubscribing
// from within a callback takes effect on the next notification.
func (m *Model) notify(property string) {
	m.logger.Debug("property changed", "property", property)
	current := m.subs
	for _, s := range current {
		s.fn(property)
	}
}
