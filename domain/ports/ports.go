// Package ports defines the outbound contracts a host binding layer consumes.
// The SDK's model type implements every interface here; binding code should
// depend on these interfaces rather than on concrete types.
package ports

// Subscriber receives the name of a property whose stored value changed.
// Delivery is synchronous, on the goroutine that performed the mutation.
type Subscriber func(property string)

// Token identifies one subscription for later removal.
type Token int

// ValidationSource is the per-field validity surface a binding layer polls to
// drive error indicators. ErrorFor returns "" when the property is valid or
// has no validation rule.
type ValidationSource interface {
	ErrorFor(property string) string
	ErrorsFor() map[string]string
	Valid() bool
	LastError() string
}

// ChangeNotifier is the subscription surface for change notifications.
// Subscribers are invoked in registration order.
type ChangeNotifier interface {
	Subscribe(fn Subscriber) Token
	Unsubscribe(token Token)
}
