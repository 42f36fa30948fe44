package overlay

import (
	"github.com/danmichaelo/statusindicator/internal/host"
)

// notifier fans out configuration-change events to registered callbacks.
// Subscription lifetime is tied to the controller's Enabled state, so
// configuration changes while disabled notify nobody.
type notifier struct {
	subs map[int]func()
	next int
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[int]func())}
}

// subscribe registers fn and returns a cancelable subscription token
func (n *notifier) subscribe(fn func()) host.Subscription {
	id := n.next
	n.next++
	n.subs[id] = fn
	return &notifierToken{n: n, id: id}
}

// publish invokes every registered callback
func (n *notifier) publish() {
	for _, fn := range n.subs {
		fn()
	}
}

func (n *notifier) count() int {
	return len(n.subs)
}

type notifierToken struct {
	n  *notifier
	id int
}

// Cancel removes the callback; safe to call more than once
func (t *notifierToken) Cancel() {
	delete(t.n.subs, t.id)
}
