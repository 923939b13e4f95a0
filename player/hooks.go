package player

// Hook is a multicast animation callback. Handlers are registered through
// Subscribe and removed by releasing the returned Subscription.
type Hook struct {
	next uint64
	subs []hookSub
}

type hookSub struct {
	id uint64
	fn func()
}

// Subscription is the token returned by Hook.Subscribe.
type Subscription struct {
	hook *Hook
	id   uint64
}

// Subscribe registers fn and returns its token. A nil fn yields a nil
// Subscription, which is safe to Release.
func (h *Hook) Subscribe(fn func()) *Subscription {
	if h == nil || fn == nil {
		return nil
	}
	h.next++
	h.subs = append(h.subs, hookSub{id: h.next, fn: fn})
	return &Subscription{hook: h, id: h.next}
}

// Release removes the handler. Calling it more than once is a no-op.
func (s *Subscription) Release() {
	if s == nil || s.hook == nil {
		return
	}
	h := s.hook
	s.hook = nil
	for i, sub := range h.subs {
		if sub.id == s.id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

// Active reports whether the subscription has not been released.
func (s *Subscription) Active() bool {
	return s != nil && s.hook != nil
}

// Invoke calls every handler in subscription order. Handlers added or
// released during Invoke take effect on the next call.
func (h *Hook) Invoke() {
	if h == nil || len(h.subs) == 0 {
		return
	}
	subs := append([]hookSub(nil), h.subs...)
	for _, sub := range subs {
		sub.fn()
	}
}

// Len returns the number of live handlers.
func (h *Hook) Len() int {
	if h == nil {
		return 0
	}
	return len(h.subs)
}

// subscriptions collects the tokens acquired by one state activation.
type subscriptions []*Subscription

func (s *subscriptions) add(h *Hook, fn func()) {
	if sub := h.Subscribe(fn); sub != nil {
		*s = append(*s, sub)
	}
}

func (s *subscriptions) releaseAll() {
	for _, sub := range *s {
		sub.Release()
	}
	*s = (*s)[:0]
}
