package notify

import "runtime/debug"

type (
	//Notifier represents a payload-less change notification
	Notifier interface {
		Fire()
		Destroy()
	}

	//Subscriber represents a notifier that accepts listeners
	Subscriber interface {
		Subscribe(listener func()) func()
	}

	//Signal represents default notifier
	Signal struct {
		listeners map[int]func()
		order     []int
		nextID    int
		onPanic   PanicHandler
		destroyed bool
	}
)

// Subscribe adds a listener, it returns an unsubscribe function
func (s *Signal) Subscribe(listener func()) func() {
	if s.destroyed || listener == nil {
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.order = append(s.order, id)
	return func() {
		s.unsubscribe(id)
	}
}

func (s *Signal) unsubscribe(id int) {
	if _, ok := s.listeners[id]; !ok {
		return
	}
	delete(s.listeners, id)
	for i, candidate := range s.order {
		if candidate == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Fire calls all listeners subscribed at the time of the call.
// Listeners removed by an earlier listener during the same fire are skipped.
func (s *Signal) Fire() {
	if s.destroyed || len(s.order) == 0 {
		return
	}
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	for _, id := range ids {
		listener, ok := s.listeners[id]
		if !ok {
			continue
		}
		s.call(listener)
	}
}

func (s *Signal) call(listener func()) {
	if s.onPanic != nil {
		defer func() {
			if r := recover(); r != nil {
				s.onPanic(&PanicError{Value: r, StackTrace: string(debug.Stack())})
			}
		}()
	}
	listener()
}

// ListenerCount returns number of active listeners
func (s *Signal) ListenerCount() int {
	return len(s.listeners)
}

// Destroy removes all listeners, subsequent Fire calls are no-op
func (s *Signal) Destroy() {
	s.destroyed = true
	s.listeners = map[int]func(){}
	s.order = nil
}

// IsDestroyed returns true if signal was destroyed
func (s *Signal) IsDestroyed() bool {
	return s.destroyed
}

// New creates a signal
func New(opts ...Option) *Signal {
	ret := &Signal{listeners: map[int]func(){}}
	Options(opts).Apply(ret)
	return ret
}
