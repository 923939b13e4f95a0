package fsm

import "errors"

var (
	ErrNilState       = errors.New("fsm: state is nil")
	ErrAlreadyStarted = errors.New("fsm: initial state already set")
	ErrTerminated     = errors.New("fsm: machine terminated")
)

// State is one behavior mode of a machine. The machine calls OnEnter and
// OnExit on every switch in and out, and Tick / FixedTick while active.
type State interface {
	Name() string
	OnEnter()
	Tick(dt float64)
	FixedTick(dt float64)
	OnExit()
}

// Predicate decides whether a transition fires. It must only read state.
type Predicate func() bool

// Transition is a directed edge to a state guarded by a predicate.
type Transition struct {
	To   State
	Cond Predicate
}

// Status is the lifecycle stage of a machine.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusTerminated
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

type observer struct {
	id uint64
	fn func(name string)
}

// Machine evaluates ordered transitions every tick. Any-transitions are
// checked before the current state's own transitions and the first true
// predicate wins.
type Machine struct {
	current     State
	transitions map[State][]Transition
	any         []Transition
	status      Status

	observers []observer
	nextObsID uint64
}

func NewMachine() *Machine {
	return &Machine{
		transitions: make(map[State][]Transition),
	}
}

// AddTransition registers an edge scoped to from. Duplicates are kept and
// evaluated in insertion order.
func (m *Machine) AddTransition(from, to State, cond Predicate) {
	if m == nil || from == nil || to == nil || cond == nil {
		return
	}
	if m.transitions == nil {
		m.transitions = make(map[State][]Transition)
	}
	m.transitions[from] = append(m.transitions[from], Transition{To: to, Cond: cond})
}

// AddAnyTransition registers an edge evaluated from every state.
func (m *Machine) AddAnyTransition(to State, cond Predicate) {
	if m == nil || to == nil || cond == nil {
		return
	}
	m.any = append(m.any, Transition{To: to, Cond: cond})
}

// SetInitialState sets the current state and runs its OnEnter.
func (m *Machine) SetInitialState(s State) error {
	if s == nil {
		return ErrNilState
	}
	switch m.status {
	case StatusRunning:
		return ErrAlreadyStarted
	case StatusTerminated:
		return ErrTerminated
	}
	m.status = StatusRunning
	m.current = s
	m.notify(s.Name())
	s.OnEnter()
	return nil
}

// Tick evaluates transitions and then ticks the current state.
func (m *Machine) Tick(dt float64) {
	if !m.evaluate() {
		return
	}
	m.current.Tick(dt)
}

// FixedTick evaluates transitions and then fixed-ticks the current state.
func (m *Machine) FixedTick(dt float64) {
	if !m.evaluate() {
		return
	}
	m.current.FixedTick(dt)
}

// evaluate switches on the first true transition and reports whether the
// current state should still be ticked.
func (m *Machine) evaluate() bool {
	if m == nil || m.status != StatusRunning || m.current == nil {
		return false
	}
	if next, ok := m.next(); ok {
		m.switchTo(next)
	}
	return m.status == StatusRunning
}

func (m *Machine) next() (State, bool) {
	for _, t := range m.any {
		if t.Cond() {
			return t.To, true
		}
	}
	for _, t := range m.transitions[m.current] {
		if t.Cond() {
			return t.To, true
		}
	}
	return nil, false
}

// switchTo runs exit on the old state and enter on the new one. Self
// transitions run the full pair. Observers hear of the switch before enter
// runs, so a state that terminates the machine on enter is still reported.
func (m *Machine) switchTo(next State) {
	m.current.OnExit()
	m.current = next
	m.notify(next.Name())
	next.OnEnter()
}

// Terminate freezes the machine. Further ticks are no-ops and observers are
// dropped. The current state is not exited.
func (m *Machine) Terminate() {
	if m == nil {
		return
	}
	m.status = StatusTerminated
	m.observers = nil
}

// Observe registers fn to receive the state name on every switch, before the
// new state's OnEnter. The returned cancel func may be called more than once.
func (m *Machine) Observe(fn func(name string)) (cancel func()) {
	if m == nil || fn == nil || m.status == StatusTerminated {
		return func() {}
	}
	m.nextObsID++
	id := m.nextObsID
	m.observers = append(m.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

func (m *Machine) notify(name string) {
	// copy so an observer may cancel itself mid-notify
	for _, o := range append([]observer(nil), m.observers...) {
		o.fn(name)
	}
}

// Current returns the active state, or nil before SetInitialState.
func (m *Machine) Current() State {
	if m == nil {
		return nil
	}
	return m.current
}

// Status returns the lifecycle stage.
func (m *Machine) Status() Status {
	if m == nil {
		return StatusIdle
	}
	return m.status
}
