package skin

// EventKind enumerates the events a node can handle.
// Each node has exactly one handler slot per kind.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventMouseDown
	EventMouseUp
	EventMouseOver
	EventMouseOut
	EventMouseMove
	EventFocus
	EventBlur
	EventKeyDown
	EventKeyRepeat
	EventTextInput
	EventTick
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	EventClick:     "click",
	EventMouseDown: "mousedown",
	EventMouseUp:   "mouseup",
	EventMouseOver: "mouseover",
	EventMouseOut:  "mouseout",
	EventMouseMove: "mousemove",
	EventFocus:     "focus",
	EventBlur:      "blur",
	EventKeyDown:   "keydown",
	EventKeyRepeat: "keyrepeat",
	EventTextInput: "textinput",
	EventTick:      "tick",
}

// String returns the event name.
func (k EventKind) String() string {
	if k >= eventKindCount {
		return "unknown"
	}
	return eventKindNames[k]
}

// isPointer reports whether the kind is routed by pointer position.
func (k EventKind) isPointer() bool {
	switch k {
	case EventClick, EventMouseDown, EventMouseUp, EventMouseOver, EventMouseOut, EventMouseMove:
		return true
	}
	return false
}

// Event is delivered to a node's handler.
type Event struct {
	Kind        EventKind
	Sender      *Node   // Node the handler is bound on
	Coordinates Vec2    // Pointer position in scene coordinates (pointer events)
	Key         Key     // KeyDown, KeyRepeat
	Ctrl        bool    // Control modifier held (KeyDown, KeyRepeat)
	Text        string  // TextInput
	Time        float64 // Frame time in seconds (Tick)
}

// Handler handles one kind of event on one node.
type Handler func(Event)

// Bind installs h as the handler for kind, replacing any previous one.
// A nil handler clears the slot.
func (n *Node) Bind(kind EventKind, h Handler) {
	if kind >= eventKindCount {
		return
	}
	n.handlers[kind] = h
}

// Unbind clears the handler for kind.
func (n *Node) Unbind(kind EventKind) {
	n.Bind(kind, nil)
}

// Handles reports whether a handler is bound for kind.
func (n *Node) Handles(kind EventKind) bool {
	return kind < eventKindCount && n.handlers[kind] != nil
}

// interactive reports whether any pointer handler is bound. Only
// interactive nodes are hit by the pointer.
func (n *Node) interactive() bool {
	for k := EventKind(0); k < eventKindCount; k++ {
		if k.isPointer() && n.handlers[k] != nil {
			return true
		}
	}
	return false
}

// emit calls the node's handler for e.Kind, if any.
func (n *Node) emit(e Event) bool {
	if n == nil || e.Kind >= eventKindCount {
		return false
	}
	h := n.handlers[e.Kind]
	if h == nil {
		return false
	}
	e.Sender = n
	h(e)
	return true
}
