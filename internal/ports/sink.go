package ports

// TagSink receives tags as the scanner finds them. Emit is called
// synchronously, once per recognized declaration, in source order.
type TagSink interface {
	Emit(tag Tag)
}

// SinkFunc adapts a plain function to the TagSink interface.
type SinkFunc func(tag Tag)

// Emit calls f(tag).
func (f SinkFunc) Emit(tag Tag) { f(tag) }
