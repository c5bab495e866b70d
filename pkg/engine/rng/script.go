package rng

// Sequence is a scripted Source that cycles through a fixed list of values.
// Used to pin generator behaviour in tests.
type Sequence struct {
	values []float64
	next   int
	drawn  int
}

// NewSequence creates a cycling Source. An empty list always yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float64 returns the next scripted value
func (s *Sequence) Float64() float64 {
	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Drawn returns how many values have been consumed
func (s *Sequence) Drawn() int {
	return s.drawn
}

// Prefixed replays a fixed prefix and then delegates to another Source.
// Handy for forcing the first draws (e.g. the room count) while leaving the rest random.
type Prefixed struct {
	prefix []float64
	then   Source
}

// NewPrefixed creates a Source that yields prefix first, then draws from then
func NewPrefixed(then Source, prefix ...float64) *Prefixed {
	return &Prefixed{
		prefix: append([]float64(nil), prefix...),
		then:   then,
	}
}

// Float64 returns the next prefix value, or a value from the wrapped source
func (p *Prefixed) Float64() float64 {
	if len(p.prefix) > 0 {
		v := p.prefix[0]
		p.prefix = p.prefix[1:]
		return v
	}
	return p.then.Float64()
}
