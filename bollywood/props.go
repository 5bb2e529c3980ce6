package bollywood

// Producer creates a fresh Actor instance for a spawn.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer Producer
}

// NewProps panics on a nil producer since every spawn would fail.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

func (p *Props) Produce() Actor {
	return p.producer()
}
