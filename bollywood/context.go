package bollywood

// Context gives an actor access to the engine while it handles a message.
type Context interface {
	Engine() *Engine
	Self() *PID
	// Sender is nil for messages sent from outside the actor system.
	Sender() *PID
	Message() interface{}
	// Reply answers an Ask, or sends to Sender when the message was not an Ask.
	Reply(message interface{})
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
	replyTo chan interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }

func (c *context) Reply(message interface{}) {
	if c.replyTo != nil {
		select {
		case c.replyTo <- message:
		default:
		}
		return
	}
	if c.sender != nil {
		c.engine.Send(c.sender, message, c.self)
	}
}
