package bollywood

import (
	"log"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
	}
}

// deliver never blocks. A full mailbox drops the message.
func (p *process) deliver(envelope *messageEnvelope) {
	_, isStopping := envelope.Message.(Stopping)
	if p.stopped.Load() && !isStopping {
		return
	}

	select {
	case p.mailbox <- envelope:
	default:
		log.Printf("[ACTOR] %s mailbox full, dropping %T", p.pid, envelope.Message)
	}
}

func (p *process) run() {
	defer p.engine.remove(p.pid)

	p.actor = p.props.Produce()
	if p.actor == nil {
		log.Printf("[ACTOR] %s producer returned nil actor", p.pid)
		p.stopped.Store(true)
		return
	}

	if !p.invokeReceive(&messageEnvelope{Message: Started{}}) {
		p.shutdown()
		return
	}

	for envelope := range p.mailbox {
		if _, isStopping := envelope.Message.(Stopping); isStopping {
			p.shutdown()
			return
		}
		if p.stopped.Load() {
			continue
		}
		if !p.invokeReceive(envelope) {
			p.shutdown()
			return
		}
	}
}

// shutdown runs the Stopping and Stopped handlers exactly once.
func (p *process) shutdown() {
	if !p.stopped.CompareAndSwap(false, true) {
		return
	}
	p.invokeReceive(&messageEnvelope{Message: Stopping{}})
	p.invokeReceive(&messageEnvelope{Message: Stopped{}})
}

// invokeReceive calls the actor's Receive and reports false if it panicked.
func (p *process) invokeReceive(envelope *messageEnvelope) (ok bool) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		replyTo: envelope.replyTo,
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ACTOR] %s panicked during Receive(%T): %v\n%s", p.pid, envelope.Message, r, string(debug.Stack()))
			ok = false
		}
	}()
	p.actor.Receive(ctx)
	return true
}
