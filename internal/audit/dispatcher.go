package audit

import (
	"sync"

	"go.uber.org/zap"
)

type Event struct {
	ShopID   string
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink grava o evento; o Dispatcher chama de uma única goroutine.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	log   *zap.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink, size int, log *zap.Logger) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	if log == nil {
		log = zap.NewNop()
	}

	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			d.log.Error("audit error",
				zap.String("action", ev.Action),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
		}
	}
}

// Dispatch nunca bloqueia a requisição: fila cheia descarta o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close para de aceitar eventos e espera a fila esvaziar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}

	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}
