// Package channel, metot çağrısı sınırını ve sonuçların tek bağlam üzerinde
// teslimini yürütür.
//
// Callers invoke methods with argument maps and receive a single
// result-or-error callback per call. All query and merge work runs off the
// caller's goroutine; only the final delivery is marshaled back onto the
// dispatcher's designated goroutine.
package channel

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/sentiric/sentiric-contact-service/internal/logger"
)

// Error is the structured failure delivered to the caller: a machine code
// (possibly empty), a human message and the raw failure details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Callback receives the outcome of one method call.
type Callback func(value any, cerr *Error)

type delivery struct {
	callID string
	cb     Callback
	value  any
	cerr   *Error
}

// Dispatcher delivers call outcomes on a single designated goroutine,
// regardless of which concurrent task produced them.
type Dispatcher struct {
	log        zerolog.Logger
	deliveries chan delivery
	closeOnce  sync.Once
	done       chan struct{}
}

// NewDispatcher, teslim döngüsünü başlatır.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		log:        log,
		deliveries: make(chan delivery, 64),
		done:       make(chan struct{}),
	}
	go d.loop()
	return d
}

func (d *Dispatcher) loop() {
	defer close(d.done)
	for dv := range d.deliveries {
		dv.cb(dv.value, dv.cerr)
		if dv.cerr != nil {
			d.log.Debug().
				Str("event", logger.EventResultDeliveryError).
				Str("call_id", dv.callID).
				Str("code", dv.cerr.Code).
				Msg("Hata sonucu teslim edildi")
		} else {
			d.log.Debug().
				Str("event", logger.EventResultDelivered).
				Str("call_id", dv.callID).
				Msg("Sonuç teslim edildi")
		}
	}
}

// Bind returns a completion function that enqueues the outcome for delivery
// to cb on the dispatch goroutine. The returned function delivers at most
// once per invocation, no matter how many tasks call it.
func (d *Dispatcher) Bind(callID string, cb Callback) Callback {
	var once sync.Once
	return func(value any, cerr *Error) {
		once.Do(func() {
			d.deliveries <- delivery{callID: callID, cb: cb, value: value, cerr: cerr}
		})
	}
}

// Close stops the delivery loop after draining pending deliveries.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.deliveries)
	})
	<-d.done
}
