package metrics

import (
	"errors"

	"github.com/joeydtaylor/steeze-router/pkg/core"
)

const (
	OutcomeResolved = "resolved"
	OutcomeFallback = "fallback"
	OutcomeCycle    = "cycle"
	OutcomeTooDeep  = "too_many_hops"
	OutcomeError    = "error"
)

// DispatchObserver records every resolution the dispatcher performs.
type DispatchObserver struct{}

var _ core.Observer = DispatchObserver{}

func (DispatchObserver) ObserveDispatch(op, scheme, module string, hops int, err error) {
	dispatchTotal.WithLabelValues(op, scheme, module, outcome(module, err)).Inc()
	if err == nil {
		descentHops.WithLabelValues(scheme).Observe(float64(hops))
	}
}

func outcome(module string, err error) string {
	switch {
	case errors.Is(err, core.ErrRoutingCycle):
		return OutcomeCycle
	case errors.Is(err, core.ErrTooManyHops):
		return OutcomeTooDeep
	case err != nil:
		return OutcomeError
	case module == core.EmptyModule:
		return OutcomeFallback
	}
	return OutcomeResolved
}
