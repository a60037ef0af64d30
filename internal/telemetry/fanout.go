package telemetry

import "rubycore/internal/ic"

// Fanout combines multiple dispatch.Observer implementations (e.g. Store
// and Stream together) into one, so internal/dispatch.Engine only ever
// needs a single observer reference.
type Fanout struct {
	Observers []interface {
		OnTransition(siteID, method string, from, to ic.StateType)
		OnDispatch(siteID, method, class string, hit bool)
	}
}

func (f Fanout) OnTransition(siteID, method string, from, to ic.StateType) {
	for _, o := range f.Observers {
		o.OnTransition(siteID, method, from, to)
	}
}

func (f Fanout) OnDispatch(siteID, method, class string, hit bool) {
	for _, o := range f.Observers {
		o.OnDispatch(siteID, method, class, hit)
	}
}
