package metrics

import "github.com/belimawr/team-logos/resolver"

// Noop discards every observation.
type Noop struct{}

// RecordLookup is a no-op.
func (Noop) RecordLookup(string) {}

// RecordRemoteRequest is a no-op.
func (Noop) RecordRemoteRequest(string) {}

var _ resolver.Recorder = Noop{}
