package resolver

import "context"

// Lookup sources reported to a Recorder
const (
	SourceCache    = "cache"
	SourceRemote   = "remote"
	SourceFallback = "fallback"
)

// Remote request results reported to a Recorder
const (
	RemoteSuccess = "success"
	RemoteNoMatch = "no_match"
	RemoteFailure = "failure"
)

// Resolver - interface that resolves team names into logo references.
// A logo reference is either a remote URL or an inline data URI and is
// never empty.
type Resolver interface {
	Resolve(ctx context.Context, team string) string
	ResolveMany(ctx context.Context, teams []string) map[string]string
	Preload(ctx context.Context, teams []string)
	ClearCache(ctx context.Context) error
}

// Recorder receives lookup observations
type Recorder interface {
	RecordLookup(source string)
	RecordRemoteRequest(result string)
}

type noopRecorder struct{}

func (noopRecorder) RecordLookup(string)        {}
func (noopRecorder) RecordRemoteRequest(string) {}
