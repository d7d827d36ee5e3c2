package actions

import "context"

// ListCache is notified after a committed write so cached list views for the
// given dashboard path are dropped. Implementations must not fail the
// mutation: invalidation is fire-and-forget.
type ListCache interface {
	NotifyListChanged(ctx context.Context, path string)
}

// Navigator redirects the client after a successful mutation. The HTTP layer
// binds it to the live response; tests substitute a recorder.
type Navigator interface {
	NavigateTo(path string)
}
