package state

import (
	"context"

	"github.com/postdeck/postdeck/internal/post"
)

// Fetcher retrieves the remote post list. It is the store core's only view of
// the network; the HTTP client satisfies it.
type Fetcher func(ctx context.Context) ([]post.Post, error)

// FetchPosts returns the task that drives one full fetch cycle:
// loading on and any stale error cleared, fetch, then either the posts or
// the error flag. The loading flag is cleared on both outcomes, so a failed
// fetch never leaves the UI stuck on the spinner.
func FetchPosts(fetch Fetcher) Task {
	return func(ctx context.Context, d Dispatcher) {
		d.Dispatch(SetLoading{Flag: true})
		d.Dispatch(SetErr{Flag: false})

		posts, err := fetch(ctx)
		d.Dispatch(SetLoading{Flag: false})
		if err != nil {
			d.Dispatch(SetErr{Flag: true})
			return
		}
		d.Dispatch(SetPosts{Posts: posts})
	}
}
