package state

import "github.com/postdeck/postdeck/internal/post"

// Action describes one intended state change. The set of variants is closed:
// only types in this package implement the marker method, so the reducer can
// switch exhaustively without runtime shape checks.
type Action interface {
	isAction()
}

// SetErr records whether the most recent fetch failed.
type SetErr struct {
	Flag bool
}

// SetLoading records whether a fetch is in flight.
type SetLoading struct {
	Flag bool
}

// SetPosts replaces the fetched posts wholesale.
type SetPosts struct {
	Posts []post.Post
}

func (SetErr) isAction()     {}
func (SetLoading) isAction() {}
func (SetPosts) isAction()   {}
