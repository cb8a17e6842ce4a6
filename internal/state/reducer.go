package state

import "github.com/postdeck/postdeck/internal/post"

// State is the composite application state. Each field is reduced
// independently; there are no cross-field invariants.
type State struct {
	Posts   []post.Post
	Loading bool
	Err     bool
}

// Initial returns the state every store starts from.
func Initial() State {
	return State{Posts: []post.Post{}}
}

// Slice reducers. Each is a pure total function of (previous slice, action):
// it returns the action's payload for the one variant it owns and the
// previous slice untouched for everything else.

func reduceErr(prev bool, a Action) bool {
	if a, ok := a.(SetErr); ok {
		return a.Flag
	}
	return prev
}

func reduceLoading(prev bool, a Action) bool {
	if a, ok := a.(SetLoading); ok {
		return a.Flag
	}
	return prev
}

func reducePosts(prev []post.Post, a Action) []post.Post {
	if a, ok := a.(SetPosts); ok {
		return a.Posts
	}
	return prev
}

// Reduce applies every slice reducer to its own field and returns the next
// composite state.
func Reduce(prev State, a Action) State {
	return State{
		Posts:   reducePosts(prev.Posts, a),
		Loading: reduceLoading(prev.Loading, a),
		Err:     reduceErr(prev.Err, a),
	}
}
