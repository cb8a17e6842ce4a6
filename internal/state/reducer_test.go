package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postdeck/postdeck/internal/post"
)

func TestInitial(t *testing.T) {
	s := Initial()
	require.NotNil(t, s.Posts)
	assert.Empty(t, s.Posts)
	assert.False(t, s.Loading)
	assert.False(t, s.Err)
}

func TestReduce_SetErr(t *testing.T) {
	for _, flag := range []bool{true, false} {
		// regardless of the previous value
		for _, prev := range []bool{true, false} {
			s := Reduce(State{Err: prev}, SetErr{Flag: flag})
			assert.Equal(t, flag, s.Err)
		}
	}
}

func TestReduce_SetLoading(t *testing.T) {
	for _, flag := range []bool{true, false} {
		for _, prev := range []bool{true, false} {
			s := Reduce(State{Loading: prev}, SetLoading{Flag: flag})
			assert.Equal(t, flag, s.Loading)
		}
	}
}

func TestReduce_SetPosts(t *testing.T) {
	posts := []post.Post{
		{ID: 2, Title: "second", Body: "b"},
		{ID: 1, Title: "first", Body: "a"},
	}
	s := Reduce(State{Posts: []post.Post{{ID: 9}}}, SetPosts{Posts: posts})

	// order and elements are preserved exactly
	if diff := cmp.Diff(posts, s.Posts); diff != "" {
		t.Fatalf("posts mismatch (-want +got):\n%s", diff)
	}
}

func TestReduce_UnrelatedActionsLeaveSlicesAlone(t *testing.T) {
	prev := State{
		Posts:   []post.Post{{ID: 1, Title: "T", Body: "B"}},
		Loading: true,
		Err:     true,
	}

	t.Run("SetErr touches only Err", func(t *testing.T) {
		s := Reduce(prev, SetErr{Flag: false})
		assert.Empty(t, cmp.Diff(prev.Posts, s.Posts))
		assert.Equal(t, prev.Loading, s.Loading)
	})

	t.Run("SetLoading touches only Loading", func(t *testing.T) {
		s := Reduce(prev, SetLoading{Flag: false})
		assert.Empty(t, cmp.Diff(prev.Posts, s.Posts))
		assert.Equal(t, prev.Err, s.Err)
	})

	t.Run("SetPosts touches only Posts", func(t *testing.T) {
		s := Reduce(prev, SetPosts{Posts: nil})
		assert.Equal(t, prev.Loading, s.Loading)
		assert.Equal(t, prev.Err, s.Err)
	})
}

func TestReduce_Idempotent(t *testing.T) {
	once := Reduce(Initial(), SetLoading{Flag: true})
	twice := Reduce(once, SetLoading{Flag: true})
	assert.Empty(t, cmp.Diff(once, twice))
}

func TestReduce_Pure(t *testing.T) {
	prev := State{Posts: []post.Post{{ID: 1, Title: "T", Body: "B"}}}
	want := State{Posts: []post.Post{{ID: 1, Title: "T", Body: "B"}}}

	_ = Reduce(prev, SetPosts{Posts: []post.Post{{ID: 2}}})
	_ = Reduce(prev, SetErr{Flag: true})

	// the input state is never mutated
	assert.Empty(t, cmp.Diff(want, prev))
}
