package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Walk(t *testing.T) {
	s := NewState([]string{"print", "--size", "3"})

	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Advance())
	assert.Equal(t, "print", s.CurrentArg())
	next, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "--size", next)
	assert.Equal(t, []string{"--size", "3"}, s.Rest())

	s.Skip()
	assert.Equal(t, "--size", s.CurrentArg())
	assert.True(t, s.Advance())
	assert.Equal(t, "3", s.CurrentArg())

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Nil(t, s.Rest())
	assert.False(t, s.Advance())
	assert.Equal(t, 2, s.Pos())
}

func TestState_Empty(t *testing.T) {
	s := NewState(nil)

	assert.False(t, s.Advance())
	_, ok := s.Peek()
	assert.False(t, ok)
	assert.Empty(t, s.Args())
}
