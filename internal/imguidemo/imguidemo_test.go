package imguidemo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState_Variants(t *testing.T) {
	assert.False(t, NewState(5).Sizes)
	assert.True(t, NewState(6).Sizes)
	assert.Equal(t, 1, NewState(6).Size)
}

func TestSelectOption(t *testing.T) {
	s := NewState(6)
	assert.False(t, selectOption(&s.Language, languages, 0), "already selected")
	assert.True(t, selectOption(&s.Language, languages, 2))
	assert.Equal(t, 2, s.Language)
	assert.False(t, selectOption(&s.Language, languages, 3), "out of range")
	assert.False(t, selectOption(&s.Size, sizes, -1))
	assert.Equal(t, 1, s.Size)
}
