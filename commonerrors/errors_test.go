package commonerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotFound, ErrInvalid, ErrNotFound, ErrOutOfRange))
	assert.False(t, Any(ErrNotFound, ErrInvalid, ErrOutOfRange))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotFound), ErrInvalid, ErrNotFound, ErrOutOfRange))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotFound), ErrInvalid, ErrOutOfRange))
	assert.False(t, Any(nil, ErrEmpty))
}

func TestNew(t *testing.T) {
	msg := faker.Sentence()
	err := New(ErrEmpty, msg)
	assert.True(t, Any(err, ErrEmpty))
	assert.True(t, CorrespondTo(err, msg))
	assert.Equal(t, ErrInvalidArity, New(ErrInvalidArity, ""))
	assert.EqualError(t, New(nil, msg), msg)
	err = Newf(ErrOutOfRange, "index %v", 5)
	assert.True(t, Any(err, ErrOutOfRange))
	assert.EqualError(t, err, "out of range: index 5")
}

func TestUndefinedParameter(t *testing.T) {
	word := faker.Word()
	err := UndefinedParameter(word)
	assert.True(t, Any(err, ErrUndefined))
	assert.True(t, CorrespondTo(err, word))
	err = UndefinedParameterf("function #%v is nil", 2)
	assert.True(t, Any(err, ErrUndefined))
	assert.EqualError(t, err, "undefined: function #2 is nil")
}

func TestCorrespondTo(t *testing.T) {
	assert.True(t, CorrespondTo(New(ErrEmpty, "No Initial Value"), "initial value"))
	assert.False(t, CorrespondTo(errors.New(faker.Word()), "not a word at all"))
	assert.False(t, CorrespondTo(nil, faker.Word()))
}
