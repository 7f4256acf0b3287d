package guard_test

import (
	"errors"
	"testing"

	"selfstorage/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoxNotBuilt = errors.New("box must be created via newBox")

// box is a minimal value object that relies on the guard the way the domain model does.
type box struct {
	label string
	guard guard.ConstructorGuard
}

func newBox(label string) box {
	return box{label: label, guard: guard.NewConstructorGuard()}
}

func (b box) Validate() error {
	return b.guard.Validate(errBoxNotBuilt)
}

func TestConstructorGuard(t *testing.T) {
	tests := []struct {
		name    string
		guard   guard.ConstructorGuard
		passed  error
		wantErr error
	}{
		{"constructed with custom error", guard.NewConstructorGuard(), errBoxNotBuilt, nil},
		{"constructed with nil error", guard.NewConstructorGuard(), nil, nil},
		{"zero value with custom error", guard.ConstructorGuard{}, errBoxNotBuilt, errBoxNotBuilt},
		{"zero value with nil error", guard.ConstructorGuard{}, nil, guard.ErrDefaultConstructorGuard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.passed)

			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	built := newBox("B-12")
	require.NoError(t, built.Validate())
	assert.Equal(t, "B-12", built.label)

	var zero box
	require.ErrorIs(t, zero.Validate(), errBoxNotBuilt)

	literal := box{label: "B-13"}
	require.ErrorIs(t, literal.Validate(), errBoxNotBuilt, "a struct literal skips the constructor")
}

func TestConstructorGuard_SurvivesCopies(t *testing.T) {
	original := newBox("B-14")
	copied := original
	byPointer := &original

	require.NoError(t, copied.Validate())
	require.NoError(t, byPointer.Validate())

	boxes := []box{newBox("a"), {label: "b"}}
	require.NoError(t, boxes[0].Validate())
	require.Error(t, boxes[1].Validate())
}

func TestErrDefaultConstructorGuard_Message(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
