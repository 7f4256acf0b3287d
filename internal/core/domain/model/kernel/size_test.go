package kernel_test

import (
	"testing"

	"selfstorage/internal/core/domain/model/kernel"
	"selfstorage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input string
		want  kernel.Size
	}{
		{input: "small", want: kernel.Small},
		{input: "medium", want: kernel.Medium},
		{input: "large", want: kernel.Large},
		{input: " Large ", want: kernel.Large},
		{input: "SMALL", want: kernel.Small},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			size, err := kernel.ParseSize(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, size)
		})
	}

	t.Run("should reject unknown code", func(t *testing.T) {
		size, err := kernel.ParseSize("huge")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, kernel.UnknownSize, size)
		assert.Contains(t, err.Error(), `"huge"`)
	})
}

func TestSize_Validate(t *testing.T) {
	for _, size := range kernel.AllSizes() {
		require.NoError(t, size.Validate(), size.String())
	}

	require.ErrorIs(t, kernel.UnknownSize.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, kernel.Size(42).Validate(), errs.ErrValueIsInvalid)
}

func TestSize_StringAndLabel(t *testing.T) {
	assert.Equal(t, "medium", kernel.Medium.String())
	assert.Equal(t, "Medium (1-5 m³)", kernel.Medium.Label())
	assert.Equal(t, "unknown", kernel.UnknownSize.String())
	assert.Equal(t, "Unknown", kernel.Size(9).Label())
}

func TestAllSizes(t *testing.T) {
	assert.Equal(t, []kernel.Size{kernel.Small, kernel.Medium, kernel.Large}, kernel.AllSizes())
}
