package stylename_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stylename"
)

func TestName_String(t *testing.T) {
	t.Parallel()

	n := stylename.MustParse("Chess960")
	assert.Equal(t, "Chess960", n.String())
	assert.Equal(t, "Chess960", fmt.Sprintf("%s", n))
	assert.Equal(t, "Chess960", fmt.Sprintf("%v", n))
}

func TestName_GoString(t *testing.T) {
	t.Parallel()

	n := stylename.MustParse("Chess960")
	assert.Equal(t, `stylename.Name("Chess960")`, n.GoString())
	assert.Equal(t, `stylename.Name("Chess960")`, fmt.Sprintf("%#v", n))
}

func TestName_IsZero(t *testing.T) {
	t.Parallel()

	var zero stylename.Name
	assert.True(t, zero.IsZero())
	assert.False(t, stylename.MustParse("A").IsZero())
}

func TestName_TextRoundTrip(t *testing.T) {
	t.Parallel()

	n := stylename.MustParse("Chess960")
	text, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, []byte("Chess960"), text)

	var decoded stylename.Name
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, n, decoded)
}

func TestName_UnmarshalText_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		text    string
		wantErr error
	}{
		{
			name:    "empty",
			text:    "",
			wantErr: stylename.ErrEmptyInput,
		},
		{
			name:    "lowercase",
			text:    "chess",
			wantErr: stylename.ErrInvalidFormat,
		},
		{
			name:    "null byte",
			text:    "Chess\x00",
			wantErr: stylename.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var n stylename.Name
			err := n.UnmarshalText([]byte(tt.text))
			require.ErrorIs(t, err, tt.wantErr)
			assert.True(t, n.IsZero(), "failed unmarshal must not modify the receiver")
		})
	}
}

func TestName_JSON(t *testing.T) {
	t.Parallel()

	type config struct {
		Style stylename.Name `json:"style"`
	}

	data, err := json.Marshal(config{Style: stylename.MustParse("Chess960")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"style":"Chess960"}`, string(data))

	var decoded config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Chess960", decoded.Style.String())

	// Decoding re-validates: invalid content is rejected, not stored.
	err = json.Unmarshal([]byte(`{"style":"chess-960"}`), &decoded)
	require.Error(t, err)
	assert.ErrorIs(t, err, stylename.ErrInvalidFormat)
}
