package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "reviewdesk/internal/errors"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#FFFFFF", RGB{255, 255, 255}},
		{"#ffffff", RGB{255, 255, 255}},
		{"#F5A524", RGB{245, 165, 36}},
		{"#abc", RGB{0xAA, 0xBB, 0xCC}},
		{"#ABC", RGB{0xAA, 0xBB, 0xCC}},
		{"1877F2", RGB{0x18, 0x77, 0xF2}},
		{"  #1877f2 ", RGB{0x18, 0x77, 0xF2}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#1234", "#12345", "#1234567", "#GGG", "red", "##123456"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseHex(in)
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeInvalidColor))
			assert.False(t, IsHex(in))
		})
	}
}

func TestNormalizeHex(t *testing.T) {
	got, err := NormalizeHex("#f5a")
	require.NoError(t, err)
	assert.Equal(t, "#FF55AA", got)

	_, err = NormalizeHex("nope")
	assert.Error(t, err)
}
