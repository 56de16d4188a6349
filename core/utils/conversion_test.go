package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int
		wantErr bool
	}{
		{"int64", int64(42), 42, false},
		{"uint32", uint32(7), 7, false},
		{"bytes", []byte("-1"), -1, false},
		{"string", " 12 ", 12, false},
		{"nil", nil, 0, true},
		{"garbage", "abc", 0, true},
		{"struct", struct{}{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool([]byte{1}))
	assert.False(t, ToBool([]byte{0}))
	assert.True(t, ToBool(int64(1)))
	assert.True(t, ToBool("true"))
	assert.False(t, ToBool(nil))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "5", ToString(5))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, ToFloat([]byte("1.5")))
	assert.Equal(t, 3.0, ToFloat(int64(3)))
}
