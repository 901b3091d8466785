// AngelaMos | 2026
// pgarray_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextArrayValue(t *testing.T) {
	tests := []struct {
		name  string
		input TextArray
		want  string
	}{
		{"nil", nil, "{}"},
		{"empty", TextArray{}, "{}"},
		{"single", TextArray{"user"}, `{"user"}`},
		{"multiple", TextArray{"user", "admin"}, `{"user","admin"}`},
		{"quotes", TextArray{`say "hi"`}, `{"say \"hi\""}`},
		{"backslash", TextArray{`a\b`}, `{"a\\b"}`},
		{"comma inside", TextArray{"a,b"}, `{"a,b"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextArrayScan(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TextArray
	}{
		{"empty", "{}", TextArray{}},
		{"bare elements", "{user,admin}", TextArray{"user", "admin"}},
		{"quoted", `{"user","admin"}`, TextArray{"user", "admin"}},
		{"escaped quote", `{"say \"hi\""}`, TextArray{`say "hi"`}},
		{"escaped backslash", `{"a\\b"}`, TextArray{`a\b`}},
		{"comma in quotes", `{"a,b"}`, TextArray{"a,b"}},
		{"null element", "{NULL}", TextArray{""}},
		{"quoted NULL is literal", `{"NULL"}`, TextArray{"NULL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a TextArray
			require.NoError(t, a.Scan(tt.raw))
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestTextArrayScanBytes(t *testing.T) {
	var a TextArray
	require.NoError(t, a.Scan([]byte(`{"user"}`)))
	assert.Equal(t, TextArray{"user"}, a)
}

func TestTextArrayScanNil(t *testing.T) {
	a := TextArray{"leftover"}
	require.NoError(t, a.Scan(nil))
	assert.Nil(t, a)
}

func TestTextArrayScanMalformed(t *testing.T) {
	var a TextArray
	assert.Error(t, a.Scan("not an array"))
	assert.Error(t, a.Scan(`{"unterminated}`))
	assert.Error(t, a.Scan(42))
}

func TestTextArrayRoundTrip(t *testing.T) {
	original := TextArray{"user", "admin", `we"ird`, `back\slash`, "a,b"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded TextArray
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestTextArrayContains(t *testing.T) {
	roles := TextArray{"user", "admin"}

	assert.True(t, roles.Contains("admin"))
	assert.True(t, roles.Contains("user"))
	assert.False(t, roles.Contains("moderator"))
	assert.False(t, TextArray(nil).Contains("user"))
}
