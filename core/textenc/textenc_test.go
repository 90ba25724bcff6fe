package textenc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Encoding
		wantErr bool
	}{
		{"ASCII", "ascii", ASCII, false},
		{"UTF8 upper", "UTF-8", UTF8, false},
		{"UTF16 padded", " utf-16 ", UTF16, false},
		{"Latin1", "latin1", "", true},
		{"Empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupportedEncoding))
				assert.Contains(t, err.Error(), `"`+tt.in+`"`)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Run("ASCII replaces non-ASCII", func(t *testing.T) {
		out, err := Encode(ASCII, "Zoë,1")
		require.NoError(t, err)
		assert.Equal(t, []byte("Zo?,1"), out)
	})

	t.Run("UTF8 adds BOM", func(t *testing.T) {
		out, err := Encode(UTF8, "é")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xEF, 0xBB, 0xBF, 0xC3, 0xA9}, out)
	})

	t.Run("UTF16 little endian with BOM", func(t *testing.T) {
		out, err := Encode(UTF16, "A")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xFF, 0xFE, 0x41, 0x00}, out)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Encode(Encoding("ebcdic"), "x")
		assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	})
}

func TestDecode_RoundTrip(t *testing.T) {
	text := "1,,,\"Open Women A (500m) Final\"\r\n,123,1\r\n"

	for _, enc := range Supported {
		t.Run(string(enc), func(t *testing.T) {
			data, err := Encode(enc, text)
			require.NoError(t, err)
			assert.Equal(t, text, Decode(data))
		})
	}
}

func TestDecode_PlainUTF8(t *testing.T) {
	assert.Equal(t, "Zoë", Decode([]byte("Zoë")))
}
