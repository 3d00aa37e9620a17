package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	payload, err := Encode(1, "Nice")
	require.NoError(t, err)
	assert.Equal(t, "1|ID_SPLIT|Nice", payload)
}

func TestEncodeRejectsDelimiterInText(t *testing.T) {
	_, err := Encode(1, "great|ID_SPLIT|product")
	assert.ErrorIs(t, err, ErrDelimiterInText)
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		id   int64
		text string
	}{
		{"plain", 1, "Nice"},
		{"empty text", 7, ""},
		{"markup", 42, `<b>bold</b> & "quoted"`},
		{"pipes without delimiter", 3, "a|b|ID_SPLITX|c"},
		{"multiline", 9, "line one\nline two"},
		{"negative id", -5, "odd but encodable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := Encode(tc.id, tc.text)
			require.NoError(t, err)

			id, text, err := Decode(payload)
			require.NoError(t, err)
			assert.Equal(t, tc.id, id)
			assert.Equal(t, tc.text, text)
		})
	}
}

func TestDecodeSplitsOnFirstOccurrence(t *testing.T) {
	// a hand-built colliding payload still decodes deterministically
	id, text, err := Decode("1|ID_SPLIT|great|ID_SPLIT|product")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "great|ID_SPLIT|product", text)
}

func TestDecodeBadPayloads(t *testing.T) {
	for _, payload := range []string{"", "no delimiter here", "abc|ID_SPLIT|text", "1.5|ID_SPLIT|text"} {
		_, _, err := Decode(payload)
		assert.ErrorIs(t, err, ErrBadPayload, "payload=%q", payload)
	}
}
