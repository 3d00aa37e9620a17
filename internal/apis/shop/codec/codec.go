// Package codec implements the review submission wire format.
//
// A submission travels as a single text/plain payload of the form
//
//	<submitterId>|ID_SPLIT|<reviewText>
//
// where the id is its decimal string form and the text is literal. The
// backend splits on the first occurrence of the delimiter, so text that
// itself contains the delimiter would shift the decode boundary. The format
// cannot be changed without a backend change, so the policy here is to
// reject such text before anything is sent (ErrDelimiterInText); payloads
// that do go out stay byte-compatible with the existing decoder.
package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Delimiter separates the submitter id from the review text on the wire.
const Delimiter = "|ID_SPLIT|"

var (
	ErrDelimiterInText = errors.New("review text contains the payload delimiter")
	ErrBadPayload      = errors.New("payload does not match <id>|ID_SPLIT|<text>")
)

func Encode(submitterID int64, text string) (string, error) {
	if strings.Contains(text, Delimiter) {
		return "", ErrDelimiterInText
	}
	return strconv.FormatInt(submitterID, 10) + Delimiter + text, nil
}

// Decode is the backend-side inverse of Encode, mirrored here so both ends
// of the protocol live in one place. It splits on the first occurrence of
// the delimiter: for any text accepted by Encode the round-trip is exact.
func Decode(payload string) (submitterID int64, text string, err error) {
	idPart, textPart, ok := strings.Cut(payload, Delimiter)
	if !ok {
		return 0, "", ErrBadPayload
	}

	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad submitter id %q", ErrBadPayload, idPart)
	}
	return id, textPart, nil
}
