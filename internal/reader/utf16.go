package reader

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/sdbkit/pkg/types"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeUTF16LE decodes a STRING payload. Payloads are NUL terminated; the
// terminator and anything after it are dropped, as is a dangling odd byte.
func decodeUTF16LE(data []byte) (string, error) {
	n := len(data) &^ 1
	for i := 0; i+1 < n; i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			n = i
			break
		}
	}
	if n == 0 {
		return "", nil
	}
	out, err := utf16le.NewDecoder().Bytes(data[:n])
	if err != nil {
		return "", &types.Error{Kind: types.ErrKindCorrupt, Msg: fmt.Sprintf("decode string (%d bytes)", n), Err: err}
	}
	return string(out), nil
}
