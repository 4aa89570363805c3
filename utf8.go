// Copyright (C) 2020 Michael J. Fromberger. All Rights Reserved.

package bon

import "unicode/utf8"

// lossyUTF8 decodes b as UTF-8, replacing any malformed byte sequence
// with U+FFFD rather than failing (invariant 3: strings must decode as
// UTF-8; invalid bytes decode with replacement rather than failing).
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var out []rune
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}
