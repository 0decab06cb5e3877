package jsonextract

// FirstObject returns the first balanced top-level JSON object embedded in s.
// Language models are asked for bare JSON but routinely wrap it in prose or
// markdown fences, so the extractor scans for the first '{' and tracks brace
// depth until it closes, skipping braces inside string literals and honoring
// backslash escapes.
//
// Returns the object substring and true, or "" and false when no balanced
// object is present.
func FirstObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if start == -1 {
			if c == '{' {
				start = i
				depth = 1
			}
			continue
		}

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
