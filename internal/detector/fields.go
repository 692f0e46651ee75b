// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package detector

import "strings"

type field struct {
	key   string
	value string
}

type fieldList []field

// splitFields splits a DoCoMo-style body ("K:v;K2:v2;;") into fields.
// Backslash escapes the next character, so "\;" and "\:" are literal.
func splitFields(body string) fieldList {
	var (
		fields  fieldList
		current strings.Builder
		escaped bool
	)

	flush := func() {
		token := current.String()
		current.Reset()

		if token == "" {
			return
		}
		key, value, found := cutUnescaped(token)
		if !found {
			return
		}
		fields = append(fields, field{key: strings.ToUpper(strings.TrimSpace(key)), value: unescapeField(value)})
	}

	for _, r := range body {
		switch {
		case escaped:
			current.WriteRune('\\')
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == ';':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return fields
}

// cutUnescaped splits token at the first ':' that is not escaped.
func cutUnescaped(token string) (string, string, bool) {
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '\\':
			i++
		case ':':
			return token[:i], token[i+1:], true
		}
	}
	return "", "", false
}

func unescapeField(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
		escaped = false
	}
	return b.String()
}

func (f fieldList) first(key string) *string {
	for _, fl := range f {
		if fl.key == key {
			v := fl.value
			return &v
		}
	}
	return nil
}

func (f fieldList) all(key string) []string {
	var out []string
	for _, fl := range f {
		if fl.key == key {
			out = append(out, fl.value)
		}
	}
	return out
}
