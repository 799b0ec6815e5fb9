package bloqs

import (
	"bytes"
	"strings"
)

// injectHead inserts fragment before </head>. Falls back to just after
// <body...>, then to prepending.
func injectHead(page, fragment string) string {
	if fragment == "" {
		return page
	}

	lowerHTML := strings.ToLower(page)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return page[:idx] + fragment + page[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(page[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return page[:insertPos] + fragment + page[insertPos:]
		}
	}

	return fragment + page
}

// injectBody inserts fragment before </body>, or appends it.
func injectBody(page, fragment string) string {
	if fragment == "" {
		return page
	}

	if idx := strings.LastIndex(strings.ToLower(page), "</body>"); idx != -1 {
		return page[:idx] + fragment + page[idx:]
	}

	return page + fragment
}

// InjectHead renders frags and inserts them into an existing HTML page
// before </head>.
func InjectHead(page string, frags ...Fragment) (string, error) {
	var buf bytes.Buffer
	for _, f := range frags {
		if _, err := f.WriteTo(&buf); err != nil {
			return "", err
		}
	}
	return injectHead(page, buf.String()), nil
}

// InjectInteractive flushes the registry into an existing HTML page: the
// registered resources go before </body>, and the decoder goes before
// </head> if any compressed script has been rendered in this session.
// The session scope is reset afterwards, as with ResetInteractive.
func (s *Session) InjectInteractive(page string) (string, error) {
	interactive, err := s.WriteInteractive()
	if err != nil {
		return "", err
	}

	if s.DecoderNeeded() {
		var decoder bytes.Buffer
		if err := s.writeDecoder(&decoder); err != nil {
			return "", err
		}
		page = injectHead(page, decoder.String())
	}

	s.ResetInteractive()
	return injectBody(page, interactive), nil
}
