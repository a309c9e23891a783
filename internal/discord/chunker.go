package discord

import (
	"errors"
)

// MessageLimit is the hard cap Discord places on a single message.
const MessageLimit = 2000

// ErrPrefixTooLong reports a prefix that leaves no room for reply
// content within the message limit.
var ErrPrefixTooLong = errors.New("prefix too long for message limit")

// Split divides a reply into segments that fit the message limit. The
// prefix is prepended to the first segment only, and lengths are
// measured in runes so multi-byte characters count once.
func Split(prefix, body string, limit int) ([]string, error) {
	p := []rune(prefix)
	if len(p) >= limit {
		return nil, ErrPrefixTooLong
	}

	b := []rune(body)
	if len(p)+len(b) <= limit {
		return []string{prefix + body}, nil
	}

	head := limit - len(p)
	segments := []string{prefix + string(b[:head])}
	rest := b[head:]
	for len(rest) > 0 {
		n := min(limit, len(rest))
		segments = append(segments, string(rest[:n]))
		rest = rest[n:]
	}
	return segments, nil
}
