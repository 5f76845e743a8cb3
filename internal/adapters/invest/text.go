package invest

import (
	"math/rand/v2"
	"strings"
	"time"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// RandomText builds a space-joined string of uniformly-random terms from
// vocab and truncates it to exactly targetLen characters. An empty
// vocabulary is a programming error and panics.
func RandomText(r *rand.Rand, vocab []string, targetLen int) string {
	if len(vocab) == 0 {
		panic("invest: RandomText called with empty vocabulary")
	}
	var b strings.Builder
	b.Grow(targetLen + 16)
	for b.Len() < targetLen {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(vocab[r.IntN(len(vocab))])
	}
	s := b.String()
	if len(s) > targetLen {
		s = s[:targetLen]
	}
	return s
}

// Base64Filler tiles the base64 alphabet to multiplier*1024 characters and
// right-pads with '=' until the length is a multiple of 4. The result is
// syntactically valid base64 but decodes to meaningless bytes; it exists
// only to inflate payload size.
func Base64Filler(multiplier int) string {
	length := multiplier * 1024
	var b strings.Builder
	b.Grow(length + 3)
	for b.Len()+len(base64Alphabet) <= length {
		b.WriteString(base64Alphabet)
	}
	b.WriteString(base64Alphabet[:length-b.Len()])
	for b.Len()%4 != 0 {
		b.WriteByte('=')
	}
	return b.String()
}

// Timestamp formats base shifted by dayOffset days as an ISO-8601 string
// with microsecond precision and a trailing literal 'Z'.
//
// The suffix is appended without converting to UTC. The original fixture
// generator did the same, and historical fixtures depend on it, so the quirk
// is kept rather than fixed.
func Timestamp(base time.Time, dayOffset int) string {
	return base.AddDate(0, 0, dayOffset).Format("2006-01-02T15:04:05.000000") + "Z"
}
