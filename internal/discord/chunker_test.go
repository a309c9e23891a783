package discord

import (
	"errors"
	"strings"
	"testing"
)

func TestSplit_SingleSegment(t *testing.T) {
	prefix := "**bob:** hi\n**gpt3_5:** "
	body := "Paris."

	segments, err := Split(prefix, body, MessageLimit)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 {
		t.Fatalf("expected a single segment, got %d", len(segments))
	}
	if segments[0] != prefix+body {
		t.Errorf("expected %q, got %q", prefix+body, segments[0])
	}
}

func TestSplit_PrefixOnFirstSegmentOnly(t *testing.T) {
	prefix := "A:"
	body := strings.Repeat("x", 30)

	segments, err := Split(prefix, body, 20)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"A:" + strings.Repeat("x", 18), strings.Repeat("x", 12)}
	if len(segments) != len(want) {
		t.Fatalf("expected %d segments, got %d: %v", len(want), len(segments), segments)
	}
	for i := range want {
		if segments[i] != want[i] {
			t.Errorf("segment %d: expected %q, got %q", i, want[i], segments[i])
		}
	}
}

func TestSplit_RoundTrip(t *testing.T) {
	prefix := "**alice:** q\n**claude:** "
	body := strings.Repeat("lorem ipsum dolor sit amet ", 300)
	limit := 100

	segments, err := Split(prefix, body, limit)
	if err != nil {
		t.Fatal(err)
	}
	for i, seg := range segments {
		if n := len([]rune(seg)); n > limit {
			t.Errorf("segment %d is %d runes, limit %d", i, n, limit)
		}
		if i > 0 && strings.HasPrefix(seg, prefix) {
			t.Errorf("segment %d unexpectedly carries the prefix", i)
		}
	}
	joined := strings.TrimPrefix(segments[0], prefix) + strings.Join(segments[1:], "")
	if joined != body {
		t.Error("concatenated segments do not reproduce the body")
	}
}

func TestSplit_PrefixTooLong(t *testing.T) {
	prefix := strings.Repeat("p", 20)
	for _, body := range []string{"", "x", strings.Repeat("x", 50)} {
		if _, err := Split(prefix, body, 20); !errors.Is(err, ErrPrefixTooLong) {
			t.Errorf("body %q: expected ErrPrefixTooLong, got %v", body, err)
		}
	}
}

func TestSplit_EmptyBody(t *testing.T) {
	segments, err := Split("A:", "", 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 1 || segments[0] != "A:" {
		t.Errorf("expected single prefix-only segment, got %v", segments)
	}
}

func TestSplit_MultiByteRunes(t *testing.T) {
	prefix := "B:"
	body := strings.Repeat("é", 30)

	segments, err := Split(prefix, body, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0] != "B:"+strings.Repeat("é", 18) {
		t.Errorf("unexpected first segment %q", segments[0])
	}
	if segments[1] != strings.Repeat("é", 12) {
		t.Errorf("unexpected second segment %q", segments[1])
	}
}
