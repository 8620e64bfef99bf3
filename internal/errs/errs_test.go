package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestWrapPreservesChain(t *testing.T) {
	err := Wrap(KindStorage, fmt.Errorf("read snapshot: %w", fs.ErrNotExist))

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("wrapped error lost the underlying cause")
	}
	if KindOf(err) != KindStorage {
		t.Errorf("KindOf = %v, want %v", KindOf(err), KindStorage)
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindNetwork, nil); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestErrorMessage(t *testing.T) {
	err := Errorf(KindMail, "send to %s: %s", "ops@example.com", "connection refused")

	want := "mail error: send to ops@example.com: connection refused"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestKindOfOutermostWins(t *testing.T) {
	// A snapshot that fails to parse is a storage problem even though the
	// inner failure was tagged as a parse error.
	inner := Errorf(KindParse, "parse feed: bad xml")
	outer := Wrap(KindStorage, fmt.Errorf("snapshot feed.xml: %w", inner))

	if KindOf(outer) != KindStorage {
		t.Errorf("KindOf = %v, want %v", KindOf(outer), KindStorage)
	}
}

func TestKindOfUntagged(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestKindStrings(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindConfig, "config"},
		{KindNetwork, "network"},
		{KindParse, "parse"},
		{KindStorage, "storage"},
		{KindRender, "render"},
		{KindMail, "mail"},
		{KindUnknown, "unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
