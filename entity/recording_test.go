package entity

import (
	"errors"
	"testing"
)

func TestParseSourceKind(t *testing.T) {
	cases := []struct {
		in      string
		want    SourceKind
		wantErr bool
	}{
		{in: "user", want: SourceUser},
		{in: "ai", want: SourceAI},
		{in: "USER", want: SourceUser},
		{in: "Ai", want: SourceAI},
		{in: " user ", want: SourceUser},
		{in: "", wantErr: true},
		{in: "bot", wantErr: true},
		{in: "user,ai", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseSourceKind(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSourceKind(%q): expected error, got %q", tc.in, got)
			}
			if !errors.Is(err, ErrInvalidSourceKind) {
				t.Errorf("ParseSourceKind(%q): error %v is not ErrInvalidSourceKind", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSourceKind(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSourceKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSourceKindPrefix(t *testing.T) {
	if got := SourceUser.Prefix(); got != "user" {
		t.Errorf("SourceUser.Prefix() = %q, want %q", got, "user")
	}
	if got := SourceAI.Prefix(); got != "ai" {
		t.Errorf("SourceAI.Prefix() = %q, want %q", got, "ai")
	}
}
