package util

import (
	"errors"
	"testing"
)

func TestShortID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		n    int
		want string
	}{
		{
			name: "default length truncates",
			id:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			n:    0,
			want: "1b4e28ba",
		},
		{
			name: "negative uses default",
			id:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			n:    -1,
			want: "1b4e28ba",
		},
		{
			name: "explicit length 13",
			id:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
			n:    13,
			want: "1b4e28ba-2fa1",
		},
		{
			name: "length longer than ID",
			id:   "1b4e",
			n:    20,
			want: "1b4e",
		},
		{
			name: "empty ID",
			id:   "",
			n:    8,
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ShortID(tc.id, tc.n)
			if got != tc.want {
				t.Errorf("ShortID(%q, %d) = %q, want %q", tc.id, tc.n, got, tc.want)
			}
		})
	}
}

func TestResolveIDPrefix(t *testing.T) {
	ids := []string{
		"1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		"1b4e99aa-0000-11d2-883f-0016d3cca427",
		"7c9e6679-7425-40de-944b-e07fc1f90ae7",
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "exact", input: ids[2], want: ids[2]},
		{name: "unique prefix", input: "7c9e", want: ids[2]},
		{name: "upper case prefix", input: "7C9E", want: ids[2]},
		{name: "ambiguous", input: "1b4e", wantErr: ErrAmbiguousID},
		{name: "longer unique prefix", input: "1b4e28", want: ids[0]},
		{name: "no match", input: "ffff", wantErr: ErrNotFound},
		{name: "empty", input: "  ", wantErr: ErrNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveIDPrefix(tc.input, ids)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("ResolveIDPrefix(%q) error = %v, want %v", tc.input, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveIDPrefix(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ResolveIDPrefix(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
