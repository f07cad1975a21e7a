package pathlist

import (
	"errors"
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []string
	}{
		{
			name: "simple list",
			list: "/bin:/usr/bin:/usr/local/bin",
			want: []string{"/bin", "/usr/bin", "/usr/local/bin"},
		},
		{
			name: "single segment",
			list: "/bin",
			want: []string{"/bin"},
		},
		{
			name: "empty list",
			list: "",
			want: []string{""},
		},
		{
			name: "consecutive separators",
			list: "a::b",
			want: []string{"a", "", "b"},
		},
		{
			name: "leading and trailing separators",
			list: ":a:",
			want: []string{"", "a", ""},
		},
		{
			name: "only separator",
			list: ":",
			want: []string{"", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Split(tt.list))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.list, got, tt.want)
			}
		})
	}
}

func TestSplitRestartable(t *testing.T) {
	seq := Split("a:b:c")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("second iteration = %q, want %q", second, first)
	}
}

func TestSplitEarlyStop(t *testing.T) {
	var got []string
	for p := range Split("a:b:c") {
		got = append(got, p)
		break
	}
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("early-stopped iteration = %q, want [a]", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name:  "empty sequence",
			paths: nil,
			want:  "",
		},
		{
			name:  "single segment unchanged",
			paths: []string{"/bin"},
			want:  "/bin",
		},
		{
			name:  "separator between elements only",
			paths: []string{"/bin", "/usr/bin"},
			want:  "/bin:/usr/bin",
		},
		{
			name:  "empty segments preserved",
			paths: []string{"", "a", ""},
			want:  ":a:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join(slices.Values(tt.paths))
			if err != nil {
				t.Fatalf("Join(%q) returned error: %v", tt.paths, err)
			}
			if got != tt.want {
				t.Errorf("Join(%q) = %q, want %q", tt.paths, got, tt.want)
			}
		})
	}
}

func TestJoinRejectsSeparator(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
	}{
		{name: "first segment", paths: []string{"a:b", "c"}},
		{name: "middle segment", paths: []string{"a", "b:c", "d"}},
		{name: "last segment", paths: []string{"a", "b", "c:"}},
		{name: "only segment", paths: []string{":"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Join(slices.Values(tt.paths))
			if !errors.Is(err, ErrSeparatorInPath) {
				t.Fatalf("Join(%q) error = %v, want ErrSeparatorInPath", tt.paths, err)
			}
			if got != "" {
				t.Errorf("Join(%q) returned partial output %q", tt.paths, got)
			}
		})
	}
}

func TestJoinErrorMessage(t *testing.T) {
	want := "path segment contains separator `:`"
	if ErrSeparatorInPath.Error() != want {
		t.Errorf("error message = %q, want %q", ErrSeparatorInPath.Error(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	segments := []string{"/bin", "/usr/bin", "relative/dir", ""}

	joined, err := Join(slices.Values(segments))
	if err != nil {
		t.Fatalf("Join returned error: %v", err)
	}

	rejoined, err := Join(Split(joined))
	if err != nil {
		t.Fatalf("Join(Split(...)) returned error: %v", err)
	}
	if rejoined != joined {
		t.Errorf("round trip = %q, want %q", rejoined, joined)
	}
	if got := slices.Collect(Split(rejoined)); !slices.Equal(got, segments) {
		t.Errorf("round-tripped segments = %q, want %q", got, segments)
	}
}
