package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want AppointmentStatus
		ok   bool
	}{
		{"waiting", StatusWaiting, true},
		{"done", StatusDone, true},
		{"انتظار", StatusWaiting, true},
		{"منجز", StatusDone, true},
		{"pending", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParseStatus(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStatus(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStatusToggle(t *testing.T) {
	if StatusWaiting.Toggle() != StatusDone {
		t.Fatalf("waiting should toggle to done")
	}
	if StatusDone.Toggle() != StatusWaiting {
		t.Fatalf("done should toggle to waiting")
	}
	// Unknown values normalise to done, matching a fresh toggle from waiting.
	if AppointmentStatus("").Toggle() != StatusDone {
		t.Fatalf("zero status should toggle to done")
	}
}
