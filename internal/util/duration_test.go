package util

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00:00", 0, false},
		{"00:00:01", 1, false},
		{"01:30:15", 5415, false},
		{"23:59:59", 86399, false},
		{"99:00:00", 356400, false},
		{"", 0, true},
		{"12:00", 0, true},
		{"12:00:00:00", 0, true},
		{"12:60:00", 0, true},
		{"12:00:60", 0, true},
		{"-1:00:00", 0, true},
		{"aa:bb:cc", 0, true},
		{"12::00", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ParseDuration(%q) error = %v, want ErrInvalidTimeFormat", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDuration(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00:00"},
		{1, "00:00:01"},
		{5415, "01:30:15"},
		{86399, "23:59:59"},
		{90000, "25:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDurationRoundTrip(t *testing.T) {
	// 小时 0-99 的合法值经过 parse/format 必须保持原样
	cases := []string{"00:00:00", "05:45:00", "23:59:59", "24:00:01", "99:59:59"}
	for _, s := range cases {
		sec, err := ParseDuration(s)
		if err != nil {
			t.Fatalf("ParseDuration(%q) error: %v", s, err)
		}
		if got := FormatDuration(sec); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestAddDuration(t *testing.T) {
	got, err := AddDuration("05:00:00", "00:45:00")
	if err != nil {
		t.Fatalf("AddDuration error: %v", err)
	}
	if got != "05:45:00" {
		t.Errorf("AddDuration = %q, want 05:45:00", got)
	}

	if _, err := AddDuration("bad", "00:00:01"); err == nil {
		t.Error("AddDuration with malformed input should fail")
	}
}

func TestGetTimeDetail(t *testing.T) {
	detail, err := GetTimeDetail("01:30:15")
	if err != nil {
		t.Fatalf("GetTimeDetail error: %v", err)
	}
	if detail.Hour != 1 || detail.Minute != 30 || detail.Second != 15 {
		t.Errorf("GetTimeDetail = %+v, want {1 30 15}", detail)
	}
}
