package util

import (
	"errors"
	"testing"
	"time"
)

func seoul(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestLogicalDay(t *testing.T) {
	loc := seoul(t)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"just before rollover", time.Date(2024, 3, 10, 4, 59, 59, 0, loc), "2024-03-09"},
		{"exactly at rollover", time.Date(2024, 3, 10, 5, 0, 0, 0, loc), "2024-03-10"},
		{"midday", time.Date(2024, 3, 10, 14, 30, 0, 0, loc), "2024-03-10"},
		{"just after midnight", time.Date(2024, 3, 10, 0, 0, 1, 0, loc), "2024-03-09"},
		{"year boundary before rollover", time.Date(2024, 1, 1, 2, 0, 0, 0, loc), "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LogicalDay(tt.now, 5); got != tt.want {
				t.Errorf("LogicalDay(%v) = %q, want %q", tt.now, got, tt.want)
			}
		})
	}
}

func TestWeekOfDate(t *testing.T) {
	loc := seoul(t)

	tests := []struct {
		date string
		want int
	}{
		// 2024-03-04 起的一周是 ISO 第 10 周
		{"2024-03-10", 9},
		// ISO 第 1 周减一落到 0，回绕到 53
		{"2024-01-01", 53},
		// 2024-12-30 已属于 2025 年 ISO 第 1 周
		{"2024-12-30", 53},
		{"2024-12-23", 51},
	}

	for _, tt := range tests {
		got, err := WeekOfDate(tt.date, loc)
		if err != nil {
			t.Fatalf("WeekOfDate(%q) error: %v", tt.date, err)
		}
		if got != tt.want {
			t.Errorf("WeekOfDate(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekOfDateMalformed(t *testing.T) {
	loc := seoul(t)
	if _, err := WeekOfDate("10-03-2024", loc); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("WeekOfDate malformed date error = %v, want ErrInvalidDateFormat", err)
	}
}
