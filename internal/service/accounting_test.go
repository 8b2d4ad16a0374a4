package service

import (
	"errors"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/util"
	"testing"
	"time"
)

func strPtr(s string) *string {
	return &s
}

func TestFindOpenCheck(t *testing.T) {
	closed := model.TimeCheck{CheckIn: "09:00:00", CheckOut: strPtr("10:00:00")}
	open := model.TimeCheck{CheckIn: "11:00:00"}

	if got := findOpenCheck([]model.TimeCheck{closed, open}); got == nil || got.CheckIn != "11:00:00" {
		t.Errorf("findOpenCheck should return the open session, got %+v", got)
	}

	if got := findOpenCheck([]model.TimeCheck{closed}); got != nil {
		t.Errorf("findOpenCheck with only closed sessions = %+v, want nil", got)
	}

	if got := findOpenCheck(nil); got != nil {
		t.Errorf("findOpenCheck(nil) = %+v, want nil", got)
	}
}

func TestValidateCheckIn(t *testing.T) {
	closed := model.TimeCheck{CheckIn: "09:00:00", CheckOut: strPtr("10:00:00")}
	open := model.TimeCheck{CheckIn: "11:00:00"}

	// 上一段会话已结束，立即再次入座是允许的
	if err := validateCheckIn([]model.TimeCheck{closed}); err != nil {
		t.Errorf("check-in after completed checkout should succeed, got %v", err)
	}
	if err := validateCheckIn(nil); err != nil {
		t.Errorf("first check-in of the day should succeed, got %v", err)
	}

	if err := validateCheckIn([]model.TimeCheck{closed, open}); !errors.Is(err, util.ErrCheckoutNotAttempted) {
		t.Errorf("check-in with open session error = %v, want ErrCheckoutNotAttempted", err)
	}
}

func TestOpenSession(t *testing.T) {
	closed := model.TimeCheck{CheckIn: "09:00:00", CheckOut: strPtr("10:00:00")}
	open := model.TimeCheck{CheckIn: "11:00:00"}

	last, err := openSession([]model.TimeCheck{closed, open})
	if err != nil {
		t.Fatalf("openSession error: %v", err)
	}
	if last.CheckIn != "11:00:00" {
		t.Errorf("openSession returned %+v, want the open session", last)
	}

	if _, err := openSession([]model.TimeCheck{closed}); !errors.Is(err, util.ErrCheckinNotAttempted) {
		t.Errorf("checkout without open session error = %v, want ErrCheckinNotAttempted", err)
	}
	if _, err := openSession(nil); !errors.Is(err, util.ErrCheckinNotAttempted) {
		t.Errorf("checkout with no records error = %v, want ErrCheckinNotAttempted", err)
	}
}

func TestBaselineDayStudy(t *testing.T) {
	if got := baselineDayStudy(nil); got != "00:00:00" {
		t.Errorf("baseline without rank = %q, want 00:00:00", got)
	}
	if got := baselineDayStudy(&model.Rank{DayStudy: "02:15:00"}); got != "02:15:00" {
		t.Errorf("baseline with rank = %q, want 02:15:00", got)
	}
}

func TestElapsedSeconds(t *testing.T) {
	loc := time.UTC

	tests := []struct {
		name    string
		checkIn string
		now     time.Time
		want    int
	}{
		{"same morning", "09:00:00", time.Date(2024, 3, 10, 10, 30, 15, 0, loc), 5415},
		{"zero elapsed", "09:00:00", time.Date(2024, 3, 10, 9, 0, 0, 0, loc), 0},
		// 23:00 入座、次日 01:00 离座：跨日历午夜但逻辑日相同
		{"across midnight", "23:00:00", time.Date(2024, 3, 11, 1, 0, 0, 0, loc), 7200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := elapsedSeconds(tt.checkIn, tt.now)
			if err != nil {
				t.Fatalf("elapsedSeconds error: %v", err)
			}
			if got != tt.want {
				t.Errorf("elapsedSeconds = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := elapsedSeconds("bad", time.Now()); err == nil {
		t.Error("elapsedSeconds with malformed check-in should fail")
	}
}

func TestHistoryTotalSeconds(t *testing.T) {
	ranks := []model.Rank{
		{Date: "2024-03-08", DayStudy: "01:00:00"},
		{Date: "2024-03-09", DayStudy: "02:30:00"},
		{Date: "2024-03-10", DayStudy: "00:45:00"},
	}

	total, err := historyTotalSeconds(ranks, "")
	if err != nil {
		t.Fatalf("historyTotalSeconds error: %v", err)
	}
	if total != 15300 {
		t.Errorf("total = %d, want 15300", total)
	}

	excl, err := historyTotalSeconds(ranks, "2024-03-10")
	if err != nil {
		t.Fatalf("historyTotalSeconds error: %v", err)
	}
	if excl != 12600 {
		t.Errorf("total excluding today = %d, want 12600", excl)
	}

	if _, err := historyTotalSeconds([]model.Rank{{Date: "2024-03-08", DayStudy: "junk"}}, ""); err == nil {
		t.Error("historyTotalSeconds with corrupt day study should fail")
	}
}

func TestFoldSessionFirstCheckoutOfDay(t *testing.T) {
	// 09:00:00 入座、10:30:15 离座，无任何历史
	fold, err := foldSession("00:00:00", 5415, 0)
	if err != nil {
		t.Fatalf("foldSession error: %v", err)
	}
	if fold.DayStudy != "01:30:15" {
		t.Errorf("DayStudy = %q, want 01:30:15", fold.DayStudy)
	}
	if fold.TotalStudy != "01:30:15" {
		t.Errorf("TotalStudy = %q, want 01:30:15", fold.TotalStudy)
	}
}

func TestFoldSessionWithHistory(t *testing.T) {
	// 历史累计 05:00:00，今天首次离座前经过 45 分钟
	fold, err := foldSession("00:00:00", 2700, 18000)
	if err != nil {
		t.Fatalf("foldSession error: %v", err)
	}
	if fold.DayStudy != "00:45:00" {
		t.Errorf("DayStudy = %q, want 00:45:00", fold.DayStudy)
	}
	if fold.TotalStudy != "05:45:00" {
		t.Errorf("TotalStudy = %q, want 05:45:00", fold.TotalStudy)
	}
}

func TestFoldSessionSecondCheckoutSameDay(t *testing.T) {
	// 同日两段会话：A 10 分钟入账后，B 20 分钟继续累加
	foldA, err := foldSession("00:00:00", 600, 0)
	if err != nil {
		t.Fatalf("foldSession error: %v", err)
	}
	if foldA.DayStudy != "00:10:00" {
		t.Errorf("after session A DayStudy = %q, want 00:10:00", foldA.DayStudy)
	}

	foldB, err := foldSession(foldA.DayStudy, 1200, 0)
	if err != nil {
		t.Fatalf("foldSession error: %v", err)
	}
	if foldB.DayStudy != "00:30:00" {
		t.Errorf("after session B DayStudy = %q, want 00:30:00", foldB.DayStudy)
	}
	if foldB.TotalStudy != "00:30:00" {
		t.Errorf("after session B TotalStudy = %q, want 00:30:00", foldB.TotalStudy)
	}
}

// 每次离座后的不变量：总累计等于全部单日累计之和
func TestTotalStudyMatchesHistorySum(t *testing.T) {
	ranks := []model.Rank{
		{Date: "2024-03-08", DayStudy: "01:00:00"},
		{Date: "2024-03-09", DayStudy: "02:00:00"},
	}

	history, err := historyTotalSeconds(ranks, "")
	if err != nil {
		t.Fatalf("historyTotalSeconds error: %v", err)
	}

	fold, err := foldSession("00:00:00", 1800, history)
	if err != nil {
		t.Fatalf("foldSession error: %v", err)
	}

	if fold.TotalSeconds != history+fold.DaySeconds {
		t.Errorf("TotalSeconds = %d, want %d", fold.TotalSeconds, history+fold.DaySeconds)
	}
	if fold.TotalStudy != "03:30:00" {
		t.Errorf("TotalStudy = %q, want 03:30:00", fold.TotalStudy)
	}
}
