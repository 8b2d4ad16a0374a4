package service

import (
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/util"
	"time"
)

// 时长核算的纯计算部分。入座/离座的状态校验与折算都在这里完成，
// 事务和存储访问留在 TimeCheckService。

// findOpenCheck 返回当日仍未离座的记录
func findOpenCheck(checks []model.TimeCheck) *model.TimeCheck {
	for i := range checks {
		if checks[i].Open() {
			return &checks[i]
		}
	}
	return nil
}

// validateCheckIn 入座前置校验：存在未离座的会话时不允许再次入座
func validateCheckIn(checks []model.TimeCheck) error {
	if findOpenCheck(checks) != nil {
		return util.ErrCheckoutNotAttempted
	}
	return nil
}

// openSession 离座前置校验：返回最后一条记录，且必须仍在座
func openSession(checks []model.TimeCheck) (*model.TimeCheck, error) {
	if len(checks) == 0 {
		return nil, util.ErrCheckinNotAttempted
	}
	last := &checks[len(checks)-1]
	if !last.Open() {
		return nil, util.ErrCheckinNotAttempted
	}
	return last, nil
}

// baselineDayStudy 当日累计基线：已有 Rank 取其 DayStudy，否则从零开始
func baselineDayStudy(rank *model.Rank) string {
	if rank != nil {
		return rank.DayStudy
	}
	return "00:00:00"
}

// elapsedSeconds 计算从入座到 now 的经过秒数，按墙钟时间做模 24 小时差值。
// 会话跨过日历午夜但未过换日点时（23:00 入座、01:00 离座），
// 差值为负，加一天补正。会话不跨换日点，经过时间必然小于 24 小时。
func elapsedSeconds(checkIn string, now time.Time) (int, error) {
	start, err := util.ParseDuration(checkIn)
	if err != nil {
		return 0, err
	}

	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	elapsed := nowSec - start
	if elapsed < 0 {
		elapsed += 24 * 3600
	}
	return elapsed, nil
}

// historyTotalSeconds 汇总 Rank 历史的 DayStudy 总秒数，excludeDate 非空时跳过该日。
// 累计值始终由历史重新求和，不信任存储的 TotalStudy 列。
func historyTotalSeconds(ranks []model.Rank, excludeDate string) (int, error) {
	total := 0
	for _, r := range ranks {
		if excludeDate != "" && r.Date == excludeDate {
			continue
		}
		sec, err := util.ParseDuration(r.DayStudy)
		if err != nil {
			return 0, err
		}
		total += sec
	}
	return total, nil
}

// foldSession 将一次会话折入当日与全历史累计
type foldResult struct {
	DaySeconds   int
	TotalSeconds int
	DayStudy     string
	TotalStudy   string
}

func foldSession(baseline string, elapsed int, historySeconds int) (foldResult, error) {
	base, err := util.ParseDuration(baseline)
	if err != nil {
		return foldResult{}, err
	}

	day := base + elapsed
	total := historySeconds + day

	return foldResult{
		DaySeconds:   day,
		TotalSeconds: total,
		DayStudy:     util.FormatDuration(day),
		TotalStudy:   util.FormatDuration(total),
	}, nil
}
