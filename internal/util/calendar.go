package util

import "time"

// LogicalDay 计算记账用的逻辑日期。
// 自习室的"一天"从当天 rolloverHour 点开始，凌晨时段归入前一个日历日。
// now 必须已经位于目标时区。
func LogicalDay(now time.Time, rolloverHour int) string {
	boundary := time.Date(now.Year(), now.Month(), now.Day(), rolloverHour, 0, 0, 0, now.Location())
	if now.Before(boundary) {
		return now.AddDate(0, 0, -1).Format(DateFormat)
	}
	return now.Format(DateFormat)
}

// ParseDate 解析存储层的 "yyyy-MM-dd" 日期串
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// WeekOfDate 计算逻辑日期所属的周榜分桶。
// 取 ISO 周数减一；跨年时结果为 0 则落到第 53 周。
func WeekOfDate(date string, loc *time.Location) (int, error) {
	t, err := ParseDate(date, loc)
	if err != nil {
		return 0, err
	}

	_, isoWeek := t.ISOWeek()
	week := isoWeek - 1
	if week == 0 {
		week = 53
	}
	return week, nil
}
