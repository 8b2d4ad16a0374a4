package util

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeDetail 拆分后的时/分/秒视图
// swagger:model TimeDetail
type TimeDetail struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// ParseDuration 将 "HH:mm:ss" 字符串换算成总秒数。
// 必须是三段冒号分隔的非负整数，分/秒限定在 0-59。
func ParseDuration(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, ErrInvalidTimeFormat
	}

	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" {
			return 0, ErrInvalidTimeFormat
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, ErrInvalidTimeFormat
		}
		nums[i] = n
	}

	if nums[1] > 59 || nums[2] > 59 {
		return 0, ErrInvalidTimeFormat
	}

	return nums[0]*3600 + nums[1]*60 + nums[2], nil
}

// FormatDuration 将总秒数格式化为零填充的 "HH:mm:ss"。
// 小时位不按 24 回绕，超过一天的累计值继续增长。
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hour := seconds / 3600
	minute := (seconds % 3600) / 60
	second := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// AddDuration 两个 "HH:mm:ss" 值按秒相加
func AddDuration(a, b string) (string, error) {
	as, err := ParseDuration(a)
	if err != nil {
		return "", err
	}
	bs, err := ParseDuration(b)
	if err != nil {
		return "", err
	}
	return FormatDuration(as + bs), nil
}

// SubDuration a 减 b，不允许出现负时长
func SubDuration(a, b string) (string, error) {
	as, err := ParseDuration(a)
	if err != nil {
		return "", err
	}
	bs, err := ParseDuration(b)
	if err != nil {
		return "", err
	}
	return FormatDuration(as - bs), nil
}

// GetTimeDetail 把 "HH:mm:ss" 拆成时/分/秒
func GetTimeDetail(s string) (TimeDetail, error) {
	seconds, err := ParseDuration(s)
	if err != nil {
		return TimeDetail{}, err
	}
	return TimeDetail{
		Hour:   seconds / 3600,
		Minute: (seconds % 3600) / 60,
		Second: seconds % 60,
	}, nil
}
