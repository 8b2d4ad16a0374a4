package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05"
)
