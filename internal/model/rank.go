package model

// Rank 会员单个逻辑日的学习时长累计，当天首次离座时创建。
// DayStudy 为当日累计，TotalStudy 为全历史累计，Week 为周榜分桶。
// swagger:model Rank
type Rank struct {
	BaseModel
	MemberID   uint   `gorm:"uniqueIndex:idx_ranks_member_date;not null" json:"memberId"`
	Date       string `gorm:"size:10;uniqueIndex:idx_ranks_member_date;not null" json:"date"`
	DayStudy   string `gorm:"size:8;not null;default:'00:00:00'" json:"dayStudy"`
	TotalStudy string `gorm:"size:8;not null;default:'00:00:00'" json:"totalStudy"`
	Week       int    `gorm:"index;not null" json:"week"`

	TimeChecks []TimeCheck `gorm:"foreignKey:RankID" json:"timeChecks,omitempty"`
}

func (Rank) TableName() string {
	return "ranks"
}
