package model

type LoginType string

const (
	LoginGeneral LoginType = "general"
	LoginKakao   LoginType = "kakao"
	LoginGoogle  LoginType = "google"
)

// Member 自习室会员，首次登录（本地或社交）时创建
// swagger:model Member
type Member struct {
	BaseModel
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Nickname  string    `gorm:"size:100;not null" json:"nickname"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Birthday  string    `gorm:"size:20" json:"birthday"`
	LoginType LoginType `gorm:"type:enum('general','kakao','google');default:'general'" json:"loginType"`

	TimeChecks []TimeCheck `gorm:"foreignKey:MemberID" json:"-"`
	Ranks      []Rank      `gorm:"foreignKey:MemberID" json:"-"`
}

func (Member) TableName() string {
	return "members"
}
