package service

import (
	"errors"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/util"

	"gorm.io/gorm"
)

// MemberProfile 会员资料视图
// swagger:model MemberProfile
type MemberProfile struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	Birthday  string `json:"birthday,omitempty"`
	LoginType string `json:"loginType"`
	Point     int64  `json:"point"`
}

type MemberService struct {
	MemberRepo *repository.MemberRepository
	RankSvc    *RankService
}

func NewMemberService(memberRepo *repository.MemberRepository, rankSvc *RankService) *MemberService {
	return &MemberService{
		MemberRepo: memberRepo,
		RankSvc:    rankSvc,
	}
}

// Profile 会员身份信息加总学习积分
func (s *MemberService) Profile(memberID uint) (*MemberProfile, error) {
	member, err := s.MemberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMemberNotFound
		}
		return nil, err
	}

	point, err := s.RankSvc.TotalPoint(member.ID)
	if err != nil {
		return nil, err
	}

	return &MemberProfile{
		ID:        member.ID,
		Email:     member.Email,
		Nickname:  member.Nickname,
		Birthday:  member.Birthday,
		LoginType: string(member.LoginType),
		Point:     point,
	}, nil
}

// UpdateNickname 修改会员昵称
func (s *MemberService) UpdateNickname(memberID uint, nickname string) (*MemberProfile, error) {
	member, err := s.MemberRepo.FindByID(memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMemberNotFound
		}
		return nil, err
	}

	member.Nickname = nickname
	if err := s.MemberRepo.Update(member); err != nil {
		return nil, err
	}

	return s.Profile(member.ID)
}
