package repository

import (
	"seatudy_backend/internal/model"

	"gorm.io/gorm"
)

type MemberRepository struct {
	DB *gorm.DB
}

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{DB: db}
}

func (r *MemberRepository) Create(member *model.Member) error {
	return r.DB.Create(member).Error
}

func (r *MemberRepository) FindByID(id uint) (*model.Member, error) {
	var member model.Member
	err := r.DB.First(&member, id).Error
	return &member, err
}

func (r *MemberRepository) FindByEmail(email string) (*model.Member, error) {
	var member model.Member
	err := r.DB.Where("email = ?", email).First(&member).Error
	return &member, err
}

func (r *MemberRepository) Update(member *model.Member) error {
	return r.DB.Save(member).Error
}
