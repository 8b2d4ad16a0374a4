package service

import (
	"errors"
	"seatudy_backend/internal/config"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	MemberRepo *repository.MemberRepository
	Cfg        *config.Config
}

func NewAuthService(memberRepo *repository.MemberRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		MemberRepo: memberRepo,
		Cfg:        cfg,
	}
}

func (s *AuthService) Register(member *model.Member) error {
	_, err := s.MemberRepo.FindByEmail(member.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(member.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	member.Password = string(hashedPassword)
	member.LoginType = model.LoginGeneral
	return s.MemberRepo.Create(member)
}

func (s *AuthService) Login(email, password string) (string, error) {
	member, err := s.MemberRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return util.GenerateJWT(member, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentMember(c *gin.Context) *model.Member {
	claims := util.GetMemberFromContext(c)
	if claims == nil {
		return nil
	}

	member, err := s.MemberRepo.FindByID(claims.MemberID)
	if err != nil {
		return nil
	}
	return member
}
