package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"seatudy_backend/internal/config"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/repository"
	"seatudy_backend/internal/util"
	"seatudy_backend/pkg/logger"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// GoogleService Google 授权码登录
type GoogleService struct {
	MemberRepo *repository.MemberRepository
	RankSvc    *RankService
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewGoogleService(memberRepo *repository.MemberRepository, rankSvc *RankService, cfg *config.Config) *GoogleService {
	return &GoogleService{
		MemberRepo: memberRepo,
		RankSvc:    rankSvc,
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (s *GoogleService) Login(ctx context.Context, code string) (*SocialLoginResult, error) {
	accessToken, err := s.getAccessToken(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := s.getUserInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	member, err := s.registerIfNeeded(info)
	if err != nil {
		return nil, err
	}

	token, err := util.GenerateJWT(member, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	point, err := s.RankSvc.TotalPoint(member.ID)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("google login completed", zap.String("email", member.Email))

	return &SocialLoginResult{
		Token:    token,
		ID:       member.ID,
		Email:    member.Email,
		Nickname: member.Nickname,
		Point:    point,
	}, nil
}

func (s *GoogleService) getAccessToken(ctx context.Context, code string) (string, error) {
	body := url.Values{}
	body.Set("grant_type", "authorization_code")
	body.Set("client_id", s.Cfg.OAuth.Google.ClientID)
	body.Set("client_secret", s.Cfg.OAuth.Google.ClientSecret)
	body.Set("redirect_uri", s.Cfg.OAuth.Google.RedirectURI)
	body.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.OAuth.Google.TokenURL, strings.NewReader(body.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("google token endpoint returned %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("google token response missing access_token")
	}
	return tokenResp.AccessToken, nil
}

func (s *GoogleService) getUserInfo(ctx context.Context, accessToken string) (*googleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Cfg.OAuth.Google.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo endpoint returned %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, errors.New("google account has no email")
	}
	return &info, nil
}

func (s *GoogleService) registerIfNeeded(info *googleUserInfo) (*model.Member, error) {
	member, err := s.MemberRepo.FindByEmail(info.Email)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member = &model.Member{
		Email:     info.Email,
		Nickname:  info.Name,
		Password:  string(hashed),
		LoginType: model.LoginGoogle,
	}
	if err := s.MemberRepo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}
