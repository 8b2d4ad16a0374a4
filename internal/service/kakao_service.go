package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
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

// SocialLoginResult 社交登录响应：本地 JWT 加会员概要
// swagger:model SocialLoginResult
type SocialLoginResult struct {
	Token    string `json:"token"`
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Birthday string `json:"birthday,omitempty"`
	Point    int64  `json:"point"`
}

// KakaoService Kakao 授权码换取 token、拉取用户信息并登记会员
type KakaoService struct {
	MemberRepo *repository.MemberRepository
	RankSvc    *RankService
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewKakaoService(memberRepo *repository.MemberRepository, rankSvc *RankService, cfg *config.Config) *KakaoService {
	return &KakaoService{
		MemberRepo: memberRepo,
		RankSvc:    rankSvc,
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type kakaoUserInfo struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
	KakaoAccount struct {
		Email    string `json:"email"`
		Birthday string `json:"birthday"`
	} `json:"kakao_account"`
}

// Login 授权码登录。会员不存在时用随机密码登记。
func (s *KakaoService) Login(ctx context.Context, code string) (*SocialLoginResult, error) {
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

	logger.Log.Info("kakao login completed", zap.String("email", member.Email))

	return &SocialLoginResult{
		Token:    token,
		ID:       member.ID,
		Email:    member.Email,
		Nickname: member.Nickname,
		Birthday: member.Birthday,
		Point:    point,
	}, nil
}

func (s *KakaoService) getAccessToken(ctx context.Context, code string) (string, error) {
	body := url.Values{}
	body.Set("grant_type", "authorization_code")
	body.Set("client_id", s.Cfg.OAuth.Kakao.ClientID)
	body.Set("redirect_uri", s.Cfg.OAuth.Kakao.RedirectURI)
	body.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.OAuth.Kakao.TokenURL, strings.NewReader(body.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=utf-8")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("kakao token endpoint returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &tokenResp); err != nil {
		return "", err
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("kakao token response missing access_token")
	}
	return tokenResp.AccessToken, nil
}

func (s *KakaoService) getUserInfo(ctx context.Context, accessToken string) (*kakaoUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Cfg.OAuth.Kakao.UserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao userinfo endpoint returned %d", resp.StatusCode)
	}

	var info kakaoUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.KakaoAccount.Email == "" {
		return nil, errors.New("kakao account has no email")
	}
	return &info, nil
}

func (s *KakaoService) registerIfNeeded(info *kakaoUserInfo) (*model.Member, error) {
	member, err := s.MemberRepo.FindByEmail(info.KakaoAccount.Email)
	if err == nil {
		return member, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 社交账号没有本地口令，填入随机密码占位
	hashed, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member = &model.Member{
		Email:     info.KakaoAccount.Email,
		Nickname:  info.Properties.Nickname,
		Password:  string(hashed),
		Birthday:  info.KakaoAccount.Birthday,
		LoginType: model.LoginKakao,
	}
	if err := s.MemberRepo.Create(member); err != nil {
		return nil, err
	}
	return member, nil
}
