package controller

import (
	"errors"
	"net/http"
	"seatudy_backend/internal/model"
	"seatudy_backend/internal/service"
	"seatudy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService   *service.AuthService
	KakaoService  *service.KakaoService
	GoogleService *service.GoogleService
}

func NewAuthController(authService *service.AuthService, kakaoService *service.KakaoService, googleService *service.GoogleService) *AuthController {
	return &AuthController{
		AuthService:   authService,
		KakaoService:  kakaoService,
		GoogleService: googleService,
	}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Birthday string `json:"birthday"`
}

// Register godoc
// @Summary 注册新会员
// @Description 使用邮箱和口令注册本地账号
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "邮箱已被注册"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	member := &model.Member{
		Email:    req.Email,
		Nickname: req.Nickname,
		Password: req.Password,
		Birthday: req.Birthday,
	}

	if err := c.AuthService.Register(member); err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": member.ID})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 会员登录
// @Description 验证凭据并返回 JWT 令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"token": token})
}

// KakaoLogin godoc
// @Summary Kakao 社交登录
// @Description 用授权码完成 Kakao 登录，必要时登记新会员
// @Tags 认证
// @Produce  json
// @Param   code query string true "授权码"
// @Success 200 {object} util.Response{data=service.SocialLoginResult} "成功"
// @Failure 502 {object} util.Response "OAuth 提供方错误"
// @Router /api/oauth/kakao [get]
func (c *AuthController) KakaoLogin(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		util.BadRequest(ctx, "missing authorization code")
		return
	}

	result, err := c.KakaoService.Login(ctx.Request.Context(), code)
	if err != nil {
		util.Error(ctx, http.StatusBadGateway, "kakao login failed: "+err.Error())
		return
	}

	ctx.Header("Authorization", "Bearer "+result.Token)
	util.Success(ctx, result)
}

// GoogleLogin godoc
// @Summary Google 社交登录
// @Description 用授权码完成 Google 登录，必要时登记新会员
// @Tags 认证
// @Produce  json
// @Param   code query string true "授权码"
// @Success 200 {object} util.Response{data=service.SocialLoginResult} "成功"
// @Failure 502 {object} util.Response "OAuth 提供方错误"
// @Router /api/oauth/google [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		util.BadRequest(ctx, "missing authorization code")
		return
	}

	result, err := c.GoogleService.Login(ctx.Request.Context(), code)
	if err != nil {
		util.Error(ctx, http.StatusBadGateway, "google login failed: "+err.Error())
		return
	}

	ctx.Header("Authorization", "Bearer "+result.Token)
	util.Success(ctx, result)
}
