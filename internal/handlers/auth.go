package handlers

import (
	"errors"
	"net/http"
	"strings"

	"soclone/internal/db"
	"soclone/internal/models"
	"soclone/internal/services"
	"soclone/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	captchaService *services.CaptchaService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		captchaService: services.NewCaptchaService(),
	}
}

func (h *AuthHandler) showRegisterWith(c *gin.Context, code int, extra gin.H) {
	question, answer := h.captchaService.GenerateMathProblem()
	session := sessions.Default(c)
	session.Set("captcha_answer", answer)
	session.Save()

	if extra == nil {
		extra = gin.H{}
	}
	extra["Captcha"] = question
	Render(c, code, "auth/register.html", extra)
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	h.showRegisterWith(c, http.StatusOK, nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	captchaInput := c.PostForm("captcha")

	session := sessions.Default(c)
	expectedAnswer, ok := session.Get("captcha_answer").(int)
	if !ok || utils.StringToInt(captchaInput) != expectedAnswer {
		h.showRegisterWith(c, http.StatusBadRequest, gin.H{"Error": "Captcha answer is wrong"})
		return
	}
	session.Delete("captcha_answer")
	session.Save()

	// Username defaults to the email local part
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" {
		h.showRegisterWith(c, http.StatusBadRequest, gin.H{"Error": "Invalid email address"})
		return
	}
	if len(password) < 6 {
		h.showRegisterWith(c, http.StatusBadRequest, gin.H{"Error": "Password must be at least 6 characters"})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		h.showRegisterWith(c, http.StatusInternalServerError, gin.H{"Error": "Registration failed"})
		return
	}

	user := models.User{
		Username: parts[0],
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			h.showRegisterWith(c, http.StatusConflict, gin.H{"Error": "Email already registered"})
			return
		}
		h.showRegisterWith(c, http.StatusInternalServerError, gin.H{"Error": "Registration failed"})
		return
	}

	session.Set("user_id", user.ID)
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Wrong email or password"})
		return
	}
	if !utils.CheckPassword(user.Password, password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "Wrong email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
