package controllers

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"foodchef/entity"
	"foodchef/pkg/resp"
	"foodchef/repository"
	"foodchef/services"
)

// SiteController serves the small informational endpoints: contact
// form, about page and the team list.
type SiteController struct {
	Repo *repository.SiteRepository
	Log  *logrus.Logger
}

func NewSiteController(repo *repository.SiteRepository, log *logrus.Logger) *SiteController {
	return &SiteController{Repo: repo, Log: log}
}

// POST /api/contact
func (sc *SiteController) Contact(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid JSON data")
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		resp.BadRequest(c, "Missing required fields")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		resp.BadRequest(c, "Invalid email format")
		return
	}

	msg := entity.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := sc.Repo.CreateContactMessage(&msg); err != nil {
		sc.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("store contact message")
		resp.ServerError(c, services.ErrDatabase)
		return
	}
	resp.Created(c, gin.H{"message": "Message sent successfully"})
}

// GET /api/about
func (sc *SiteController) About(c *gin.Context) {
	about, err := sc.Repo.ActiveAbout()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.OK(c, nil)
			return
		}
		sc.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("load about content")
		resp.ServerError(c, services.ErrDatabase)
		return
	}
	resp.OK(c, about)
}

// GET /api/team
func (sc *SiteController) Team(c *gin.Context) {
	team, err := sc.Repo.ActiveTeam()
	if err != nil {
		sc.Log.WithFields(logrus.Fields{"error": err.Error()}).Error("load team list")
		resp.ServerError(c, services.ErrDatabase)
		return
	}
	resp.OKCount(c, team, len(team))
}
