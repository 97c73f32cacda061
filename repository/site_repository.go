package repository

import (
	"foodchef/entity"

	"gorm.io/gorm"
)

// SiteRepository backs the small informational endpoints: contact
// messages, about content and the team page.
type SiteRepository struct {
	DB *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

func (r *SiteRepository) CreateContactMessage(m *entity.ContactMessage) error {
	return r.DB.Create(m).Error
}

func (r *SiteRepository) ActiveAbout() (*entity.AboutContent, error) {
	var a entity.AboutContent
	err := r.DB.Where("is_active = ?", true).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *SiteRepository) ActiveTeam() ([]entity.TeamMember, error) {
	var out []entity.TeamMember
	err := r.DB.Where("is_active = ?", true).
		Order("position_order ASC").
		Find(&out).Error
	return out, err
}
