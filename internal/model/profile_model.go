package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymizedName is the fixed placeholder written over the name fields when a
// profile is scrubbed by the deletion pipeline.
const AnonymizedName = "Deleted Member"

type Profile struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ChurchId   *uuid.UUID `gorm:"type:uuid;index" json:"church_id,omitempty"`
	Email      string     `gorm:"type:varchar(255);not null;index" json:"email"`
	FirstName  string     `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string     `gorm:"type:varchar(255);not null" json:"last_name"`
	AvatarURL  *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Phone      *string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address    *string    `gorm:"type:text" json:"address,omitempty"`
	Role       string     `gorm:"type:varchar(50);not null;default:'member'" json:"role"`
	Anonymized bool       `gorm:"default:false" json:"anonymized"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type Church struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	OwnerProfileId uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_profile_id"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Church) TableName() string {
	return "churches"
}
