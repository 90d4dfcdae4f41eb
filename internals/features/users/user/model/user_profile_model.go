// file: internals/features/users/user/model/user_profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: user_profiles — agregat hasil quiz per user.
   Dibuat lazy saat attempt pertama selesai; setelah itu hanya di-update.
============================================================================= */
type UserProfileModel struct {
	UserProfileID     uuid.UUID `gorm:"column:user_profile_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_profile_id"`
	UserProfileUserID uuid.UUID `gorm:"column:user_profile_user_id;type:uuid;not null;unique" json:"user_profile_user_id"`

	UserProfileTotalQuizzesTaken int `gorm:"column:user_profile_total_quizzes_taken;not null;default:0" json:"user_profile_total_quizzes_taken"`
	UserProfileHighestScore      int `gorm:"column:user_profile_highest_score;not null;default:0" json:"user_profile_highest_score"`

	UserProfileCreatedAt time.Time `gorm:"column:user_profile_created_at;autoCreateTime" json:"user_profile_created_at"`
	UserProfileUpdatedAt time.Time `gorm:"column:user_profile_updated_at;autoUpdateTime" json:"user_profile_updated_at"`
}

func (UserProfileModel) TableName() string { return "user_profiles" }

func (m *UserProfileModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserProfileID == uuid.Nil {
		m.UserProfileID = uuid.New()
	}
	return nil
}
