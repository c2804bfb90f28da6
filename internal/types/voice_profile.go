package types

import (
	"time"

	"github.com/google/uuid"
)

// VoiceProfile records a cloned narration voice. ProviderVoiceID is the
// opaque identifier returned by the voice provider; it stays empty when the
// profile was created as a local fallback and IsProcessed is false.
type VoiceProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index;column:user_id" json:"userId"`
	Name            string    `gorm:"not null;column:name" json:"name"`
	AudioSample     string    `gorm:"column:audio_sample" json:"audioSample"`
	ProviderVoiceID string    `gorm:"column:elevenlabs_voice_id" json:"-"`
	IsProcessed     bool      `gorm:"not null;column:is_processed" json:"isProcessed"`
	CreatedAt       time.Time `gorm:"not null;column:created_at" json:"createdAt"`
}

func (VoiceProfile) TableName() string {
	return "voice_profiles"
}
