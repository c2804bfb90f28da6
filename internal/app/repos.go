package app

import (
	"gorm.io/gorm"

	"github.com/storysprout/storysprout-backend/internal/logger"
	"github.com/storysprout/storysprout-backend/internal/repos"
)

type Repos struct {
	User         repos.UserRepo
	Story        repos.StoryRepo
	Activity     repos.ActivityRepo
	VoiceProfile repos.VoiceProfileRepo
	Donation     repos.DonationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:         repos.NewUserRepo(db, log),
		Story:        repos.NewStoryRepo(db, log),
		Activity:     repos.NewActivityRepo(db, log),
		VoiceProfile: repos.NewVoiceProfileRepo(db, log),
		Donation:     repos.NewDonationRepo(db, log),
	}
}
