package ui

import (
	"github.com/google/uuid"
	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/services"
)

// savedTokenMsg carries the result of the startup credential load.
type savedTokenMsg struct {
	token string
	ok    bool
}

// authResultMsg carries a resolved authenticate call. id identifies the
// request that produced it; silent marks the cold-start recovery path.
type authResultMsg struct {
	id      uuid.UUID
	outcome services.Outcome[services.SessionResult]
	silent  bool
}

// genresMsg carries a resolved genre catalog fetch.
type genresMsg struct {
	outcome services.Outcome[[]string]
}

// generateResultMsg carries a resolved generation run.
type generateResultMsg struct {
	id      uuid.UUID
	outcome services.Outcome[[]models.ResultLink]
}

// progressTickMsg advances the progress simulator. run identifies the
// simulation that scheduled the tick.
type progressTickMsg struct {
	run uuid.UUID
}

// noticeExpireMsg dismisses the notification with the given sequence.
type noticeExpireMsg struct {
	seq int
}
