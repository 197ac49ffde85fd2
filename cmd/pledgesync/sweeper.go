package main

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type funder interface {
	MarkFunded(ctx context.Context) (int, error)
}

// sweeper closes published campaigns that reached their goal
type sweeper struct {
	db funder
}

func newSweeper(db funder) *sweeper {
	return &sweeper{db: db}
}

func (s *sweeper) Sweep(ctx context.Context) int {
	count, err := s.db.MarkFunded(ctx)
	if err != nil {
		log.WithError(err).Error("failed to mark funded campaigns")
		return 0
	}

	if count > 0 {
		log.Infof("marked %d campaign(s) as funded", count)
	} else {
		log.Debug("no funded campaigns")
	}

	return count
}
