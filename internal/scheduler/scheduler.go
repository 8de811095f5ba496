// Package scheduler runs the periodic low-stock sweep. Branches come
// from the catalog so new branches join the sweep without a restart.
package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type BranchLister interface {
	BranchNames(ctx context.Context) ([]string, error)
}

type StockChecker interface {
	CheckBranch(ctx context.Context, branch string) error
}

type Scheduler struct {
	cron     *cron.Cron
	branches BranchLister
	checker  StockChecker
	schedule string
}

func New(branches BranchLister, checker StockChecker, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		branches: branches,
		checker:  checker,
		schedule: schedule,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.sweep)
	if err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("[Scheduler] Stock sweep scheduled: %s", s.schedule)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("[Scheduler] Stopped")
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	branches, err := s.branches.BranchNames(ctx)
	if err != nil {
		log.Printf("[Scheduler] Failed to list branches: %v", err)
		return
	}
	for _, branch := range branches {
		if err := s.checker.CheckBranch(ctx, branch); err != nil {
			log.Printf("[Scheduler] Check failed for %s: %v", branch, err)
		}
	}
}
