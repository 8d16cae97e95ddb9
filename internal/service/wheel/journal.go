package wheel

import (
	"context"

	"lucky_wheel/internal/model"
)

// writeJournal stores a finished spin. It runs off the frame thread, so a
// slow database never stalls the animation.
func (s *serv) writeJournal(rec *model.SpinRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), journalTimeout)
	defer cancel()

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.spinRepo.Create(txCtx, rec)
	})
	if err != nil {
		s.log.Errorw("failed to journal spin", "spin_id", rec.ID, "label", rec.Label, "error", err)
		return
	}
	s.log.Debugw("spin journaled", "spin_id", rec.ID)
}
