package lottery

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"

	"github.com/osse101/RewardEngine_Go/internal/concurrency"
	"github.com/osse101/RewardEngine_Go/internal/domain"
	"github.com/osse101/RewardEngine_Go/internal/event"
	"github.com/osse101/RewardEngine_Go/internal/gacha"
	"github.com/osse101/RewardEngine_Go/internal/logger"
	"github.com/osse101/RewardEngine_Go/internal/repository"
	"github.com/osse101/RewardEngine_Go/internal/rewardconfig"
	"github.com/osse101/RewardEngine_Go/internal/weight"
)

// Service defines the interface for the lottery board
type Service interface {
	// GetBoard returns the board the player picks on. The top cell is never exposed.
	GetBoard(ctx context.Context, playerID uuid.UUID) (*domain.LotteryBoardView, error)
	// Pick buys a ticket and reveals cell (1..49).
	Pick(ctx context.Context, playerID uuid.UUID, cell int) (*domain.PickResult, error)
}

type service struct {
	repo     repository.Lottery
	configs  *rewardconfig.Store
	granter  *gacha.Granter
	drawer   *weight.Drawer
	ids      *snowflake.Node
	locks    *concurrency.LockManager
	eventBus event.Bus
	retry    repository.RetryPolicy
	now      func() time.Time
}

// NewService creates a new lottery service
func NewService(repo repository.Lottery, configs *rewardconfig.Store, granter *gacha.Granter, drawer *weight.Drawer,
	ids *snowflake.Node, locks *concurrency.LockManager, eventBus event.Bus, retry repository.RetryPolicy,
) Service {
	if drawer == nil {
		drawer = weight.NewDrawer(nil)
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{
		repo:     repo,
		configs:  configs,
		granter:  granter,
		drawer:   drawer,
		ids:      ids,
		locks:    locks,
		eventBus: eventBus,
		retry:    retry,
		now:      time.Now,
	}
}

func (s *service) GetBoard(ctx context.Context, playerID uuid.UUID) (*domain.LotteryBoardView, error) {
	lot, err := s.configs.Current().Lottery()
	if err != nil {
		return nil, err
	}
	boardID := lot.BoardID(playerID)

	board, err := s.repo.GetBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadBoard, err)
	}

	view := &domain.LotteryBoardView{ID: boardID, TicketPrice: lot.TicketPrice}
	if board == nil {
		view.Cells = unrevealedCells()
		return view, nil
	}
	view.ResetCount = board.ResetCount
	view.RevealedCount = board.RevealedCount()
	view.Cells = board.Cells
	return view, nil
}

// pickOutcome carries what a committed pick produced.
type pickOutcome struct {
	result     *domain.PickResult
	draws      []event.DrawPayloadV1
	resetCount int64
}

func (s *service) Pick(ctx context.Context, playerID uuid.UUID, cell int) (*domain.PickResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgPickCalled, "player_id", playerID, "cell", cell)

	if playerID == uuid.Nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	if cell < 1 || cell > domain.LotteryCellCount {
		return nil, fmt.Errorf("%w: "+ErrMsgCellOutOfRange, domain.ErrInvalidCell, cell, domain.LotteryCellCount)
	}

	cat := s.configs.Current()
	lot, err := cat.Lottery()
	if err != nil {
		return nil, err
	}
	boardID := lot.BoardID(playerID)

	// Same-board picks queue here instead of on the row lock.
	unlock := s.locks.Lock(boardID)
	defer unlock()

	outcome, err := repository.WithRetry(ctx, s.retry, OpPick, func(ctx context.Context) (*pickOutcome, error) {
		return s.executePickTx(ctx, cat, lot, boardID, playerID, cell)
	})
	if err != nil {
		return nil, err
	}

	res := outcome.result
	event.Publish(ctx, s.eventBus, event.NewLotteryPickedEvent(event.LotteryPickedPayloadV1{
		BoardID:       boardID,
		PlayerID:      playerID,
		Cell:          cell,
		Grade:         res.Grade,
		RewardType:    string(res.Reward.Type),
		TicketPrice:   lot.TicketPrice,
		BoardWasReset: res.BoardWasReset,
	}))
	if len(outcome.draws) > 0 {
		event.Publish(ctx, s.eventBus, event.NewDrawCompletedEvent(outcome.draws))
	}
	if res.BoardWasReset {
		log.Info(LogMsgBoardReset, "board_id", boardID, "reset_count", outcome.resetCount)
		event.Publish(ctx, s.eventBus, event.NewLotteryBoardResetEvent(boardID, outcome.resetCount))
	}

	log.Info(LogMsgPickCompleted, "player_id", playerID, "board_id", boardID, "cell", cell, "grade", res.Grade)
	return res, nil
}

// executePickTx locks the board before the wallet, matching every other
// transaction that touches both.
func (s *service) executePickTx(ctx context.Context, cat *rewardconfig.Catalog, lot *rewardconfig.Lottery,
	boardID string, playerID uuid.UUID, cellNumber int,
) (*pickOutcome, error) {
	tx, err := s.repo.BeginLotteryTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	board, err := s.lockBoard(ctx, tx, boardID)
	if err != nil {
		return nil, err
	}
	if c := board.Cell(cellNumber); c == nil || c.Revealed {
		return nil, domain.ErrAlreadyRevealed
	}

	if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLockPlayer, err)
	}
	balance, err := tx.AdjustBalance(ctx, playerID, -lot.TicketPrice)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToDebit, err)
	}

	topHit := cellNumber == board.TopCell
	grade := lot.TopGrade
	if !topHit {
		grade = s.drawer.Draw(lot.Table).Tier
	}
	spec, ok := lot.Rewards[grade]
	if !ok {
		return nil, fmt.Errorf("%w: "+ErrMsgNoRewardForGrade, domain.ErrInvalidConfiguration, grade)
	}

	granted, err := s.granter.Grant(ctx, tx, cat, playerID, spec, domain.DrawSourceLottery)
	if err != nil {
		return nil, err
	}
	if granted.Credit > 0 {
		if balance, err = tx.AdjustBalance(ctx, playerID, granted.Credit); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToCredit, err)
		}
	}

	now := s.now().UTC()
	resetCount := board.ResetCount
	if topHit {
		reset, err := tx.ResetBoard(ctx, boardID, s.randomCell())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToReset, err)
		}
		resetCount = reset.ResetCount
	} else {
		reward := granted.Reward
		err := tx.RevealCell(ctx, boardID, domain.LotteryCell{
			Number:     cellNumber,
			Revealed:   true,
			Grade:      grade,
			Reward:     &reward,
			RevealedBy: &playerID,
			RevealedAt: &now,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextFailedToReveal, err)
		}
	}

	if err := tx.RecordPick(ctx, pickRecord(s.ids.Generate().Int64(), boardID, playerID, cellNumber, grade, granted, topHit, now)); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToRecordPick, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCommitTx, err)
	}

	out := &pickOutcome{
		result: &domain.PickResult{
			BoardID:       boardID,
			Cell:          cellNumber,
			Grade:         grade,
			Reward:        granted.Reward,
			BoardWasReset: topHit,
			Balance:       balance,
		},
		resetCount: resetCount,
	}
	if granted.Opening != nil {
		out.draws = granted.Opening.Draws
	}
	return out, nil
}

// lockBoard locks the board row, creating the board on first use.
func (s *service) lockBoard(ctx context.Context, tx repository.LotteryTx, boardID string) (*domain.LotteryBoard, error) {
	board, err := tx.GetBoardForUpdate(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToLoadBoard, err)
	}
	if board != nil {
		return board, nil
	}

	board, err = tx.CreateBoard(ctx, boardID, s.randomCell())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateBoard, err)
	}
	logger.FromContext(ctx).Info(LogMsgBoardCreated, "board_id", boardID)
	return board, nil
}

// randomCell returns a uniform cell number in 1..49.
func (s *service) randomCell() int {
	return s.drawer.Pick(domain.LotteryCellCount) + 1
}

func pickRecord(id int64, boardID string, playerID uuid.UUID, cell int, grade string, granted *gacha.Granted, reset bool, at time.Time) domain.LotteryPick {
	pick := domain.LotteryPick{
		ID:             id,
		BoardID:        boardID,
		PlayerID:       playerID,
		Cell:           cell,
		Grade:          grade,
		RewardType:     string(granted.Reward.Type),
		TriggeredReset: reset,
		CreatedAt:      at,
	}
	switch granted.Reward.Type {
	case domain.RewardTypePoints:
		pick.Points = granted.Reward.Points
	case domain.RewardTypeItem:
		itemID := granted.Reward.Item.ID
		pick.ItemID = &itemID
	case domain.RewardTypePack:
		pick.PackType = granted.Reward.PackType
	}
	return pick
}

func unrevealedCells() []domain.LotteryCell {
	cells := make([]domain.LotteryCell, domain.LotteryCellCount)
	for i := range cells {
		cells[i].Number = i + 1
	}
	return cells
}
