package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/blockhive/internal/dependencies/clock"
	"github.com/mcoot/blockhive/internal/dependencies/scheduler"
	"github.com/mcoot/blockhive/internal/model"
	"github.com/mcoot/blockhive/internal/services/board"
	"github.com/mcoot/blockhive/internal/services/catalog"
	"github.com/mcoot/blockhive/internal/services/scoring"
)

// Observer is called after every transition, outside the controller lock
type Observer func(events []model.Event, snap *model.Snapshot)

// Controller runs the single-player state machine. Every transition runs to
// completion under mu; the only suspensions are the two animation windows,
// which are continuations handed to the scheduler.
type Controller struct {
	mu sync.Mutex
	// notifyMu is taken before mu is released so observers see transitions
	// in the order they happened
	notifyMu sync.Mutex

	cfg            Config
	boardService   *board.Service
	scoringService *scoring.Service
	generator      *catalog.Generator
	scheduler      scheduler.Scheduler
	clock          clock.Clock
	logger         *slog.Logger
	observers      []Observer

	gameID      model.GameID
	difficulty  model.Difficulty
	board       *model.Board
	tray        model.Tray
	nextPieceID model.PieceID
	score       int
	highScore   int
	state       model.GameState
	drag        *model.DragSession
	preview     map[model.Coord]model.Color
	placing     map[model.Coord]int
	clearing    map[model.Coord]bool
	pending     board.LineClear
	updatedAt   time.Time

	// token invalidates continuations scheduled before the latest restart
	token    uint64
	timer    scheduler.Handle
	hasTimer bool
}

// NewController creates a GameController, loads the high score and deals
// the first game
func NewController(
	ctx context.Context,
	cfg Config,
	boardService *board.Service,
	scoringService *scoring.Service,
	generator *catalog.Generator,
	scheduler scheduler.Scheduler,
	clock clock.Clock,
	logger *slog.Logger,
) (*Controller, error) {
	if cfg.Difficulty == "" {
		cfg.Difficulty = model.DefaultDifficulty
	}
	if _, err := cfg.Difficulty.Settings(); err != nil {
		return nil, err
	}

	highScore, err := scoringService.LoadHighScore(ctx)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		cfg:            cfg,
		boardService:   boardService,
		scoringService: scoringService,
		generator:      generator,
		scheduler:      scheduler,
		clock:          clock,
		logger:         logger,
		highScore:      highScore,
	}
	if _, err := c.resetLocked(cfg.Difficulty); err != nil {
		return nil, err
	}
	return c, nil
}

// OnChange registers an observer for every subsequent transition
func (c *Controller) OnChange(o Observer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, o)
}

// Snapshot returns a deep copy of the current game
func (c *Controller) Snapshot() *model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Hints lists where each remaining tray piece fits
func (c *Controller) Hints() []scoring.Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return scoring.LegalMoves(c.board, &c.tray)
}

// DragStart picks up a tray piece with the given cell pinned under the
// pointer. During an animation the session is recorded but the state stays.
func (c *Controller) DragStart(pieceID model.PieceID, offset model.Coord) (*model.Snapshot, error) {
	c.mu.Lock()

	if c.state == model.GameStateOver {
		c.mu.Unlock()
		return nil, model.ErrGameOver
	}
	piece := c.tray.Get(pieceID)
	if piece == nil {
		c.mu.Unlock()
		return nil, model.ErrPieceNotInTray
	}
	if !piece.HasCell(offset) {
		c.mu.Unlock()
		return nil, model.ErrInvalidOffset
	}

	c.drag = &model.DragSession{Piece: piece.Clone(), Offset: offset}
	c.preview = map[model.Coord]model.Color{}
	if !c.state.IsAnimating() {
		c.state = model.GameStateDragging
	}

	return c.unlockAndNotify(nil), nil
}

// DragOver recomputes the preview for the hovered cell. A nil coord means the
// pointer left the board and always clears the preview.
func (c *Controller) DragOver(coord *model.Coord) *model.Snapshot {
	c.mu.Lock()

	preview := map[model.Coord]model.Color{}
	if c.drag != nil && coord != nil {
		anchor := c.drag.Anchor(*coord)
		color := model.InvalidTint
		if board.CanPlace(c.board, c.drag.Piece, anchor) {
			color = c.drag.Piece.Color
		}
		for _, cell := range c.drag.Piece.Cells(anchor) {
			preview[cell] = color
		}
	}
	c.preview = preview

	return c.unlockAndNotify(nil)
}

// Drop commits the dragged piece with its pinned cell on coord. Drops with
// no session, during an animation or after game over are ignored. An illegal
// drop ends the session without touching the board.
func (c *Controller) Drop(ctx context.Context, coord model.Coord) (model.Outcome, *model.Snapshot) {
	c.mu.Lock()

	ignored := func(reason string) (model.Outcome, *model.Snapshot) {
		outcome := model.Outcome{Reason: reason, StateAfterDrop: c.state}
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.logger.Debug("drop ignored", slog.String("reason", reason))
		return outcome, snap
	}

	switch {
	case c.state == model.GameStateOver:
		return ignored(model.DropIgnoredGameOver)
	case c.state.IsAnimating():
		return ignored(model.DropIgnoredAnimating)
	case c.drag == nil:
		return ignored(model.DropIgnoredNoDrag)
	}

	anchor := c.drag.Anchor(coord)
	piece := c.tray.Get(c.drag.Piece.ID)
	if piece == nil {
		c.endDragLocked()
		outcome := model.Outcome{Reason: model.DropIgnoredNoDrag, Anchor: anchor, StateAfterDrop: c.state}
		return outcome, c.unlockAndNotify(nil)
	}

	placing, err := c.boardService.Place(c.board, piece, anchor)
	if err != nil {
		c.endDragLocked()
		outcome := model.Outcome{Reason: model.DropIgnoredIllegal, Anchor: anchor, StateAfterDrop: c.state}
		return outcome, c.unlockAndNotify(nil)
	}

	c.tray.Remove(piece.ID)
	points := scoring.PlacementScore(piece)
	c.score += points
	c.highScore, _ = c.scoringService.UpdateHighScore(ctx, c.score, c.highScore)
	c.placing = placing
	c.drag = nil
	c.preview = map[model.Coord]model.Color{}
	c.state = model.GameStatePlacing
	c.schedule(c.cfg.PlaceDelay, c.settleLocked)

	placed := piece.Cells(anchor)
	outcome := model.Outcome{
		Accepted:       true,
		Anchor:         anchor,
		PointsAwarded:  points,
		PlacedCells:    placed,
		PendingClear:   !board.DetectLines(c.board).Empty(),
		StateAfterDrop: c.state,
	}

	c.logger.Info("piece placed",
		slog.String("game_id", string(c.gameID)),
		slog.Int("piece_id", int(piece.ID)),
		slog.String("anchor", anchor.Key()),
		slog.Int("points", points),
		slog.Int("score", c.score),
	)

	events := []model.Event{c.event(model.EventPiecePlaced, model.PiecePlacedPayload{
		PieceID: piece.ID,
		Anchor:  anchor,
		Points:  points,
	})}
	return outcome, c.unlockAndNotify(events)
}

// DragEnd drops the session and preview. It never cancels an animation.
func (c *Controller) DragEnd() *model.Snapshot {
	c.mu.Lock()
	c.endDragLocked()
	return c.unlockAndNotify(nil)
}

// Restart deals a new game at the current difficulty, cancelling any
// pending animation
func (c *Controller) Restart() (*model.Snapshot, error) {
	c.mu.Lock()
	events, err := c.resetLocked(c.difficulty)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	return c.unlockAndNotify(events), nil
}

// SetDifficulty switches level and restarts
func (c *Controller) SetDifficulty(level model.Difficulty) (*model.Snapshot, error) {
	if _, err := level.Settings(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	events, err := c.resetLocked(level)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	return c.unlockAndNotify(events), nil
}

func (c *Controller) endDragLocked() {
	c.drag = nil
	c.preview = map[model.Coord]model.Color{}
	if c.state == model.GameStateDragging {
		c.state = model.GameStateIdle
	}
}

func (c *Controller) resetLocked(level model.Difficulty) ([]model.Event, error) {
	settings, err := level.Settings()
	if err != nil {
		return nil, err
	}
	tray, err := c.generator.NewTray(level, 1)
	if err != nil {
		return nil, err
	}

	radius := settings.BoardRadius
	if c.cfg.BoardRadius > 0 {
		radius = c.cfg.BoardRadius
	}

	c.cancelTimerLocked()

	c.gameID = model.GameID(uuid.NewString())
	c.difficulty = level
	c.board = model.NewBoard(radius)
	c.tray = tray
	c.nextPieceID = model.TraySize + 1
	c.score = 0
	c.drag = nil
	c.preview = map[model.Coord]model.Color{}
	c.placing = map[model.Coord]int{}
	c.clearing = map[model.Coord]bool{}
	c.pending = board.LineClear{}
	c.state = model.GameStateIdle
	c.updatedAt = c.clock.Now()

	c.logger.Info("game started",
		slog.String("game_id", string(c.gameID)),
		slog.String("difficulty", string(level)),
		slog.Int("board_radius", radius),
	)

	events := []model.Event{c.event(model.EventGameRestarted, model.GameRestartedPayload{
		Difficulty:  level,
		BoardRadius: radius,
	})}
	if scoring.IsGameOver(c.board, &c.tray) {
		events = append(events, c.gameOverLocked())
	}
	return events, nil
}

// settleLocked ends the placement window
func (c *Controller) settleLocked() []model.Event {
	c.placing = map[model.Coord]int{}

	lines := c.boardService.DetectLines(c.board)
	if lines.Empty() {
		return c.finishTurnLocked()
	}

	c.pending = lines
	c.clearing = make(map[model.Coord]bool, len(lines.Cells))
	for _, cell := range lines.Cells {
		c.clearing[cell] = true
	}
	c.state = model.GameStateClearing
	c.schedule(c.cfg.ClearDelay, c.clearLocked)
	return nil
}

// clearLocked ends the clear window
func (c *Controller) clearLocked() []model.Event {
	lines := c.pending
	cells := c.boardService.ClearLines(c.board, lines)
	points := scoring.ClearScore(lines.Count())
	c.score += points
	c.highScore, _ = c.scoringService.UpdateHighScore(context.Background(), c.score, c.highScore)
	c.pending = board.LineClear{}
	c.clearing = map[model.Coord]bool{}

	c.logger.Info("lines cleared",
		slog.String("game_id", string(c.gameID)),
		slog.Int("lines", lines.Count()),
		slog.Int("cells", cells),
		slog.Int("points", points),
	)

	events := []model.Event{c.event(model.EventLinesCleared, model.LinesClearedPayload{
		Lines:  lines.Count(),
		Cells:  cells,
		Points: points,
	})}
	return append(events, c.finishTurnLocked()...)
}

// finishTurnLocked refills an empty tray and runs the game-over search
func (c *Controller) finishTurnLocked() []model.Event {
	var events []model.Event

	if c.tray.IsEmpty() {
		tray, err := c.generator.NewTray(c.difficulty, c.nextPieceID)
		if err != nil {
			// Difficulty was validated on reset
			c.logger.Error("failed to refill tray", slog.String("error", err.Error()))
		} else {
			c.tray = tray
			c.nextPieceID += model.TraySize
			events = append(events, c.event(model.EventTrayRefilled, nil))
		}
	}

	if scoring.IsGameOver(c.board, &c.tray) {
		return append(events, c.gameOverLocked())
	}

	if c.drag != nil {
		c.state = model.GameStateDragging
	} else {
		c.state = model.GameStateIdle
	}
	return events
}

func (c *Controller) gameOverLocked() model.Event {
	c.state = model.GameStateOver
	c.drag = nil
	c.preview = map[model.Coord]model.Color{}

	c.logger.Info("game over",
		slog.String("game_id", string(c.gameID)),
		slog.Int("score", c.score),
		slog.Int("high_score", c.highScore),
	)
	return c.event(model.EventGameOver, model.GameOverPayload{
		Score:     c.score,
		HighScore: c.highScore,
	})
}

// schedule arms the single animation timer. The continuation is discarded
// if the token moved on before it ran.
func (c *Controller) schedule(d time.Duration, step func() []model.Event) {
	c.token++
	token := c.token
	c.hasTimer = true
	c.timer = c.scheduler.Schedule(d, func() {
		c.mu.Lock()
		if token != c.token || !c.hasTimer {
			c.mu.Unlock()
			c.logger.Debug("discarding stale continuation")
			return
		}
		c.hasTimer = false
		events := step()
		c.unlockAndNotify(events)
	})
}

func (c *Controller) cancelTimerLocked() {
	c.token++
	if c.hasTimer {
		c.scheduler.Cancel(c.timer)
		c.hasTimer = false
	}
}

func (c *Controller) event(t model.EventType, payload any) model.Event {
	return model.Event{
		Type:      t,
		Timestamp: c.clock.Now(),
		GameID:    c.gameID,
		Payload:   payload,
	}
}

// unlockAndNotify stamps the transition, releases mu and fans the snapshot
// out to observers. Observers run one transition at a time and must not call
// back into the controller.
func (c *Controller) unlockAndNotify(events []model.Event) *model.Snapshot {
	c.updatedAt = c.clock.Now()
	events = append([]model.Event{c.event(model.EventStateChanged, nil)}, events...)
	snap := c.snapshotLocked()
	observers := make([]Observer, len(c.observers))
	copy(observers, c.observers)
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.mu.Unlock()

	for _, o := range observers {
		o(events, snap)
	}
	return snap
}

func (c *Controller) snapshotLocked() *model.Snapshot {
	tray := c.tray.Clone()
	snap := &model.Snapshot{
		GameID:        c.gameID,
		Difficulty:    c.difficulty,
		BoardRadius:   c.board.Radius,
		State:         c.state,
		Board:         c.board.Clone(),
		Tray:          tray,
		Score:         c.score,
		HighScore:     c.highScore,
		GameOver:      c.state == model.GameStateOver,
		Animating:     c.state.IsAnimating(),
		Preview:       make(map[model.Coord]model.Color, len(c.preview)),
		PlacingCells:  make(map[model.Coord]int, len(c.placing)),
		ClearingCells: make(map[model.Coord]bool, len(c.clearing)),
		UpdatedAt:     c.updatedAt,
	}
	for k, v := range c.preview {
		snap.Preview[k] = v
	}
	for k, v := range c.placing {
		snap.PlacingCells[k] = v
	}
	for k, v := range c.clearing {
		snap.ClearingCells[k] = v
	}
	if c.drag != nil {
		snap.Drag = &model.DragSession{Piece: c.drag.Piece.Clone(), Offset: c.drag.Offset}
	}
	return snap
}

// Interface for dependency injection
type ControllerInterface interface {
	Snapshot() *model.Snapshot
	Hints() []scoring.Move
	OnChange(o Observer)
	DragStart(pieceID model.PieceID, offset model.Coord) (*model.Snapshot, error)
	DragOver(coord *model.Coord) *model.Snapshot
	Drop(ctx context.Context, coord model.Coord) (model.Outcome, *model.Snapshot)
	DragEnd() *model.Snapshot
	Restart() (*model.Snapshot, error)
	SetDifficulty(level model.Difficulty) (*model.Snapshot, error)
}

var _ ControllerInterface = (*Controller)(nil)
