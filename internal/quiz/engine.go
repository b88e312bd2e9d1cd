package quiz

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/errorkid/examquizbot.git/internal/models"
	"go.uber.org/zap"
)

const (
	// pause after an answered poll so the closing animation finishes
	// before the next question lands
	defaultSettleDelay = 500 * time.Millisecond
	// answers arriving shortly after the nominal time limit still count
	defaultAnswerGrace = 2 * time.Second
)

// PollSender emits a single-answer timed quiz poll and returns the
// transport's opaque poll id.
type PollSender interface {
	SendQuizPoll(chatID int64, text string, options []string, correctIndex, openSeconds int) (string, error)
	SendText(chatID int64, text string)
}

// MenuRenderer brings the user back to the main menu once a run ends.
type MenuRenderer interface {
	SendMainMenu(chatID, userID int64)
}

// AnswerRecorder consumes one classified answer event per outstanding poll.
type AnswerRecorder interface {
	RecordAnswer(ctx context.Context, userID int64, category, subject string, mode models.QuizMode, q models.Question, correct bool) error
}

// entry correlates one outstanding poll with the question it carries.
// Presence in the table is the single source of truth for whether an answer
// event is still relevant.
type entry struct {
	question models.Question
	category string
	subject  string
	owner    int64
	mode     models.QuizMode
	answered chan struct{}
}

type Engine struct {
	sender   PollSender
	menu     MenuRenderer
	recorder AnswerRecorder
	log      *zap.Logger

	settleDelay time.Duration
	answerGrace time.Duration

	mu        sync.Mutex
	polls     map[string]*entry
	cancelled map[int64]bool
}

func NewEngine(sender PollSender, menu MenuRenderer, recorder AnswerRecorder, log *zap.Logger) *Engine {
	return &Engine{
		sender:      sender,
		menu:        menu,
		recorder:    recorder,
		log:         log,
		settleDelay: defaultSettleDelay,
		answerGrace: defaultAnswerGrace,
		polls:       make(map[string]*entry),
		cancelled:   make(map[int64]bool),
	}
}

// Start hands a resolved quiz run to its own goroutine. The caller does not
// wait; all effects are polls, notices and recorded answers.
func (e *Engine) Start(run models.QuizRun) {
	if len(run.Questions) == 0 {
		return
	}

	e.mu.Lock()
	delete(e.cancelled, run.UserID)
	e.mu.Unlock()

	go e.run(run)
}

// Stop requests cooperative cancellation of the user's active run. The flag
// is honored at the next question boundary; an already outstanding poll is
// waited out first.
func (e *Engine) Stop(userID int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelled[userID] = true
}

func (e *Engine) run(run models.QuizRun) {
	total := len(run.Questions)

	for i, q := range run.Questions {
		if e.stopRequested(run.UserID) {
			e.sender.SendText(run.ChatID, "🛑 *Quiz stopped.*")
			e.menu.SendMainMenu(run.ChatID, run.UserID)
			return
		}

		text := fmt.Sprintf("[%d/%d] %s", i+1, total, q.Text)
		pollID, err := e.sender.SendQuizPoll(run.ChatID, text, q.Options, q.CorrectIndex, run.PerQuestionSeconds)
		if err != nil {
			e.log.Error("failed to send poll, aborting run",
				zap.Int64("chat_id", run.ChatID), zap.Int("question", i+1), zap.Error(err))
			e.sender.SendText(run.ChatID, "⚠️ *Quiz interrupted.*")
			e.menu.SendMainMenu(run.ChatID, run.UserID)
			return
		}

		// the correlation entry must exist before waiting, so an answer
		// event arriving immediately still finds it
		en := e.register(pollID, run, q)

		select {
		case <-en.answered:
			time.Sleep(e.settleDelay)
		case <-time.After(time.Duration(run.PerQuestionSeconds)*time.Second + e.answerGrace):
			// timeout is not an error, move on
		}

		e.remove(pollID)
	}

	e.sender.SendText(run.ChatID, "🏁 *Quiz completed!*")
	e.menu.SendMainMenu(run.ChatID, run.UserID)
}

// HandleAnswer consumes the answer event for a poll. Consumption removes the
// correlation entry, so replays and late events for the same poll are
// silently ignored. Stats are recorded for the responding user.
func (e *Engine) HandleAnswer(ctx context.Context, pollID string, chosenIndex int, userID int64) {
	e.mu.Lock()
	en, live := e.polls[pollID]
	if live {
		delete(e.polls, pollID)
	}
	e.mu.Unlock()

	if !live {
		return
	}

	close(en.answered)

	correct := chosenIndex == en.question.CorrectIndex
	if err := e.recorder.RecordAnswer(ctx, userID, en.category, en.subject, en.mode, en.question, correct); err != nil {
		e.log.Warn("failed to record answer event",
			zap.String("poll_id", pollID), zap.Int64("user_id", userID), zap.Error(err))
	}
}

// Outstanding reports how many correlation entries are live. Stale entries
// after a finished run indicate a cleanup bug.
func (e *Engine) Outstanding() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.polls)
}

func (e *Engine) register(pollID string, run models.QuizRun, q models.Question) *entry {
	en := &entry{
		question: q,
		category: run.Category,
		subject:  run.Subject,
		owner:    run.UserID,
		mode:     run.Mode,
		answered: make(chan struct{}),
	}

	e.mu.Lock()
	e.polls[pollID] = en
	e.mu.Unlock()

	return en
}

func (e *Engine) remove(pollID string) {
	e.mu.Lock()
	delete(e.polls, pollID)
	e.mu.Unlock()
}

func (e *Engine) stopRequested(userID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancelled[userID]
}
