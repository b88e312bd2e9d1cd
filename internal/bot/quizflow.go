package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/errorkid/examquizbot.git/internal/quiz"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// review runs skip the time selection screen, so they get a fixed limit
const reviewTimeLimit = 30

type QuizSI interface {
	SampleQuestions(ctx context.Context, category, subject string, chapters []string, count int) ([]models.Question, error)
	ReviewQuestions(ctx context.Context, userID int64, category, subject string) ([]models.Question, error)
	RecordAnswer(ctx context.Context, userID int64, category, subject string, mode models.QuizMode, q models.Question, correct bool) error
}

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service QuizSI
	engine  *quiz.Engine
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

// launch resolves the accumulated selection into a quiz run and hands it to
// the engine. The selection fields are cleared up front, before resolving,
// so a finished run can never leak chapters into the next one.
func (t *QuizT) launch(query *tgbotapi.CallbackQuery) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := query.From.ID
	chatID := query.Message.Chat.ID

	session := t.cache.Session(userID)
	t.cache.Update(userID, func(s *models.Session) {
		s.ClearQuizSelection()
	})

	var (
		questions []models.Question
		err       error
	)

	timeLimit := session.TimeLimit
	if session.Mode == models.ModeReview {
		questions, err = t.service.ReviewQuestions(ctx, userID, session.Category, session.Subject)
		if timeLimit == 0 {
			timeLimit = reviewTimeLimit
		}
	} else {
		questions, err = t.service.SampleQuestions(ctx, session.Category, session.Subject, session.FinalChapters, session.Count)
	}

	if err != nil {
		log.Printf("Failed to resolve quiz for user %d: %v", userID, err)
		keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
		safeEditMessage(t.bot, chatID, query.Message.MessageID, "❌ Failed to load questions. Try later.", &keyboard)
		return
	}

	if len(questions) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
		safeEditMessage(t.bot, chatID, query.Message.MessageID, "❌ No questions found.", &keyboard)
		return
	}

	safeEditMessage(t.bot, chatID, query.Message.MessageID,
		fmt.Sprintf("🚀 *Starting Quiz!*\nQs: %d\n\n_Use /stop to end._", len(questions)), nil)

	t.engine.Start(models.QuizRun{
		Questions:          questions,
		PerQuestionSeconds: timeLimit,
		ChatID:             chatID,
		UserID:             userID,
		Category:           session.Category,
		Subject:            session.Subject,
		Mode:               session.Mode,
	})
}

func (t *QuizT) handleStop(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	t.engine.Stop(message.From.ID)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🛑 Stopping... Menu coming up.")
	sendMessage(t.bot, msg)
}

func (t *QuizT) handlePollAnswer(answer *tgbotapi.PollAnswer) {
	if len(answer.OptionIDs) == 0 {
		// retracted vote, nothing to score
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.engine.HandleAnswer(ctx, answer.PollID, answer.OptionIDs[0], answer.User.ID)
}

// SendQuizPoll implements quiz.PollSender over the Bot API.
func (t *QuizT) SendQuizPoll(chatID int64, text string, options []string, correctIndex, openSeconds int) (string, error) {
	poll := tgbotapi.NewPoll(chatID, text, options...)
	poll.Type = "quiz"
	poll.CorrectOptionID = int64(correctIndex)
	poll.OpenPeriod = openSeconds
	poll.IsAnonymous = false

	msg, err := t.bot.Send(poll)
	if err != nil {
		return "", err
	}
	if msg.Poll == nil {
		return "", fmt.Errorf("transport returned message without poll")
	}

	return msg.Poll.ID, nil
}

func (t *QuizT) SendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}
