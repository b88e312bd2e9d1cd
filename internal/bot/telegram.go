package bot

import (
	"log"
	"strings"

	"github.com/errorkid/examquizbot.git/internal/quiz"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	MenuSI
	QuizSI
	AdminSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	bot   *tgbotapi.BotAPI
	cache *cache.Cache
	menu  *MenuT
	quiz  *QuizT
	admin *AdminT
}

func NewTelegramAPI(botToken, env string, service ServiceI, cache *cache.Cache, logger *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	quizT := NewQuizTAPI(bot, cache, service)
	menuT := NewMenuTAPI(bot, cache, service, quizT)
	quizT.engine = quiz.NewEngine(quizT, menuT, service, logger)
	adminT := NewAdminTAPI(bot, cache, service, quizT)

	return &TelegramAPI{
		bot:   bot,
		cache: cache,
		menu:  menuT,
		quiz:  quizT,
		admin: adminT,
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		t.markSeen(&update)

		if update.PollAnswer != nil {
			t.quiz.handlePollAnswer(update.PollAnswer)
			continue
		}

		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else if update.Message.Poll != nil {
				t.admin.handlePollUpload(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

// markSeen feeds the live-user counter shown on the admin panel.
func (t *TelegramAPI) markSeen(update *tgbotapi.Update) {
	switch {
	case update.PollAnswer != nil:
		t.cache.Touch(update.PollAnswer.User.ID)
	case update.Message != nil && update.Message.From != nil:
		t.cache.Touch(update.Message.From.ID)
	case update.CallbackQuery != nil:
		t.cache.Touch(update.CallbackQuery.From.ID)
	}
}

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.menu.handleStart(message)
	case "stop":
		t.quiz.handleStop(message)
	case "register":
		t.admin.handleRegister(message)
	case "start_quiz":
		t.admin.handleStartGroupQuiz(message)
	case "stop_quiz":
		t.admin.handleStopGroupQuiz(message)
	case "cancel":
		t.admin.handleCancel(message)
	case "help":
		t.menu.showHelp(message.Chat.ID, nil)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	if t.admin.handleTextInput(message) {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use /start for the menu.")
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	act := ParseAction(query.Data)

	switch {
	case act.Kind == ActUnknown:
		log.Printf("Unknown callback data: %s from user %d", query.Data, query.From.ID)
	case act.Kind >= ActAdminMenu:
		t.admin.handleAction(query, act)
	default:
		t.menu.handleAction(query, act)
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}

// safeEditMessage re-renders a menu screen in place. Editing to identical
// content is a no-op, not an error.
func safeEditMessage(bot BotSender, chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	editMsg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	editMsg.ParseMode = "markdown"
	if keyboard != nil {
		editMsg.ReplyMarkup = keyboard
	}

	if _, err := bot.Send(editMsg); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return
		}
		log.Printf("Failed to edit message: %v", err)
	}
}

func answerAlert(bot BotSender, queryID, text string) {
	callback := tgbotapi.NewCallbackWithAlert(queryID, text)
	if _, err := bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}
