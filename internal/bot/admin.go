package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const groupPollOpenSeconds = 60

// users who interacted within this window count as live on the panel header
const liveUserWindow = 10 * time.Minute

type AdminSI interface {
	IsAdmin(ctx context.Context, userID int64) bool
	IsOwner(userID int64) bool
	AddAdmin(ctx context.Context, userID int64) error
	Categories(ctx context.Context) ([]string, error)
	Subjects(ctx context.Context, category string) ([]string, error)
	Chapters(ctx context.Context, category, subject string) ([]models.ChapterInfo, error)
	CreateChapter(ctx context.Context, category, subject, name string) error
	DeleteChapter(ctx context.Context, category, subject, name string) error
	AddQuestion(ctx context.Context, category, subject, chapter string, q models.Question) error
	ImportQuestions(ctx context.Context, category, subject, chapter, text string) (int, error)
	RandomQuestion(ctx context.Context) (models.Question, error)
	Register(ctx context.Context, chatID int64, title string) error
	Group(ctx context.Context, chatID int64) (models.GroupSettings, error)
	ToggleActive(ctx context.Context, chatID int64) (bool, error)
	SetInterval(ctx context.Context, chatID int64, seconds int) error
	Groups(ctx context.Context) ([]models.GroupSettings, error)
}

type AdminT struct {
	bot     BotSender
	cache   *cache.Cache
	service AdminSI
	poller  *QuizT

	mu   sync.Mutex
	jobs map[int64]chan struct{}
}

func NewAdminTAPI(bot BotSender, cache *cache.Cache, service AdminSI, poller *QuizT) *AdminT {
	return &AdminT{
		bot:     bot,
		cache:   cache,
		service: service,
		poller:  poller,
		jobs:    make(map[int64]chan struct{}),
	}
}

func (t *AdminT) handleAction(query *tgbotapi.CallbackQuery, act Action) {
	if query.Message == nil || query.From == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := query.From.ID
	if !t.service.IsAdmin(ctx, userID) {
		answerAlert(t.bot, query.ID, "⛔ Access Denied!")
		return
	}

	switch act.Kind {
	case ActAdminMenu:
		t.showPanel(ctx, query)
	case ActAdminCategory:
		t.cache.Update(userID, func(s *models.Session) {
			s.AdminCategory = act.Category
		})
		t.showSubjects(ctx, query, act.Category)
	case ActAdminSubject:
		t.cache.Update(userID, func(s *models.Session) {
			s.AdminSubject = act.Subject
		})
		t.showChapters(ctx, query, false)
	case ActAdminChapter:
		t.activateIngest(query, act.Chapter)
	case ActAdminNewChapter:
		t.cache.Update(userID, func(s *models.Session) {
			s.AwaitingChapterName = true
		})
		t.prompt(query, "⌨️ *Type Chapter Name:*")
	case ActAdminDeleteMenu:
		t.showChapters(ctx, query, true)
	case ActAdminDeleteChapter:
		t.deleteChapter(ctx, query, act.Chapter)
	case ActAdminGroups:
		t.showGroups(ctx, query)
	case ActAdminGroup:
		t.cache.Update(userID, func(s *models.Session) {
			s.TargetGroup = act.GroupID
		})
		t.showGroup(ctx, query, act.GroupID, "⚙️ *Group Settings:*")
	case ActAdminGroupPower:
		t.toggleGroupPower(ctx, query, act.GroupID)
	case ActAdminGroupInterval:
		t.cache.Update(userID, func(s *models.Session) {
			s.AwaitingInterval = true
		})
		t.prompt(query, "⌨️ *Type Interval (seconds):*")
	case ActAddAdminPrompt:
		if !t.service.IsOwner(userID) {
			answerAlert(t.bot, query.ID, "⛔ Owner only!")
			return
		}
		t.cache.Update(userID, func(s *models.Session) {
			s.AwaitingAdminID = true
		})
		t.prompt(query, "🆔 *Send User ID:*")
	case ActBroadcastPrompt:
		if !t.service.IsOwner(userID) {
			answerAlert(t.bot, query.ID, "⛔ Owner only!")
			return
		}
		t.cache.Update(userID, func(s *models.Session) {
			s.AwaitingBroadcast = true
		})
		t.prompt(query, "📣 *Send the broadcast text:*")
	default:
		log.Printf("Unhandled admin action %d from user %d", act.Kind, userID)
	}
}

func (t *AdminT) showPanel(ctx context.Context, query *tgbotapi.CallbackQuery) {
	categories, err := t.service.Categories(ctx)
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add to "+category, adminCatData(category)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏱️ Manage Groups", cbAdminGroups),
	))
	if t.service.IsOwner(query.From.ID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📣 Broadcast", cbBroadcast),
		))
	}
	rows = append(rows, backRow(cbMainMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	title := fmt.Sprintf("🛡️ *Admin Panel*\nLive Users: %d", t.cache.LiveCount(liveUserWindow))
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, title, &keyboard)
}

func (t *AdminT) showSubjects(ctx context.Context, query *tgbotapi.CallbackQuery, category string) {
	subjects, err := t.service.Subjects(ctx, category)
	if err != nil {
		log.Printf("Failed to load subjects for %s: %v", category, err)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, subject := range subjects {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(subject, adminSubData(subject)),
		))
	}
	rows = append(rows, backRow(cbAdminMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("Select %s Subject:", category), &keyboard)
}

func (t *AdminT) showChapters(ctx context.Context, query *tgbotapi.CallbackQuery, deleting bool) {
	session := t.cache.Session(query.From.ID)

	chapters, err := t.service.Chapters(ctx, session.AdminCategory, session.AdminSubject)
	if err != nil {
		log.Printf("Failed to load chapters for %s/%s: %v", session.AdminCategory, session.AdminSubject, err)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, chapter := range chapters {
		if deleting {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(
					fmt.Sprintf("🗑 %s [%d]", chapter.Name, chapter.QuestionCount),
					adminDeleteData(chapter.Name)),
			))
		} else {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(chapter.Name, adminChapData(chapter.Name)),
			))
		}
	}

	title := "Select Chapter:"
	if deleting {
		title = "🗑 *Delete which chapter?*"
		rows = append(rows, backRow(adminSubData(session.AdminSubject)))
	} else {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add New Chapter", cbAdminNewChap),
		))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Delete Chapter", cbAdminDelMenu),
		))
		rows = append(rows, backRow(cbAdminMenu))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, title, &keyboard)
}

func (t *AdminT) activateIngest(query *tgbotapi.CallbackQuery, chapter string) {
	var session models.Session
	t.cache.Update(query.From.ID, func(s *models.Session) {
		s.AdminChapter = chapter
		s.IngestActive = true
		session = *s
	})

	keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(adminSubData(session.AdminSubject)))
	text := fmt.Sprintf("📂 *Active:* %s > %s\n\n👇 *Forward quiz polls now*,\n"+
		"or send bulk lines:\n`question | opt1 | opt2 | correct_index`",
		session.AdminCategory, chapter)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, text, &keyboard)
}

func (t *AdminT) deleteChapter(ctx context.Context, query *tgbotapi.CallbackQuery, chapter string) {
	session := t.cache.Session(query.From.ID)

	if err := t.service.DeleteChapter(ctx, session.AdminCategory, session.AdminSubject, chapter); err != nil {
		log.Printf("Failed to delete chapter %s: %v", chapter, err)
		answerAlert(t.bot, query.ID, "❌ Delete failed.")
		return
	}

	answerAlert(t.bot, query.ID, "🗑 Deleted.")
	t.showChapters(ctx, query, true)
}

func (t *AdminT) showGroups(ctx context.Context, query *tgbotapi.CallbackQuery) {
	groups, err := t.service.Groups(ctx)
	if err != nil {
		log.Printf("Failed to list groups: %v", err)
		return
	}

	if len(groups) == 0 {
		answerAlert(t.bot, query.ID, "No groups.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, group := range groups {
		title := group.Title
		if title == "" {
			title = strconv.FormatInt(group.ChatID, 10)
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📢 "+title, adminGroupData(group.ChatID)),
		))
	}
	rows = append(rows, backRow(cbAdminMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "⚙️ *Select Group:*", &keyboard)
}

func (t *AdminT) showGroup(ctx context.Context, query *tgbotapi.CallbackQuery, chatID int64, title string) {
	group, err := t.service.Group(ctx, chatID)
	if err != nil {
		log.Printf("Failed to load group %d: %v", chatID, err)
		answerAlert(t.bot, query.ID, "Group Error.")
		return
	}

	status := "✅ ON"
	if !group.Active {
		status = "🔴 OFF"
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Power: "+status, adminPowerData(chatID)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("⏱️ Interval: %ds", group.IntervalSeconds), cbAdminInterval),
		),
		backRow(cbAdminGroups),
	)

	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("%s\nID: `%d`", title, chatID), &keyboard)
}

func (t *AdminT) toggleGroupPower(ctx context.Context, query *tgbotapi.CallbackQuery, chatID int64) {
	if _, err := t.service.ToggleActive(ctx, chatID); err != nil {
		log.Printf("Failed to toggle group %d: %v", chatID, err)
		answerAlert(t.bot, query.ID, "❌ Toggle failed.")
		return
	}

	t.showGroup(ctx, query, chatID, "⚙️ *Settings Updated!*")
}

func (t *AdminT) prompt(query *tgbotapi.CallbackQuery, text string) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbAdminMenu),
		),
	)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, text, &keyboard)
}

// handleTextInput consumes plain-text messages for any pending admin input.
// Returns false when no input was expected so the caller can fall through.
func (t *AdminT) handleTextInput(message *tgbotapi.Message) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := message.From.ID
	text := message.Text
	session := t.cache.Session(userID)

	switch {
	case session.AwaitingAdminID && t.service.IsOwner(userID):
		t.addAdmin(ctx, message, text)
	case session.AwaitingInterval && t.service.IsAdmin(ctx, userID):
		t.setGroupInterval(ctx, message, session.TargetGroup, text)
	case session.AwaitingChapterName && t.service.IsAdmin(ctx, userID):
		t.createChapter(ctx, message, session, text)
	case session.AwaitingBroadcast && t.service.IsOwner(userID):
		t.broadcast(ctx, message, text)
	case session.IngestActive && strings.Contains(text, "|") && t.service.IsAdmin(ctx, userID):
		t.bulkImport(ctx, message, session, text)
	default:
		return false
	}

	return true
}

func (t *AdminT) addAdmin(ctx context.Context, message *tgbotapi.Message, text string) {
	defer t.cache.Update(message.From.ID, func(s *models.Session) {
		s.AwaitingAdminID = false
	})

	newAdmin, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Invalid ID."))
		return
	}

	if err := t.service.AddAdmin(ctx, newAdmin); err != nil {
		log.Printf("Failed to add admin %d: %v", newAdmin, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to add admin."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ User %d is now Admin.", newAdmin)))
}

func (t *AdminT) setGroupInterval(ctx context.Context, message *tgbotapi.Message, chatID int64, text string) {
	defer t.cache.Update(message.From.ID, func(s *models.Session) {
		s.AwaitingInterval = false
	})

	seconds, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || seconds <= 0 {
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Invalid number."))
		return
	}

	if err := t.service.SetInterval(ctx, chatID, seconds); err != nil {
		log.Printf("Failed to set interval for group %d: %v", chatID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Group Error."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("✅ Interval: %ds.", seconds)))
}

func (t *AdminT) createChapter(ctx context.Context, message *tgbotapi.Message, session models.Session, text string) {
	defer t.cache.Update(message.From.ID, func(s *models.Session) {
		s.AwaitingChapterName = false
	})

	name := strings.TrimSpace(text)
	if err := t.service.CreateChapter(ctx, session.AdminCategory, session.AdminSubject, name); err != nil {
		log.Printf("Failed to create chapter %q: %v", name, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to add chapter."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ Chapter '%s' added.", name)))
}

func (t *AdminT) broadcast(ctx context.Context, message *tgbotapi.Message, text string) {
	defer t.cache.Update(message.From.ID, func(s *models.Session) {
		s.AwaitingBroadcast = false
	})

	groups, err := t.service.Groups(ctx)
	if err != nil {
		log.Printf("Failed to list groups for broadcast: %v", err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Broadcast failed."))
		return
	}

	sent := 0
	for _, group := range groups {
		msg := tgbotapi.NewMessage(group.ChatID, text)
		if _, err := t.bot.Send(msg); err != nil {
			log.Printf("Broadcast to %d failed: %v", group.ChatID, err)
			continue
		}
		sent++
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("📣 Broadcast sent to %d groups.", sent)))
}

func (t *AdminT) bulkImport(ctx context.Context, message *tgbotapi.Message, session models.Session, text string) {
	imported, err := t.service.ImportQuestions(ctx,
		session.AdminCategory, session.AdminSubject, session.AdminChapter, text)
	if err != nil {
		log.Printf("Bulk import failed after %d questions: %v", imported, err)
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
		fmt.Sprintf("✅ Imported %d questions.", imported)))
}

// handlePollUpload stores a forwarded quiz poll as a question in the active
// ingest chapter.
func (t *AdminT) handlePollUpload(message *tgbotapi.Message) {
	if message.From == nil || message.Poll == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := message.From.ID
	session := t.cache.Session(userID)
	if !session.IngestActive || !t.service.IsAdmin(ctx, userID) {
		return
	}

	options := make([]string, 0, len(message.Poll.Options))
	for _, opt := range message.Poll.Options {
		options = append(options, opt.Text)
	}

	q := models.Question{
		Text:         message.Poll.Question,
		Options:      options,
		CorrectIndex: message.Poll.CorrectOptionID,
	}

	if err := t.service.AddQuestion(ctx, session.AdminCategory, session.AdminSubject, session.AdminChapter, q); err != nil {
		log.Printf("Failed to store forwarded poll: %v", err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Could not save that poll."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "✅ Saved!"))
}

func (t *AdminT) handleRegister(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := t.service.Register(ctx, message.Chat.ID, message.Chat.Title); err != nil {
		log.Printf("Failed to register group %d: %v", message.Chat.ID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Registration failed."))
		return
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "✅ Registered!"))
}

func (t *AdminT) handleStartGroupQuiz(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	chatID := message.Chat.ID
	group, err := t.service.Group(ctx, chatID)
	if err != nil {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Register first with /register."))
		return
	}

	if !group.Active {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🔴 Quiz OFF."))
		return
	}

	t.mu.Lock()
	if _, running := t.jobs[chatID]; running {
		t.mu.Unlock()
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Already running. /stop_quiz to stop."))
		return
	}
	stop := make(chan struct{})
	t.jobs[chatID] = stop
	t.mu.Unlock()

	go t.runGroupQuiz(chatID, time.Duration(group.IntervalSeconds)*time.Second, stop)

	sendMessage(t.bot, tgbotapi.NewMessage(chatID,
		fmt.Sprintf("🚀 Started! One question every %ds.", group.IntervalSeconds)))
}

func (t *AdminT) handleStopGroupQuiz(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	t.mu.Lock()
	stop, running := t.jobs[chatID]
	if running {
		delete(t.jobs, chatID)
	}
	t.mu.Unlock()

	if !running {
		sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Nothing to stop."))
		return
	}

	close(stop)
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, "🛑 Group quiz stopped."))
}

func (t *AdminT) handleCancel(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	t.cache.Update(message.From.ID, func(s *models.Session) {
		s.ClearPendingInput()
	})

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Cancelled."))
}

// runGroupQuiz fires one random question per tick until stopped. The group's
// power switch is re-read every tick so turning it off pauses the job without
// killing it.
func (t *AdminT) runGroupQuiz(chatID int64, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			group, err := t.service.Group(ctx, chatID)
			if err != nil || !group.Active {
				cancel()
				continue
			}

			q, err := t.service.RandomQuestion(ctx)
			cancel()
			if err != nil {
				log.Printf("No question for group %d: %v", chatID, err)
				continue
			}

			if _, err := t.poller.SendQuizPoll(chatID, q.Text, q.Options, q.CorrectIndex, groupPollOpenSeconds); err != nil {
				log.Printf("Failed to send group poll to %d: %v", chatID, err)
			}
		}
	}
}
