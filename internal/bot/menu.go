package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/errorkid/examquizbot.git/internal/models"
	"github.com/errorkid/examquizbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	quizTimes  = []int{15, 30, 45, 60}
	quizCounts = []int{15, 30, 45, 60, 90, 120}
)

type MenuSI interface {
	Categories(ctx context.Context) ([]string, error)
	Subjects(ctx context.Context, category string) ([]string, error)
	Chapters(ctx context.Context, category, subject string) ([]models.ChapterInfo, error)
	StatsText(ctx context.Context, userID int64) (string, error)
	ResetStats(ctx context.Context, userID int64) error
	ReviewBuckets(ctx context.Context, userID int64) ([]models.MistakeBucket, error)
	VerifyMainChannel(ctx context.Context, userID int64) bool
	VerifyGate(ctx context.Context, category string, userID int64) bool
	GateLink(category string) string
	MainChannelLink() string
	IsAdmin(ctx context.Context, userID int64) bool
	IsOwner(userID int64) bool
	OwnerID() int64
}

// QuizLauncher hands a completed selection over to the quiz flow.
type QuizLauncher interface {
	launch(query *tgbotapi.CallbackQuery)
}

type MenuT struct {
	bot      BotSender
	cache    *cache.Cache
	service  MenuSI
	launcher QuizLauncher
}

func NewMenuTAPI(bot BotSender, cache *cache.Cache, service MenuSI, launcher QuizLauncher) *MenuT {
	return &MenuT{
		bot:      bot,
		cache:    cache,
		service:  service,
		launcher: launcher,
	}
}

func (t *MenuT) handleStart(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID := message.From.ID
	if !t.service.VerifyMainChannel(ctx, userID) {
		t.sendForceJoin(message.Chat.ID)
		return
	}

	keyboard := t.mainMenuKeyboard(ctx, userID)
	welcome := fmt.Sprintf("✨ *Welcome, %s!*\n\n🚀 Select a category to start a quiz,\n"+
		"or review the questions you got wrong.\n\n👇 _Tap a button below:_", message.From.FirstName)

	msg := tgbotapi.NewMessage(message.Chat.ID, welcome)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *MenuT) handleAction(query *tgbotapi.CallbackQuery, act Action) {
	if query.Message == nil || query.From == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch act.Kind {
	case ActMainMenu:
		t.showMainMenu(ctx, query)
	case ActHelp:
		t.showHelp(query.Message.Chat.ID, query)
	case ActSettings:
		t.showSettings(ctx, query)
	case ActViewStats:
		t.showStats(ctx, query)
	case ActResetStats:
		t.resetStats(ctx, query)
	case ActRequestAdmin:
		t.requestAdmin(query)
	case ActRecheckMain:
		t.recheckMain(ctx, query)
	case ActGate, ActRecheckGate:
		t.enterGate(ctx, query, act)
	case ActSelectSubject:
		t.showModeChoice(query, act.Category, act.Subject)
	case ActModeSingle:
		t.showChapters(ctx, query, false)
	case ActModeMix:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.Multi = true
			s.Selected = make(map[string]bool)
		})
		t.showChapters(ctx, query, true)
	case ActToggleChapter:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.ToggleChapter(act.Chapter)
		})
		t.showChapters(ctx, query, true)
	case ActConfirmMix:
		t.confirmMix(query)
	case ActSingleChapter:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.FinalChapters = []string{act.Chapter}
		})
		t.askTime(query)
	case ActPickTime:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.TimeLimit = act.Value
		})
		t.askCount(query)
	case ActPickCount:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.Count = act.Value
		})
		t.launcher.launch(query)
	case ActReviewMenu:
		t.showReviewMenu(ctx, query)
	case ActReviewSubject:
		t.cache.Update(query.From.ID, func(s *models.Session) {
			s.Mode = models.ModeReview
			s.Category = act.Category
			s.Subject = act.Subject
		})
		t.launcher.launch(query)
	default:
		log.Printf("Unhandled menu action %d from user %d", act.Kind, query.From.ID)
	}
}

func (t *MenuT) mainMenuKeyboard(ctx context.Context, userID int64) tgbotapi.InlineKeyboardMarkup {
	categories, err := t.service.Categories(ctx)
	if err != nil {
		log.Printf("Failed to load categories: %v", err)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, category := range categories {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📚 "+category, gateData(category)),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔁 Review Mistakes", cbReviewMenu),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⚙️ Settings", cbSettings),
		tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", cbHelp),
	))

	if t.service.IsAdmin(ctx, userID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛡️ Admin Panel", cbAdminMenu),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (t *MenuT) showMainMenu(ctx context.Context, query *tgbotapi.CallbackQuery) {
	keyboard := t.mainMenuKeyboard(ctx, query.From.ID)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "🏠 *Main Menu:*", &keyboard)
}

// SendMainMenu posts a fresh main-menu message, used after a quiz run ends
// when there is no screen left to edit.
func (t *MenuT) SendMainMenu(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	keyboard := t.mainMenuKeyboard(ctx, userID)
	msg := tgbotapi.NewMessage(chatID, "🏠 *Main Menu:*")
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *MenuT) sendForceJoin(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Join Channel", t.service.MainChannelLink()),
			tgbotapi.NewInlineKeyboardButtonData("✅ I have Joined", cbRecheckMain),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "🚫 *Access Denied!*\n\nJoin the official channel to use this bot.")
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *MenuT) recheckMain(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if t.service.VerifyMainChannel(ctx, query.From.ID) {
		t.showMainMenu(ctx, query)
		return
	}
	answerAlert(t.bot, query.ID, "❌ Join First!")
}

// enterGate verifies group membership before opening a category. Success is
// remembered for the rest of the session, so transient verification failures
// cannot lock a user out mid-flow.
func (t *MenuT) enterGate(ctx context.Context, query *tgbotapi.CallbackQuery, act Action) {
	userID := query.From.ID

	verified := t.cache.Session(userID).VerifiedGates[act.Category]
	if !verified {
		verified = t.service.VerifyGate(ctx, act.Category, userID)
	}

	if verified {
		t.cache.Update(userID, func(s *models.Session) {
			s.VerifiedGates[act.Category] = true
		})
		t.showSubjects(ctx, query, act.Category)
		return
	}

	if act.Kind == ActRecheckGate {
		answerAlert(t.bot, query.ID, "❌ Join Group First!")
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🚀 Join Group", t.service.GateLink(act.Category)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ I have Joined", recheckGateData(act.Category)),
		),
	)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		"⚠️ *Verification Required!*\nJoin the group to access this section.", &keyboard)
}

func (t *MenuT) showSubjects(ctx context.Context, query *tgbotapi.CallbackQuery, category string) {
	subjects, err := t.service.Subjects(ctx, category)
	if err != nil {
		log.Printf("Failed to load subjects for %s: %v", category, err)
		t.showDataError(query)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, subject := range subjects {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 "+subject, subjectData(category, subject)),
		))
	}
	rows = append(rows, backRow(cbMainMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("📚 *%s Section*", category), &keyboard)
}

func (t *MenuT) showModeChoice(query *tgbotapi.CallbackQuery, category, subject string) {
	t.cache.Update(query.From.ID, func(s *models.Session) {
		s.Category = category
		s.Subject = subject
		s.Mode = models.ModeNormal
	})

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📖 Chapter Wise", cbModeSingle),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔀 Custom Mix", cbModeMix),
		),
		backRow(gateData(category)),
	)

	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("📂 *%s > %s*", category, subject), &keyboard)
}

func (t *MenuT) showChapters(ctx context.Context, query *tgbotapi.CallbackQuery, multi bool) {
	session := t.cache.Session(query.From.ID)

	chapters, err := t.service.Chapters(ctx, session.Category, session.Subject)
	if err != nil {
		log.Printf("Failed to load chapters for %s/%s: %v", session.Category, session.Subject, err)
		t.showDataError(query)
		return
	}

	if len(chapters) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
		safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "❌ No chapters yet.", &keyboard)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, chapter := range chapters {
		if multi {
			icon := "⬜"
			if session.Selected[chapter.Name] {
				icon = "✅"
			}
			label := fmt.Sprintf("%s %s [%d]", icon, chapter.Name, chapter.QuestionCount)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, toggleData(chapter.Name)),
			))
		} else {
			label := fmt.Sprintf("📄 %s [%d]", chapter.Name, chapter.QuestionCount)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, singleData(chapter.Name)),
			))
		}
	}

	if multi {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("▶️ Start (%d)", len(session.Selected)), cbConfirmMix),
		))
	}
	rows = append(rows, cancelRow())

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("📖 *%s*", session.Subject), &keyboard)
}

func (t *MenuT) confirmMix(query *tgbotapi.CallbackQuery) {
	session := t.cache.Session(query.From.ID)
	if len(session.Selected) == 0 {
		answerAlert(t.bot, query.ID, "Select at least one!")
		return
	}

	t.cache.Update(query.From.ID, func(s *models.Session) {
		s.FinalChapters = s.SelectedChapters()
	})
	t.askTime(query)
}

func (t *MenuT) askTime(query *tgbotapi.CallbackQuery) {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, seconds := range quizTimes {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("⏱️ %ds", seconds), timeData(seconds)))
	}

	rows := pairRows(buttons)
	rows = append(rows, cancelRow())

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "⏱️ *Select Time:*", &keyboard)
}

func (t *MenuT) askCount(query *tgbotapi.CallbackQuery) {
	var buttons []tgbotapi.InlineKeyboardButton
	for _, count := range quizCounts {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("📝 %d Qs", count), countData(count)))
	}

	rows := pairRows(buttons)
	rows = append(rows, cancelRow())

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "🔢 *Question Count:*", &keyboard)
}

// showReviewMenu lists the (category, subject) buckets of the user's mistake
// ledger; picking one launches a review run over those questions directly.
func (t *MenuT) showReviewMenu(ctx context.Context, query *tgbotapi.CallbackQuery) {
	buckets, err := t.service.ReviewBuckets(ctx, query.From.ID)
	if err != nil {
		log.Printf("Failed to load mistake buckets for user %d: %v", query.From.ID, err)
		t.showDataError(query)
		return
	}

	if len(buckets) == 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
		safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
			"🎉 *No mistakes to review!*", &keyboard)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, bucket := range buckets {
		label := fmt.Sprintf("🔁 %s > %s [%d]", bucket.Category, bucket.Subject, bucket.Count)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, reviewData(bucket.Category, bucket.Subject)),
		))
	}
	rows = append(rows, backRow(cbMainMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID,
		"🔁 *Review Mistakes*\nPick a subject:", &keyboard)
}

func (t *MenuT) showHelp(chatID int64, query *tgbotapi.CallbackQuery) {
	text := "ℹ️ *How to Use:*\n1. Select Category > Subject > Mode.\n2. Start Quiz.\n3. Use /stop to end."

	if query != nil {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
		safeEditMessage(t.bot, chatID, query.Message.MessageID, text, &keyboard)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *MenuT) showSettings(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Stats", cbViewStats),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✋ Request Admin", cbRequestAdmin),
		),
	}

	if t.service.IsAdmin(ctx, userID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("♻️ Reset My Stats", cbResetStats),
		))
	}
	if t.service.IsOwner(userID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add Admin", cbAddAdmin),
		))
	}
	rows = append(rows, backRow(cbMainMenu))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "⚙️ *Settings*", &keyboard)
}

func (t *MenuT) showStats(ctx context.Context, query *tgbotapi.CallbackQuery) {
	text, err := t.service.StatsText(ctx, query.From.ID)
	if err != nil {
		log.Printf("Failed to get stats for user %d: %v", query.From.ID, err)
		text = "❌ Failed to load stats."
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbSettings))
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, text, &keyboard)
}

func (t *MenuT) resetStats(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if !t.service.IsAdmin(ctx, query.From.ID) {
		answerAlert(t.bot, query.ID, "⛔ Access Denied!")
		return
	}

	if err := t.service.ResetStats(ctx, query.From.ID); err != nil {
		log.Printf("Failed to reset stats for user %d: %v", query.From.ID, err)
		answerAlert(t.bot, query.ID, "❌ Reset failed.")
		return
	}

	answerAlert(t.bot, query.ID, "♻️ Stats cleared.")
}

func (t *MenuT) requestAdmin(query *tgbotapi.CallbackQuery) {
	msg := tgbotapi.NewMessage(t.service.OwnerID(),
		fmt.Sprintf("🔔 *Admin Request*\nID: `%d`", query.From.ID))
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)

	answerAlert(t.bot, query.ID, "Sent!")
}

func (t *MenuT) showDataError(query *tgbotapi.CallbackQuery) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(backRow(cbMainMenu))
	safeEditMessage(t.bot, query.Message.Chat.ID, query.Message.MessageID, "❌ Data Error.", &keyboard)
}

func backRow(data string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", data),
	)
}

func cancelRow() []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Cancel", cbMainMenu),
	)
}

func pairRows(buttons []tgbotapi.InlineKeyboardButton) [][]tgbotapi.InlineKeyboardButton {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		if i+1 < len(buttons) {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons[i], buttons[i+1]))
		} else {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons[i]))
		}
	}
	return rows
}
