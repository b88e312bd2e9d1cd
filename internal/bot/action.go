package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// ActionKind enumerates every callback button the bot renders. Callback data
// is decoded into an Action exactly once, at the update boundary, and
// dispatched by kind; handlers never look at raw prefixes.
type ActionKind int

const (
	ActUnknown ActionKind = iota
	ActMainMenu
	ActHelp
	ActSettings
	ActViewStats
	ActResetStats
	ActRequestAdmin
	ActRecheckMain
	ActGate
	ActRecheckGate
	ActSelectSubject
	ActModeSingle
	ActModeMix
	ActToggleChapter
	ActConfirmMix
	ActSingleChapter
	ActPickTime
	ActPickCount
	ActReviewMenu
	ActReviewSubject
	ActAdminMenu
	ActAdminCategory
	ActAdminSubject
	ActAdminChapter
	ActAdminNewChapter
	ActAdminDeleteMenu
	ActAdminDeleteChapter
	ActAdminGroups
	ActAdminGroup
	ActAdminGroupPower
	ActAdminGroupInterval
	ActAddAdminPrompt
	ActBroadcastPrompt
)

type Action struct {
	Kind     ActionKind
	Category string
	Subject  string
	Chapter  string
	GroupID  int64
	Value    int
}

const (
	cbMainMenu      = "menu"
	cbHelp          = "help"
	cbSettings      = "settings"
	cbViewStats     = "stats"
	cbResetStats    = "stats_reset"
	cbRequestAdmin  = "req_admin"
	cbRecheckMain   = "recheck_main"
	cbGate          = "gate"
	cbRecheckGate   = "regate"
	cbSubject       = "sub"
	cbModeSingle    = "mode_single"
	cbModeMix       = "mode_mix"
	cbToggle        = "tgl"
	cbConfirmMix    = "mix_go"
	cbSingle        = "chap"
	cbTime          = "time"
	cbCount         = "count"
	cbReviewMenu    = "review"
	cbReviewSubject = "rev"
	cbAdminMenu     = "adm"
	cbAdminCat      = "adm_cat"
	cbAdminSub      = "adm_sub"
	cbAdminChap     = "adm_chap"
	cbAdminNewChap  = "adm_new_chap"
	cbAdminDelMenu  = "adm_del_menu"
	cbAdminDelete   = "adm_del"
	cbAdminGroups   = "adm_groups"
	cbAdminGroup    = "adm_grp"
	cbAdminPower    = "adm_pwr"
	cbAdminInterval = "adm_int"
	cbAddAdmin      = "adm_add"
	cbBroadcast     = "adm_cast"
)

func gateData(category string) string          { return cbGate + ":" + category }
func recheckGateData(category string) string   { return cbRecheckGate + ":" + category }
func subjectData(category, sub string) string  { return cbSubject + ":" + category + ":" + sub }
func toggleData(chapter string) string         { return cbToggle + ":" + chapter }
func singleData(chapter string) string         { return cbSingle + ":" + chapter }
func timeData(seconds int) string              { return fmt.Sprintf("%s:%d", cbTime, seconds) }
func countData(count int) string               { return fmt.Sprintf("%s:%d", cbCount, count) }
func reviewData(category, sub string) string   { return cbReviewSubject + ":" + category + ":" + sub }
func adminCatData(category string) string      { return cbAdminCat + ":" + category }
func adminSubData(sub string) string           { return cbAdminSub + ":" + sub }
func adminChapData(chapter string) string      { return cbAdminChap + ":" + chapter }
func adminDeleteData(chapter string) string    { return cbAdminDelete + ":" + chapter }
func adminGroupData(chatID int64) string       { return fmt.Sprintf("%s:%d", cbAdminGroup, chatID) }
func adminPowerData(chatID int64) string       { return fmt.Sprintf("%s:%d", cbAdminPower, chatID) }

// ParseAction decodes callback data. Unknown or malformed data yields
// ActUnknown instead of an error; the dispatcher just logs it.
func ParseAction(data string) Action {
	verb, payload := data, ""
	if i := strings.Index(data, ":"); i >= 0 {
		verb, payload = data[:i], data[i+1:]
	}

	switch verb {
	case cbMainMenu:
		return Action{Kind: ActMainMenu}
	case cbHelp:
		return Action{Kind: ActHelp}
	case cbSettings:
		return Action{Kind: ActSettings}
	case cbViewStats:
		return Action{Kind: ActViewStats}
	case cbResetStats:
		return Action{Kind: ActResetStats}
	case cbRequestAdmin:
		return Action{Kind: ActRequestAdmin}
	case cbRecheckMain:
		return Action{Kind: ActRecheckMain}
	case cbGate:
		return Action{Kind: ActGate, Category: payload}
	case cbRecheckGate:
		return Action{Kind: ActRecheckGate, Category: payload}
	case cbSubject:
		category, subject, ok := splitPair(payload)
		if !ok {
			return Action{}
		}
		return Action{Kind: ActSelectSubject, Category: category, Subject: subject}
	case cbModeSingle:
		return Action{Kind: ActModeSingle}
	case cbModeMix:
		return Action{Kind: ActModeMix}
	case cbToggle:
		return Action{Kind: ActToggleChapter, Chapter: payload}
	case cbConfirmMix:
		return Action{Kind: ActConfirmMix}
	case cbSingle:
		return Action{Kind: ActSingleChapter, Chapter: payload}
	case cbTime:
		return intAction(ActPickTime, payload)
	case cbCount:
		return intAction(ActPickCount, payload)
	case cbReviewMenu:
		return Action{Kind: ActReviewMenu}
	case cbReviewSubject:
		category, subject, ok := splitPair(payload)
		if !ok {
			return Action{}
		}
		return Action{Kind: ActReviewSubject, Category: category, Subject: subject}
	case cbAdminMenu:
		return Action{Kind: ActAdminMenu}
	case cbAdminCat:
		return Action{Kind: ActAdminCategory, Category: payload}
	case cbAdminSub:
		return Action{Kind: ActAdminSubject, Subject: payload}
	case cbAdminChap:
		return Action{Kind: ActAdminChapter, Chapter: payload}
	case cbAdminNewChap:
		return Action{Kind: ActAdminNewChapter}
	case cbAdminDelMenu:
		return Action{Kind: ActAdminDeleteMenu}
	case cbAdminDelete:
		return Action{Kind: ActAdminDeleteChapter, Chapter: payload}
	case cbAdminGroups:
		return Action{Kind: ActAdminGroups}
	case cbAdminGroup:
		return groupAction(ActAdminGroup, payload)
	case cbAdminPower:
		return groupAction(ActAdminGroupPower, payload)
	case cbAdminInterval:
		return Action{Kind: ActAdminGroupInterval}
	case cbAddAdmin:
		return Action{Kind: ActAddAdminPrompt}
	case cbBroadcast:
		return Action{Kind: ActBroadcastPrompt}
	default:
		return Action{}
	}
}

func splitPair(payload string) (string, string, bool) {
	parts := strings.SplitN(payload, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func intAction(kind ActionKind, payload string) Action {
	v, err := strconv.Atoi(payload)
	if err != nil || v <= 0 {
		return Action{}
	}
	return Action{Kind: kind, Value: v}
}

func groupAction(kind ActionKind, payload string) Action {
	id, err := strconv.ParseInt(payload, 10, 64)
	if err != nil {
		return Action{}
	}
	return Action{Kind: kind, GroupID: id}
}
