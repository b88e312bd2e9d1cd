package models

import "sort"

// Session accumulates a user's menu selections between screens. Fields are
// written in selection order (category, subject, chapters, time, count) and
// consumed at quiz launch.
type Session struct {
	UserID   int64
	Category string
	Subject  string

	Multi         bool
	Selected      map[string]bool
	FinalChapters []string
	TimeLimit     int
	Count         int
	Mode          QuizMode

	VerifiedGates map[string]bool

	// admin input flow
	AwaitingChapterName bool
	AwaitingAdminID     bool
	AwaitingInterval    bool
	AwaitingBroadcast   bool
	AdminCategory       string
	AdminSubject        string
	AdminChapter        string
	IngestActive        bool
	TargetGroup         int64
}

func NewSession(userID int64) *Session {
	return &Session{
		UserID:        userID,
		Selected:      make(map[string]bool),
		VerifiedGates: make(map[string]bool),
	}
}

// ToggleChapter flips chapter membership in the multi-select set.
// Toggling twice restores the prior state.
func (s *Session) ToggleChapter(name string) {
	if s.Selected == nil {
		s.Selected = make(map[string]bool)
	}
	if s.Selected[name] {
		delete(s.Selected, name)
	} else {
		s.Selected[name] = true
	}
}

func (s *Session) SelectedChapters() []string {
	chapters := make([]string, 0, len(s.Selected))
	for name := range s.Selected {
		chapters = append(chapters, name)
	}
	sort.Strings(chapters)
	return chapters
}

// ClearQuizSelection drops every quiz-selection field so a finished or
// launched quiz cannot leak chapters into the next one.
func (s *Session) ClearQuizSelection() {
	s.Category = ""
	s.Subject = ""
	s.Multi = false
	s.Selected = make(map[string]bool)
	s.FinalChapters = nil
	s.TimeLimit = 0
	s.Count = 0
	s.Mode = ModeNormal
}

// ClearPendingInput resets every awaiting-text flag of the admin flow.
func (s *Session) ClearPendingInput() {
	s.AwaitingChapterName = false
	s.AwaitingAdminID = false
	s.AwaitingInterval = false
	s.AwaitingBroadcast = false
	s.IngestActive = false
}
