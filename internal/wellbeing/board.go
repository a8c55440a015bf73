package wellbeing

// Board is the stateful dashboard: three independent sources plus the month
// cursor used for diary navigation.
type Board struct {
	month Month
	user  Source[*User]
	test  Source[*BurnoutTestResult]
	diary Source[[]MoodEntry]
	seq   uint64
}

// DiaryRequest identifies one diary fetch. Seq grows with every GoTo, so two
// fetches of the same month are still told apart.
type DiaryRequest struct {
	Month Month
	Seq   uint64
}

// NewBoard starts a board on month with every source idle.
func NewBoard(month Month) *Board {
	return &Board{month: month}
}

// Month is the month currently displayed.
func (b *Board) Month() Month {
	return b.month
}

// User returns the current user source.
func (b *Board) User() Source[*User] {
	return b.user
}

// Test returns the latest test source.
func (b *Board) Test() Source[*BurnoutTestResult] {
	return b.test
}

// Diary returns the diary source of the displayed month.
func (b *Board) Diary() Source[[]MoodEntry] {
	return b.diary
}

// GoPrev moves to the previous month and returns it so the caller can fetch it.
func (b *Board) GoPrev() Month {
	return b.GoTo(b.month.Prev())
}

// GoNext moves to the next month and returns it so the caller can fetch it.
func (b *Board) GoNext() Month {
	return b.GoTo(b.month.Next())
}

// GoTo displays month and marks its diary as loading. Entries of the month
// left behind are dropped so they never render under the new heading.
func (b *Board) GoTo(month Month) Month {
	if month != b.month {
		b.diary.Data = nil
	}
	b.month = month
	b.seq++
	b.diary.Begin()
	return month
}

// DiaryRequest is the diary fetch the board is currently waiting for.
func (b *Board) DiaryRequest() DiaryRequest {
	return DiaryRequest{Month: b.month, Seq: b.seq}
}

// BeginUser marks the user source as loading.
func (b *Board) BeginUser() {
	b.user.Begin()
}

// BeginTest marks the latest test source as loading.
func (b *Board) BeginTest() {
	b.test.Begin()
}

// ResolveUser records the current user fetch.
func (b *Board) ResolveUser(user *User, err error) {
	b.user.Resolve(user, err)
}

// ResolveTest records the latest test fetch.
func (b *Board) ResolveTest(test *BurnoutTestResult, err error) {
	b.test.Resolve(test, err)
}

// ResolveDiary records a diary fetch for month. Results for a month that is
// no longer displayed are discarded and false is returned.
func (b *Board) ResolveDiary(month Month, entries []MoodEntry, err error) bool {
	if month != b.month {
		return false
	}
	b.diary.Resolve(entries, err)
	return true
}

// ResolveDiaryRequest records a diary fetch started for req. Any result other
// than the latest request is discarded, including an older fetch of the
// displayed month, and false is returned.
func (b *Board) ResolveDiaryRequest(req DiaryRequest, entries []MoodEntry, err error) bool {
	if req != b.DiaryRequest() {
		return false
	}
	b.diary.Resolve(entries, err)
	return true
}

// PersistedScore is the burnout score stored on the user record, if any.
func (b *Board) PersistedScore() *int {
	if b.user.Data == nil {
		return nil
	}
	return b.user.Data.BurnoutScore
}

// View composes the current state into a View.
func (b *Board) View() View {
	grid := BuildMonthGrid(b.month, b.diary.Data)
	return Compose(b.PersistedScore(), b.test.Data, grid)
}
