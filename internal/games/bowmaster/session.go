package bowmaster

// Side identifies one of the two duelists.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

// String returns a display name for the side.
func (s Side) String() string {
	if s == SideEnemy {
		return "Enemy"
	}
	return "Player"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideEnemy {
		return SidePlayer
	}
	return SideEnemy
}

// Session is the state of one run from the menu to an end screen. The game
// owns it and its entities share it by pointer.
type Session struct {
	Score   int
	Level   int // 1-based
	Starter Side
	Turn    Side
	Shots   [2]int // indexed by Side
	Hits    [2]int
}

func newSession() *Session {
	return &Session{Level: 1}
}

// recordShot counts a shot and its outcome, scoring player hits.
func (s *Session) recordShot(shooter Side, hit bool, hitScore int) {
	s.Shots[shooter]++
	if !hit {
		return
	}
	s.Hits[shooter]++
	if shooter == SidePlayer {
		s.Score += hitScore
	}
}

// completeLevel scores a cleared level and advances to the next one.
// It reports whether a next level exists.
func (s *Session) completeLevel(levelScore, levels int) bool {
	s.Score += levelScore
	if s.Level >= levels {
		return false
	}
	s.Level++
	return true
}

// Accuracy returns the player's hit ratio, 0 before the first shot.
func (s *Session) Accuracy() float64 {
	if s.Shots[SidePlayer] == 0 {
		return 0
	}
	return float64(s.Hits[SidePlayer]) / float64(s.Shots[SidePlayer])
}
