package mines

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.DebugLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// scriptedSource replays fixed draws, cycling when it runs out.
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.draws[s.calls%len(s.draws)] % n
	s.calls++
	return v
}

// snapshotWithBombs returns a compact snapshot of zeros with a 9 at every
// given (x, y).
func snapshotWithBombs(bombs ...[2]int) string {
	b := []byte(strings.Repeat("0", SnapshotLength))
	for _, p := range bombs {
		b[p[0]*Columns+p[1]] = '9'
	}
	return string(b)
}
