package tennis

import (
	"strings"
	"testing"
)

func TestStart(t *testing.T) {
	tr := Start(StateIdle)
	if tr.Next != StatePlaying || !tr.Restart {
		t.Errorf("Start(idle) = %+v, expected playing with restart", tr)
	}

	tr = Start(StatePlaying)
	if tr.Next != StatePlaying || tr.Restart || tr.Message != "" {
		t.Errorf("Start(playing) = %+v, expected no-op", tr)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name          string
		board         Scoreboard
		scorer        Side
		expectedLeft  int
		expectedRight int
		won           bool
		prefix        string
	}{
		{"left scores", Scoreboard{Winning: 5}, SideLeft, 1, 0, false, "Red Team Scores!"},
		{"right scores", Scoreboard{Left: 2, Right: 1, Winning: 5}, SideRight, 2, 2, false, "Blue Team Scores!"},
		{"left wins", Scoreboard{Left: 4, Right: 3, Winning: 5}, SideLeft, 0, 0, true, "Blue Team Wins!"},
		{"right wins", Scoreboard{Left: 1, Right: 4, Winning: 5}, SideRight, 0, 0, true, "Red Team Wins!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			board, tr := Score(tc.board, tc.scorer)

			if board.Left != tc.expectedLeft || board.Right != tc.expectedRight {
				t.Errorf("board = %d-%d, expected %d-%d", board.Left, board.Right, tc.expectedLeft, tc.expectedRight)
			}
			if board.Winning != tc.board.Winning {
				t.Errorf("winning score changed to %d", board.Winning)
			}
			if tr.Next != StateIdle || tr.Restart {
				t.Errorf("transition = %+v, expected idle without restart", tr)
			}
			if tr.Won != tc.won {
				t.Errorf("won = %v, expected %v", tr.Won, tc.won)
			}
			expected := tc.prefix + "\n\n" + RestartHint
			if tr.Message != expected {
				t.Errorf("message = %q, expected %q", tr.Message, expected)
			}
		})
	}
}

func TestScoreIncreasesByOneUntilWin(t *testing.T) {
	board := NewScoreboard()

	for i := 1; i < WinningScore; i++ {
		var tr Transition
		board, tr = Score(board, SideRight)
		if board.Right != i || board.Left != 0 {
			t.Fatalf("after %d points board = %d-%d", i, board.Left, board.Right)
		}
		if tr.Won {
			t.Fatalf("won after only %d points", i)
		}
	}

	board, tr := Score(board, SideRight)
	if !tr.Won || board.Left != 0 || board.Right != 0 {
		t.Errorf("expected a win and a reset, got %+v with %d-%d", tr, board.Left, board.Right)
	}
	if !strings.HasPrefix(tr.Message, "Red Team Wins!") {
		t.Errorf("message = %q", tr.Message)
	}
}

func TestWelcomeMessage(t *testing.T) {
	if WelcomeMessage != "Welcome to Tennis!\n\nPress space to restart or\nescape to exit." {
		t.Errorf("unexpected welcome message %q", WelcomeMessage)
	}
}
