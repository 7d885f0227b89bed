package game

import "testing"

func TestDispatch(t *testing.T) {
	g := New()

	steps := []struct {
		cmd     Command
		changed bool
		step    int
		length  int
	}{
		{Move(4), true, 1, 2},
		{Move(4), false, 1, 2},
		{Move(0), true, 2, 3},
		{Jump(0), true, 0, 3},
		{Jump(7), false, 0, 3},
		{Move(8), true, 1, 2},
		{ResetCurrentCommand(), true, 1, 2},
		{NewGameCommand(), true, 0, 1},
		{Command{Kind: CommandKind(99)}, false, 0, 1},
	}

	for i, s := range steps {
		if got := g.Dispatch(s.cmd); got != s.changed {
			t.Errorf("step %d: Dispatch(%s) = %v, want %v", i, s.cmd, got, s.changed)
		}
		if g.Step() != s.step || g.Len() != s.length {
			t.Errorf("step %d: after %s step=%d len=%d, want %d/%d",
				i, s.cmd, g.Step(), g.Len(), s.step, s.length)
		}
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{Move(3), "move(3)"},
		{Jump(2), "jump(2)"},
		{NewGameCommand(), "new-game"},
		{ResetCurrentCommand(), "reset-current"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveAt(t *testing.T) {
	g := New()
	play(t, g, 4, 0, 5)

	if _, ok := g.MoveAt(0); ok {
		t.Error("game start has no move")
	}
	if _, ok := g.MoveAt(4); ok {
		t.Error("step past history has no move")
	}

	want := []MoveInfo{
		{Step: 1, Player: PlayerX, Index: 4},
		{Step: 2, Player: PlayerO, Index: 0},
		{Step: 3, Player: PlayerX, Index: 5},
	}
	for _, w := range want {
		got, ok := g.MoveAt(w.Step)
		if !ok || got != w {
			t.Errorf("MoveAt(%d) = %+v %v, want %+v", w.Step, got, ok, w)
		}
	}

	if label := want[2].Label(); label != "#3 X r2c3" {
		t.Errorf("Label() = %q", label)
	}
}

func TestMoveAtAfterReset(t *testing.T) {
	g := New()
	play(t, g, 4, 0)
	g.ResetCurrent()

	if _, ok := g.MoveAt(2); ok {
		t.Error("a cleared snapshot has no single move")
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	play(t, g, 0, 3, 1, 4, 2)

	s := g.Snapshot()
	if s.Win == nil || s.Win.Player != PlayerX {
		t.Fatalf("snapshot win = %+v", s.Win)
	}
	if !s.Locked || s.Draw {
		t.Errorf("locked=%v draw=%v", s.Locked, s.Draw)
	}
	if s.Step != 5 || s.HistoryLen != 6 {
		t.Errorf("step=%d len=%d", s.Step, s.HistoryLen)
	}
	if s.Status != "Winner: X" || !s.CanReset {
		t.Errorf("status=%q canReset=%v", s.Status, s.CanReset)
	}

	g.JumpTo(0)
	s = g.Snapshot()
	if s.Win != nil || s.Locked || s.NextPlayer != PlayerX {
		t.Errorf("snapshot at start = %+v", s)
	}
	if s.CanReset {
		t.Error("empty board at step 0 has nothing to reset")
	}
}
