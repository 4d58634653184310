package main

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/mazechase/internal/core"
	"github.com/vovakirdan/mazechase/internal/games/mazechase"
	"github.com/vovakirdan/mazechase/internal/games/mazechase/engine"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	mazechase.SetConfigPath("")
	if err := mazechase.SetDifficultyPreset(""); err != nil {
		t.Fatal(err)
	}
}

func testOptions(seed int64) simOptions {
	return simOptions{Ticks: 1500, Seed: seed, TickRate: 60, TurnEvery: 30, Width: 80, Height: 40}
}

func TestParseScript(t *testing.T) {
	tests := []struct {
		in      string
		want    []engine.Direction
		wantErr bool
	}{
		{"", nil, false},
		{"  ", nil, false},
		{"left", []engine.Direction{engine.DirLeft}, false},
		{"u, R,down,l", []engine.Direction{engine.DirUp, engine.DirRight, engine.DirDown, engine.DirLeft}, false},
		{"left,sideways", nil, true},
		{"up,,down", nil, true},
	}

	for _, tt := range tests {
		got, err := parseScript(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseScript(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseScript(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	isolateConfig(t)
	quiet := log.New(io.Discard)

	_, a, err := simulate(testOptions(99), quiet)
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := simulate(testOptions(99), quiet)
	if err != nil {
		t.Fatal(err)
	}

	a.RunID, b.RunID = "", ""
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed, different runs:\n%+v\n%+v", a, b)
	}
	if a.Frames == 0 || a.Tick == 0 {
		t.Errorf("nothing simulated: %+v", a)
	}
}

func TestSimulateAutopilotEats(t *testing.T) {
	isolateConfig(t)
	_, sum, err := simulate(testOptions(3), log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Events["dot_eaten"] == 0 || sum.State.Score == 0 {
		t.Errorf("autopilot ate nothing: %+v", sum)
	}
}

func TestSimulateScript(t *testing.T) {
	isolateConfig(t)
	opts := testOptions(5)
	opts.Script = []engine.Direction{engine.DirLeft, engine.DirRight}
	opts.Ticks = 200

	_, sum, err := simulate(opts, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Frames > opts.Ticks {
		t.Errorf("Frames = %d, want at most %d", sum.Frames, opts.Ticks)
	}
	if sum.Events["dot_eaten"] == 0 {
		t.Errorf("scripted player ate nothing: %+v", sum.Events)
	}
}

func TestSimulateLogsRun(t *testing.T) {
	isolateConfig(t)
	var buf bytes.Buffer
	opts := testOptions(1)
	opts.Ticks = 10

	if _, _, err := simulate(opts, log.New(&buf)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "run started") {
		t.Errorf("log lacks run start:\n%s", buf.String())
	}
}

func TestPilotStartsAndAdvances(t *testing.T) {
	p := newPilot(1, nil, 10)
	for _, st := range []engine.State{engine.StateIdle, engine.StateLevelComplete} {
		var snap mazechase.Snapshot
		snap.State = st
		if f := p.next(snap); !f.Has(core.ActionConfirm) {
			t.Errorf("state %v: pilot did not confirm", st)
		}
	}
	var over mazechase.Snapshot
	over.State = engine.StateGameOver
	if f := p.next(over); len(f.Actions) != 0 {
		t.Errorf("pilot acted after game over: %v", f.Actions)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, simSummary{
		RunID:  "r1",
		Seed:   4,
		Frames: 10,
		Tick:   9,
		Events: map[string]int{"power_pellet": 1, "dot_eaten": 3},
	})
	out := buf.String()
	if !strings.Contains(out, "seed:       4") {
		t.Errorf("summary lacks seed:\n%s", out)
	}
	if strings.Index(out, "dot_eaten") > strings.Index(out, "power_pellet") {
		t.Errorf("events not sorted:\n%s", out)
	}
}

func TestGameFlagsShared(t *testing.T) {
	for _, cmd := range []*cobra.Command{playCmd, simCmd} {
		for _, name := range []string{"config", "difficulty"} {
			if cmd.Flags().Lookup(name) == nil {
				t.Errorf("%s lacks --%s", cmd.Name(), name)
			}
		}
	}
}

func TestSimRejectsUnknownDifficulty(t *testing.T) {
	isolateConfig(t)
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })
	flagDifficulty = "nightmare"

	err := runSim(simCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
		t.Errorf("runSim error = %v, want unknown difficulty", err)
	}
}
