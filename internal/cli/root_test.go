package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go/internal/factory"
	"github.com/mcoot/battleship-go/internal/model"
)

var configKeys = []string{
	"BATTLESHIP_RULE",
	"BATTLESHIP_DIFFICULTY",
	"BATTLESHIP_FIRST",
	"BATTLESHIP_SEED",
	"BATTLESHIP_LOG_FILE",
	"BATTLESHIP_LOG_LEVEL",
	"BATTLESHIP_OUTPUT",
}

type RootSuite struct {
	suite.Suite
	played *factory.App
}

func TestRootSuite(t *testing.T) {
	suite.Run(t, new(RootSuite))
}

func (s *RootSuite) SetupTest() {
	for _, key := range configKeys {
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}

	s.played = nil
	original := runGame
	runGame = func(app *factory.App, logger *slog.Logger) error {
		s.played = app
		return nil
	}
	s.T().Cleanup(func() { runGame = original })
}

func (s *RootSuite) execute(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// rules tests

func (s *RootSuite) TestRulesText() {
	out, err := s.execute("rules")
	s.Require().NoError(err)
	s.Contains(out, "Rules:")
	s.Contains(out, "fury")
	s.Contains(out, "charge")
	s.Contains(out, "Difficulties:")
	s.Contains(out, "hard")
	s.Nil(s.played)
}

func (s *RootSuite) TestRulesJSON() {
	out, err := s.execute("rules", "-o", "json")
	s.Require().NoError(err)

	var catalog Catalog
	s.Require().NoError(json.Unmarshal([]byte(out), &catalog))
	s.Len(catalog.Rules, 3)
	s.Len(catalog.Difficulties, 2)
	s.Equal("default", catalog.Rules[0].Name)
	s.Equal("Hard", catalog.Difficulties[1].DisplayName)
}

// play tests

func (s *RootSuite) TestPlayWithFlags() {
	out, err := s.execute("-r", "FURY", "-d", "hard", "--first", "computer", "--seed", "42")
	s.Require().NoError(err)
	s.Require().NotNil(s.played)

	snap := s.played.Game.Snapshot()
	s.Equal(model.RuleFury, snap.Rule)
	s.Equal(model.DifficultyHard, snap.Difficulty)
	s.Equal(model.PhaseAwaitingComputerShots, snap.Turn.Phase)
	s.Equal(uint64(42), s.played.Seed)

	s.Contains(out, "seed 42")
	s.Contains(out, "Result: abandoned")
}

func (s *RootSuite) TestPlayDefaults() {
	_, err := s.execute()
	s.Require().NoError(err)
	s.Require().NotNil(s.played)

	snap := s.played.Game.Snapshot()
	s.Equal(model.RuleDefault, snap.Rule)
	s.Equal(model.DifficultyEasy, snap.Difficulty)
	s.Equal(model.PhaseAwaitingHumanShots, snap.Turn.Phase)
	s.NotZero(s.played.Seed)
}

func (s *RootSuite) TestPlaySummaryJSON() {
	out, err := s.execute("--seed", "7", "-o", "json")
	s.Require().NoError(err)

	var summary GameSummary
	s.Require().NoError(json.Unmarshal([]byte(out), &summary))
	s.Equal(uint64(7), summary.Seed)
	s.False(summary.Finished)
	s.Equal(1, summary.Rounds)
	s.Len(summary.Human.Fleet, len(model.Templates()))
}

func (s *RootSuite) TestPlayUnknownRule() {
	_, err := s.execute("-r", "blitz")
	s.ErrorIs(err, model.ErrUnknownRule)
	s.Nil(s.played)
}

func (s *RootSuite) TestPlayUnknownDifficulty() {
	_, err := s.execute("-d", "impossible")
	s.ErrorIs(err, model.ErrUnknownDifficulty)
	s.Nil(s.played)
}

func (s *RootSuite) TestRejectsArguments() {
	_, err := s.execute("fury")
	s.Error(err)
	s.Nil(s.played)
}

// config tests

func (s *RootSuite) TestEnvironmentDefaults() {
	s.T().Setenv("BATTLESHIP_RULE", "charge")
	s.T().Setenv("BATTLESHIP_DIFFICULTY", "hard")

	_, err := s.execute()
	s.Require().NoError(err)
	s.Equal(model.RuleCharge, s.played.Game.Snapshot().Rule)
	s.Equal(model.DifficultyHard, s.played.Game.Snapshot().Difficulty)
}

func (s *RootSuite) TestFlagsOverrideEnvironment() {
	s.T().Setenv("BATTLESHIP_RULE", "charge")

	_, err := s.execute("--rule", "fury")
	s.Require().NoError(err)
	s.Equal(model.RuleFury, s.played.Game.Snapshot().Rule)
}

func (s *RootSuite) TestInvalidEnvironment() {
	s.T().Setenv("BATTLESHIP_SEED", "not-a-number")

	_, err := s.execute()
	s.Error(err)
	s.Nil(s.played)
}

func (s *RootSuite) TestLoadConfigFromDotenv() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("BATTLESHIP_DIFFICULTY=hard\nBATTLESHIP_SEED=99\n"), 0o600))

	cfg, err := LoadConfig(path)
	s.Require().NoError(err)
	s.Equal("hard", cfg.Difficulty)
	s.Equal(uint64(99), cfg.Seed)
	s.Equal("default", cfg.Rule)
}

func (s *RootSuite) TestLoadConfigMissingDotenv() {
	cfg, err := LoadConfig(filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal("easy", cfg.Difficulty)
	s.Equal("text", cfg.Output)
	s.Zero(cfg.Seed)
}

func (s *RootSuite) TestLogFile() {
	path := filepath.Join(s.T().TempDir(), "battleship.log")

	_, err := s.execute("--log-file", path, "--log-level", "debug")
	s.Require().NoError(err)

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	s.Contains(string(data), `"msg":"game created"`)
	s.Contains(string(data), `"component":"game"`)
}

func (s *RootSuite) TestInvalidLogLevel() {
	path := filepath.Join(s.T().TempDir(), "battleship.log")

	_, err := s.execute("--log-file", path, "--log-level", "loud")
	s.Error(err)
	s.Nil(s.played)
}

// error output tests

func (s *RootSuite) TestErrorPrintedAsText() {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"-r", "blitz"})
	var errOut bytes.Buffer

	err := execute(cmd, &errOut)
	s.ErrorIs(err, model.ErrUnknownRule)
	s.Contains(errOut.String(), "Error: new game: rule \"blitz\"")
	s.Nil(s.played)
}

func (s *RootSuite) TestErrorPrintedAsJSON() {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"-d", "impossible", "-o", "json"})
	var errOut bytes.Buffer

	err := execute(cmd, &errOut)
	s.ErrorIs(err, model.ErrUnknownDifficulty)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(errOut.Bytes(), &body))
	s.Contains(body.Error.Message, "unknown difficulty")
}
