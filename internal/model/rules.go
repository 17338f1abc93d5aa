package model

import "strings"

// RuleVariant selects how many shots a player gets each turn
type RuleVariant string

const (
	RuleDefault RuleVariant = "default" // One shot per turn
	RuleFury    RuleVariant = "fury"    // One shot per own ship still afloat
	RuleCharge  RuleVariant = "charge"  // One shot plus one per enemy ship sunk
)

// Difficulty selects the computer's targeting strategy
type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ValidRules returns all rule variants
func ValidRules() []RuleVariant {
	return []RuleVariant{RuleDefault, RuleFury, RuleCharge}
}

// ValidDifficulties returns all difficulty levels
func ValidDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyHard}
}

// ParseRule converts a case-insensitive name to a RuleVariant. Empty means default.
func ParseRule(s string) (RuleVariant, error) {
	name := RuleVariant(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return RuleDefault, nil
	}
	for _, r := range ValidRules() {
		if r == name {
			return r, nil
		}
	}
	return "", ErrUnknownRule
}

// ParseDifficulty converts a case-insensitive name to a Difficulty. Empty means easy.
func ParseDifficulty(s string) (Difficulty, error) {
	name := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return DifficultyEasy, nil
	}
	for _, d := range ValidDifficulties() {
		if d == name {
			return d, nil
		}
	}
	return "", ErrUnknownDifficulty
}

// DisplayName returns a human-readable label for a rule
func (r RuleVariant) DisplayName() string {
	switch r {
	case RuleDefault:
		return "Default"
	case RuleFury:
		return "Fury"
	case RuleCharge:
		return "Charge"
	default:
		return string(r)
	}
}

// Description explains the rule in one line
func (r RuleVariant) Description() string {
	switch r {
	case RuleDefault:
		return "one shot per turn"
	case RuleFury:
		return "one shot for each of your ships still afloat"
	case RuleCharge:
		return "one shot, plus one for each enemy ship you have sunk"
	default:
		return ""
	}
}

// DisplayName returns a human-readable label for a difficulty
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Description explains the computer's behaviour at this difficulty
func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "fires at random unshot cells"
	case DifficultyHard:
		return "hunts on a checkerboard and probes around every hit"
	default:
		return ""
	}
}
