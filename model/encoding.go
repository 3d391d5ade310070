package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// Numeric metadata rides inside free-text fields using a prefix convention
// kept for wire compatibility with existing clients: "SCORE:7|Feeling okay"
// in a mood note, "DIFFICULTY:3|Write report" in a task description. All
// encode/decode pairs live here so the convention exists in exactly one
// place.

var (
	scorePattern      = regexp.MustCompile(`^SCORE:(\d+)(?:\|(.+))?$`)
	difficultyPattern = regexp.MustCompile(`^DIFFICULTY:(\d+)(?:\|(.+))?$`)
)

// EncodeScore packs a 1-10 mood score into a note. A score with no note
// yields "SCORE:<n>" with no trailing delimiter.
func EncodeScore(score int, note string) string {
	if note == "" {
		return fmt.Sprintf("SCORE:%d", score)
	}
	return fmt.Sprintf("SCORE:%d|%s", score, note)
}

// DecodeScore extracts a packed score from a note. When the note carries no
// score prefix, ok is false and the note comes back unchanged.
func DecodeScore(note string) (score int, cleanNote string, ok bool) {
	m := scorePattern.FindStringSubmatch(note)
	if m == nil {
		return 0, note, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, note, false
	}
	return score, m[2], true
}

// EncodeDifficulty packs a 1-5 difficulty into a task description.
func EncodeDifficulty(difficulty int, description string) string {
	if description == "" {
		return fmt.Sprintf("DIFFICULTY:%d", difficulty)
	}
	return fmt.Sprintf("DIFFICULTY:%d|%s", difficulty, description)
}

// DecodeDifficulty extracts a packed difficulty from a task description.
func DecodeDifficulty(description string) (difficulty int, cleanDescription string, ok bool) {
	m := difficultyPattern.FindStringSubmatch(description)
	if m == nil {
		return 0, description, false
	}
	difficulty, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, description, false
	}
	return difficulty, m[2], true
}
