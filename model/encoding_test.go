package model

import "testing"

func TestEncodeScore(t *testing.T) {
	if got := EncodeScore(7, "Feeling okay"); got != "SCORE:7|Feeling okay" {
		t.Errorf("EncodeScore with note = %q", got)
	}
	if got := EncodeScore(3, ""); got != "SCORE:3" {
		t.Errorf("EncodeScore without note = %q, want no trailing delimiter", got)
	}
}

func TestDecodeScore(t *testing.T) {
	score, note, ok := DecodeScore("SCORE:7|Feeling okay")
	if !ok || score != 7 || note != "Feeling okay" {
		t.Errorf("DecodeScore = (%d, %q, %v)", score, note, ok)
	}

	score, note, ok = DecodeScore("SCORE:10|note with | pipes")
	if !ok || score != 10 || note != "note with | pipes" {
		t.Errorf("DecodeScore with embedded pipe = (%d, %q, %v)", score, note, ok)
	}
}

func TestDecodeScoreBare(t *testing.T) {
	score, note, ok := DecodeScore("SCORE:5")
	if !ok || score != 5 || note != "" {
		t.Errorf("DecodeScore bare = (%d, %q, %v)", score, note, ok)
	}
}

func TestDecodeScoreNoPrefix(t *testing.T) {
	for _, raw := range []string{"just a note", "", "SCORE:|missing digits", "prefix SCORE:3"} {
		score, note, ok := DecodeScore(raw)
		if ok {
			t.Errorf("DecodeScore(%q) ok = true", raw)
		}
		if score != 0 || note != raw {
			t.Errorf("DecodeScore(%q) = (%d, %q), want note unchanged", raw, score, note)
		}
	}
}

func TestEncodeDecodeDifficulty(t *testing.T) {
	encoded := EncodeDifficulty(3, "Write report")
	if encoded != "DIFFICULTY:3|Write report" {
		t.Errorf("EncodeDifficulty = %q", encoded)
	}

	difficulty, description, ok := DecodeDifficulty(encoded)
	if !ok || difficulty != 3 || description != "Write report" {
		t.Errorf("DecodeDifficulty = (%d, %q, %v)", difficulty, description, ok)
	}

	if got := EncodeDifficulty(5, ""); got != "DIFFICULTY:5" {
		t.Errorf("EncodeDifficulty without description = %q", got)
	}
}

func TestDecodeDifficultyPlainDescription(t *testing.T) {
	difficulty, description, ok := DecodeDifficulty("just a task")
	if ok || difficulty != 0 || description != "just a task" {
		t.Errorf("DecodeDifficulty plain = (%d, %q, %v)", difficulty, description, ok)
	}
}
