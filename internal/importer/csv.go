package importer

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// sessionHeaderRe matches: "Push Day";"2026-02-19 4:54 h";"1:02 hr"
	sessionHeaderRe = regexp.MustCompile(`^"(.+)";"(\d{4}-\d{2}-\d{2}\s+\d+:\d+)\s+h";"(.+)"$`)

	// exerciseHeaderRe matches: "1. Exercise Name · Equipment · 8 reps[· modifiers]"[;"warmup info"]
	exerciseHeaderRe = regexp.MustCompile(`^"(\d+)\.\s+(.+?)(?:\s+·\s+(\S.*?))?\s+·\s+(\d+)\s+reps(.*?)"(?:;"(.+)")?$`)

	// setDataRe matches: 1;115;8;1
	setDataRe = regexp.MustCompile(`^(\d+);(.+);(\d+);(.+)$`)

	// warmupRe matches: WU1 · 37,5 kg · 9 reps
	warmupRe = regexp.MustCompile(`WU(\d+)\s+·\s+(.+?)\s+kg\s+·\s+(\d+)\s+reps`)

	// columnHeaderRe matches: #;KG;REPS;RIR
	columnHeaderRe = regexp.MustCompile(`^#;KG;REPS;RIR$`)

	// durationRe matches: 1:02 hr
	durationRe = regexp.MustCompile(`(\d+):(\d+)`)
)

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Session is one training session from a CSV export.
type Session struct {
	Name      string
	Date      time.Time
	Duration  string
	Exercises []SessionExercise
}

// SessionExercise is one exercise block within a session.
type SessionExercise struct {
	Number     int
	Name       string
	Equipment  string
	TargetReps int
	Sets       []SessionSet
}

// SessionSet is one logged set. Weights are kilograms; bodyweight-plus
// sets record only the added load.
type SessionSet struct {
	Number           int
	WeightKg         float64
	IsBodyweightPlus bool
	Reps             int
	RIR              float64
	IsWarmup         bool
}

// ParseCSV reads a training-log CSV export and returns parsed sessions.
// Sessions are separated by blank lines; unknown lines are skipped.
func ParseCSV(r io.Reader) ([]Session, error) {
	scanner := bufio.NewScanner(r)
	var sessions []Session
	var current *Session
	var currentExercise *SessionExercise

	flushExercise := func() {
		if current != nil && currentExercise != nil {
			current.Exercises = append(current.Exercises, *currentExercise)
			currentExercise = nil
		}
	}
	flushSession := func() {
		if current != nil {
			flushExercise()
			sessions = append(sessions, *current)
			current = nil
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			flushSession()
			continue
		}
		if columnHeaderRe.MatchString(line) {
			continue
		}

		if m := sessionHeaderRe.FindStringSubmatch(line); m != nil {
			flushSession()
			date, err := parseSessionDate(m[2])
			if err != nil {
				return nil, fmt.Errorf("parsing session date %q: %w", m[2], err)
			}
			current = &Session{Name: m[1], Date: date, Duration: m[3]}
			continue
		}

		if m := exerciseHeaderRe.FindStringSubmatch(line); m != nil {
			if current == nil {
				return nil, fmt.Errorf("exercise without session: %q", line)
			}
			flushExercise()
			num, _ := strconv.Atoi(m[1])
			targetReps, _ := strconv.Atoi(m[4])
			currentExercise = &SessionExercise{
				Number:     num,
				Name:       strings.TrimSpace(m[2]),
				Equipment:  strings.TrimSpace(m[3]),
				TargetReps: targetReps,
			}
			if m[6] != "" {
				currentExercise.Sets = append(currentExercise.Sets, parseWarmups(m[6])...)
			}
			continue
		}

		if m := setDataRe.FindStringSubmatch(line); m != nil {
			if currentExercise == nil {
				return nil, fmt.Errorf("set data without exercise: %q", line)
			}
			setNum, _ := strconv.Atoi(m[1])
			weight, isBW := parseWeight(m[2])
			reps, _ := strconv.Atoi(m[3])
			currentExercise.Sets = append(currentExercise.Sets, SessionSet{
				Number:           setNum,
				WeightKg:         weight,
				IsBodyweightPlus: isBW,
				Reps:             reps,
				RIR:              parseEuropeanFloat(m[4]),
			})
			continue
		}

		// Notes and other metadata lines are not imported.
	}
	flushSession()

	return sessions, scanner.Err()
}

func parseSessionDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 3:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}

// parseWarmups extracts warmup sets from the warmup info string.
// Example: "WU1 · 37,5 kg · 9 reps<br>WU2 · 72,5 kg · 7 reps"
func parseWarmups(s string) []SessionSet {
	var sets []SessionSet
	for _, part := range strings.Split(s, "<br>") {
		m := warmupRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		num, _ := strconv.Atoi(m[1])
		weight, isBW := parseWeight(m[2])
		reps, _ := strconv.Atoi(m[3])
		sets = append(sets, SessionSet{
			Number:           num,
			WeightKg:         weight,
			IsBodyweightPlus: isBW,
			Reps:             reps,
			IsWarmup:         true,
		})
	}
	return sets
}

// parseWeight handles European decimals and bodyweight-plus notation.
// "+35" -> (35, true), "102,5" -> (102.5, false), "+0" -> (0, true)
func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "+") {
		return parseEuropeanFloat(s[1:]), true
	}
	return parseEuropeanFloat(s), false
}

// parseEuropeanFloat converts a European decimal string to float64.
// "102,5" -> 102.5, "0,5" -> 0.5
func parseEuropeanFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
