package main

import (
	"fmt"
	"io"
	"strings"

	"soundkey-be/internal/bootstrap"
	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/internal/service"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/notation"

	"github.com/fatih/color"
)

// session holds the services of an in-memory corpus for one invocation.
type session struct {
	chords service.IChordService
	scales service.IScaleService
}

func (s *session) open(path string) error {
	var c *corpus.Corpus
	var err error
	if path != "" {
		c, err = corpus.Load(path)
	} else {
		c, err = corpus.Generate(notation.NewParser())
	}
	if err != nil {
		return err
	}

	factory := unitofwork.NewMemoryRepositoryFactory(
		memory.NewChordRepository(c.Chords...),
		memory.NewScaleRepository(c.ScaleGroups, c.Scales...),
	)
	container := bootstrap.NewContainerWithFactory(factory, logger.NewNopLogger())
	s.chords = container.ChordService
	s.scales = container.ScaleService
	return nil
}

// notesArg splits a comma-separated note list, canonicalizing what it can.
// A blank list is nil.
func notesArg(raw string) entity.NoteSource {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	notes := make(entity.RawNotes, len(parts))
	for i, p := range parts {
		notes[i] = noteArg(p)
	}
	return notes
}

func noteArg(raw string) string {
	if pc, err := entity.ParsePitchClass(raw); err == nil {
		return string(pc)
	}
	return strings.TrimSpace(raw)
}

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	metaColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
)

func printChords(out io.Writer, chords []*entity.Chord) {
	if len(chords) == 0 {
		dimColor.Fprintln(out, "no chords found")
		return
	}
	for _, c := range chords {
		nameColor.Fprintf(out, "%-10s", c.Symbol)
		metaColor.Fprintf(out, " %-9s", c.Category)
		fmt.Fprintf(out, " %s\n", strings.Join(c.NoteNames(), " "))
	}
}

func printScales(out io.Writer, scales []*entity.Scale) {
	if len(scales) == 0 {
		dimColor.Fprintln(out, "no scales found")
		return
	}
	for _, sc := range scales {
		nameColor.Fprintf(out, "%-28s", sc.DisplayName())
		metaColor.Fprintf(out, " %-16s", sc.GroupName)
		fmt.Fprintf(out, " %s\n", strings.Join(sc.NoteNames(), " "))
	}
}
