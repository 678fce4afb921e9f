package main

import (
	"context"

	"soundkey-be/internal/entity"

	"github.com/spf13/cobra"
)

func newChordCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chord",
		Short: "Query the chord corpus",
	}

	cmd.AddCommand(newChordLookupCmd(s))
	cmd.AddCommand(newChordExtensionsCmd(s))
	cmd.AddCommand(newChordRelationCmd(s, "alterations", "Chords replacing one base note",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Chord, error) {
			return s.chords.GetAlterations(ctx, base, limit)
		}))
	cmd.AddCommand(newChordRelationCmd(s, "appendments", "Chords adding one note to the base",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Chord, error) {
			return s.chords.GetAppendments(ctx, base, limit)
		}))
	cmd.AddCommand(newChordRelationCmd(s, "deductions", "Chords dropping one base note",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Chord, error) {
			return s.chords.GetDeductions(ctx, base, limit)
		}))
	cmd.AddCommand(newChordRotationsCmd(s))
	cmd.AddCommand(newChordCategoryCmd(s))
	return cmd
}

func newChordLookupCmd(s *session) *cobra.Command {
	var root, category, limit string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "List the chords of a category on a root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.chords.GetChords(cmd.Context(), notesArg(limit), noteArg(root), category)
			if err != nil {
				return err
			}
			printChords(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "root note")
	cmd.Flags().StringVar(&category, "category", "", "chord category (Triad, Seven, ...)")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newChordExtensionsCmd(s *session) *cobra.Command {
	var notes, root, category, triadBase, limit string

	cmd := &cobra.Command{
		Use:   "extensions",
		Short: "Chords one rung up the category ladder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rootNote string
			if root != "" {
				rootNote = noteArg(root)
			}
			res, err := s.chords.GetExtensions(cmd.Context(), notesArg(notes), notesArg(limit), rootNote, category, triadBase)
			if err != nil {
				return err
			}
			printChords(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&root, "root", "", "root note (defaults to the first base note)")
	cmd.Flags().StringVar(&category, "category", "", "category of the base chord")
	cmd.Flags().StringVar(&triadBase, "triad-base", "", "only chords built on this triad, e.g. Cm")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

type chordRelation func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Chord, error)

func newChordRelationCmd(s *session, use, short string, run chordRelation) *cobra.Command {
	var notes, limit string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := run(cmd.Context(), notesArg(notes), notesArg(limit))
			if err != nil {
				return err
			}
			printChords(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newChordRotationsCmd(s *session) *cobra.Command {
	var notes, root, limit string

	cmd := &cobra.Command{
		Use:   "rotations",
		Short: "Chords spelling the same notes on another root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rootNote string
			if root != "" {
				rootNote = noteArg(root)
			}
			res, err := s.chords.GetRotations(cmd.Context(), notesArg(notes), notesArg(limit), rootNote)
			if err != nil {
				return err
			}
			printChords(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&root, "root", "", "root to exclude (defaults to the first base note)")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newChordCategoryCmd(s *session) *cobra.Command {
	var notes, root string

	cmd := &cobra.Command{
		Use:   "category",
		Short: "Category and triad base of a note combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.chords.GetCategoryAndTriadBase(cmd.Context(), noteArg(root), notesArg(notes))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			metaColor.Fprintln(out, res.Category)
			if res.TriadBase != nil {
				nameColor.Fprintf(out, "built on %s\n", *res.TriadBase)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated notes")
	cmd.Flags().StringVar(&root, "root", "", "root note")
	return cmd
}
