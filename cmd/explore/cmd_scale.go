package main

import (
	"context"
	"strings"

	"soundkey-be/internal/entity"

	"github.com/spf13/cobra"
)

func newScaleCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Query the scale corpus",
	}

	cmd.AddCommand(newScaleLookupCmd(s))
	cmd.AddCommand(newScaleGroupsCmd(s))
	cmd.AddCommand(newScaleModesCmd(s))
	cmd.AddCommand(newScaleRelationCmd(s, "alterations", "Scales replacing one base note",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Scale, error) {
			return s.scales.GetAlterations(ctx, base, limit)
		}))
	cmd.AddCommand(newScaleRelationCmd(s, "appendments", "Scales adding one note to the base",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Scale, error) {
			return s.scales.GetAppendments(ctx, base, limit)
		}))
	cmd.AddCommand(newScaleRelationCmd(s, "deductions", "Scales dropping one base note",
		func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Scale, error) {
			return s.scales.GetDeductions(ctx, base, limit)
		}))
	cmd.AddCommand(newScaleRotationsCmd(s))
	cmd.AddCommand(newScaleSubscalesCmd(s))
	cmd.AddCommand(newScaleSearchCmd(s))
	return cmd
}

func newScaleLookupCmd(s *session) *cobra.Command {
	var root, group, limit string

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "List the scales of a group on a root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.scales.GetScales(cmd.Context(), notesArg(limit), noteArg(root), group)
			if err != nil {
				return err
			}
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "root note")
	cmd.Flags().StringVar(&group, "group", "", "scale group id")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newScaleGroupsCmd(s *session) *cobra.Command {
	var root, scaleType, limit string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Scale groups with a scale of the given type on a root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.scales.GetScaleGroups(cmd.Context(), notesArg(limit), noteArg(root), scaleType)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(res) == 0 {
				dimColor.Fprintln(out, "no scale groups found")
			}
			for _, g := range res {
				metaColor.Fprintf(out, "%3d ", g.Id)
				nameColor.Fprintln(out, g.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "root note")
	cmd.Flags().StringVar(&scaleType, "type", "", "Pentatonic, Hexatonic, Heptatonic, Octatonic or Dodecatonic")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newScaleModesCmd(s *session) *cobra.Command {
	var root, mode, limit string

	cmd := &cobra.Command{
		Use:   "modes",
		Short: "Scales of a mode family on a root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.scales.GetScalesByMode(cmd.Context(), notesArg(limit), noteArg(root), mode)
			if err != nil {
				return err
			}
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "root note")
	cmd.Flags().StringVar(&mode, "mode", "", "mode family, e.g. diatonic")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

type scaleRelation func(ctx context.Context, base, limit entity.NoteSource) ([]*entity.Scale, error)

func newScaleRelationCmd(s *session, use, short string, run scaleRelation) *cobra.Command {
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
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newScaleRotationsCmd(s *session) *cobra.Command {
	var notes, root, limit string

	cmd := &cobra.Command{
		Use:   "rotations",
		Short: "Scales spelling the same notes on another root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rootNote string
			if root != "" {
				rootNote = noteArg(root)
			}
			res, err := s.scales.GetRotations(cmd.Context(), notesArg(notes), notesArg(limit), rootNote)
			if err != nil {
				return err
			}
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&root, "root", "", "root to exclude (defaults to the first base note)")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}

func newScaleSubscalesCmd(s *session) *cobra.Command {
	var notes, limit string
	var alterBy, leaveOut int

	cmd := &cobra.Command{
		Use:   "subscales",
		Short: "Smaller scales rooted on a base note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.scales.GetSubscales(cmd.Context(), notesArg(notes), notesArg(limit), alterBy, leaveOut)
			if err != nil {
				return err
			}
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated base notes")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	cmd.Flags().IntVar(&alterBy, "alter-by", 1, "how many notes fewer than the base")
	cmd.Flags().IntVar(&leaveOut, "leave-out", 0, "extra base notes a subscale may miss")
	return cmd
}

func newScaleSearchCmd(s *session) *cobra.Command {
	var notes, limit string

	cmd := &cobra.Command{
		Use:   "search <words...>",
		Short: "Find scales by words in their name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.scales.SearchByName(cmd.Context(), strings.Join(args, " "), notesArg(notes), notesArg(limit))
			if err != nil {
				return err
			}
			printScales(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "comma-separated notes whose root orders results")
	cmd.Flags().StringVar(&limit, "limit", "", "comma-separated notes results must stay within")
	return cmd
}
