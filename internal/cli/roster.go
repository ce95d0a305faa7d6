package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limaJavier/interview-scheduling/pkg/model"
)

func newProfessorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "professors",
		Short: "Manage the professors of the stored roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List professors and their daily availability",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				professors, err := repository.Professors(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%-20s  %-5s  %s\n", "NAME", "FROM", "TO")
				fmt.Fprintf(w, "%-20s  %-5s  %s\n", "----", "----", "--")
				for _, professor := range professors {
					fmt.Fprintf(w, "%-20s  %-5s  %s\n", professor.Name, model.FormatMinutes(professor.AvailableStart), model.FormatMinutes(professor.AvailableEnd))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "add NAME FROM TO",
			Short:   "Add a professor available from FROM to TO (HH:MM)",
			Example: "  interviews professors add Ana 08:00 12:30",
			Args:    cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				input, err := model.ProcessRawInput(model.RawRosterInput{
					Professors: []model.RawProfessor{{Name: args[0], AvailableStart: args[1], AvailableEnd: args[2]}},
				})
				if err != nil {
					return err
				}

				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				if err := repository.AddProfessor(cmd.Context(), input.Professors[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "professor %q added\n", input.Professors[0].Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove NAME",
			Short: "Remove a professor",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				if err := repository.RemoveProfessor(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "professor %q removed\n", args[0])
				return nil
			},
		},
	)

	return cmd
}

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Manage the interview teams of the stored roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List teams",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				teams, err := repository.Teams(cmd.Context())
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				fmt.Fprintf(w, "%-6s  %s\n", "ID", "PROFESSORS")
				fmt.Fprintf(w, "%-6s  %s\n", "--", "----------")
				for _, team := range teams {
					fmt.Fprintf(w, "%-6d  %s\n", team.Id, strings.Join(team.Professors, ", "))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "add PROFESSOR PROFESSOR PROFESSOR",
			Short:   "Add a team of three known professors under the next free id",
			Example: "  interviews teams add Lucas Renato Anselmo",
			Args:    cobra.ExactArgs(model.TeamSize),
			RunE: func(cmd *cobra.Command, args []string) error {
				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				team, err := repository.AddTeam(cmd.Context(), args)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "team %d added\n", team.Id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove ID",
			Short: "Remove a team",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("team id must be a positive integer: %q", args[0])
				}

				repository, closeRepository, err := openRepository(cmd.Context())
				if err != nil {
					return err
				}
				defer closeRepository()

				if err := repository.RemoveTeam(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "team %d removed\n", id)
				return nil
			},
		},
	)

	return cmd
}
