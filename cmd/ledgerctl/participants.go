package main

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/expensetracker/pkg/api"
)

func newParticipantsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "participants",
		Aliases: []string{"p"},
		Short:   "List and manage participants",
	}

	var activeOnly bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.participants().ListParticipants(cmd.Context(), connect.NewRequest(&api.ListParticipantsRequest{ActiveOnly: activeOnly}))
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			printf(tw, "ID\tNAME\tEMAIL\tACTIVE\n")
			for _, p := range resp.Msg.Participants {
				printf(tw, "%s\t%s\t%s\t%t\n", p.ID, p.Name, orDash(p.Email), p.Active)
			}
			return tw.Flush()
		},
	}
	list.Flags().BoolVar(&activeOnly, "active", false, "only active participants")

	var email string
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.participants().CreateParticipant(cmd.Context(), connect.NewRequest(&api.CreateParticipantRequest{
				Name:  args[0],
				Email: email,
			}))
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", resp.Msg.Participant.ID)
			return nil
		},
	}
	add.Flags().StringVar(&email, "email", "", "contact email")

	setActive := func(use, short string, active bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " ID",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := c.participants().UpdateParticipant(cmd.Context(), connect.NewRequest(&api.UpdateParticipantRequest{
					ID:     args[0],
					Active: &active,
				}))
				return err
			},
		}
	}

	rm := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a participant and their shares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.participants().DeleteParticipant(cmd.Context(), connect.NewRequest(&api.DeleteParticipantRequest{ID: args[0]}))
			return err
		},
	}

	cmd.AddCommand(
		list,
		add,
		setActive("activate", "Include a participant in settlements", true),
		setActive("deactivate", "Exclude a participant from settlements", false),
		rm,
	)
	return cmd
}
