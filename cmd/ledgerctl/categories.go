package main

import (
	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	"github.com/mmynk/expensetracker/pkg/api"
)

func newCategoriesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"c"},
		Short:   "List and manage expense categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := c.categories().ListCategories(cmd.Context(), connect.NewRequest(&api.ListCategoriesRequest{}))
			if err != nil {
				return err
			}
			tw := newTable(cmd.OutOrStdout())
			printf(tw, "ID\tNAME\tICON\tCOLOR\n")
			for _, cat := range resp.Msg.Categories {
				printf(tw, "%s\t%s\t%s\t%s\n", cat.ID, cat.Name, cat.Icon, cat.Color)
			}
			return tw.Flush()
		},
	}

	var req api.CreateCategoryRequest
	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Name = args[0]
			resp, err := c.categories().CreateCategory(cmd.Context(), connect.NewRequest(&req))
			if err != nil {
				return err
			}
			printf(cmd.OutOrStdout(), "%s\n", resp.Msg.Category.ID)
			return nil
		},
	}
	add.Flags().StringVar(&req.Icon, "icon", "", "icon name (default bi-tag)")
	add.Flags().StringVar(&req.Color, "color", "", "hex color (default #6c757d)")
	add.Flags().BoolVar(&req.IsDefault, "default", false, "mark as a default category")

	rm := &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a category; its expenses become unclassified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.categories().DeleteCategory(cmd.Context(), connect.NewRequest(&api.DeleteCategoryRequest{ID: args[0]}))
			return err
		},
	}

	cmd.AddCommand(list, add, rm)
	return cmd
}
