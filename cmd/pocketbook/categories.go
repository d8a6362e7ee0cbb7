package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pocketbook/pocketbook/internal/cli"
	"github.com/pocketbook/pocketbook/internal/common"
	"github.com/pocketbook/pocketbook/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage transaction categories",
		Long:  `List, add, rename, and delete the categories transactions are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(renameCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories by transaction type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			set, err := l.Categories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\n",
				cli.HeaderStyle.Render("Type"),
				cli.HeaderStyle.Render("Name"))
			for _, t := range []model.TransactionType{model.TypeIncome, model.TypeExpense, model.TypeTransfer} {
				for _, name := range set.Names(t) {
					fmt.Fprintf(w, "%s\t%s\n", t, name)
				}
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			t := model.TransactionType(categoryType)
			if err := l.AddCategory(ctx, t, args[0]); err != nil {
				return fmt.Errorf("failed to add category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added %s category %q", t, args[0])))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", string(model.TypeExpense), "transaction type (income, expense, transfer)")

	return cmd
}

func renameCategoryCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "rename <old-name> <new-name>",
		Short: "Rename a category",
		Long: `Rename a category within its transaction type. Existing transactions keep
the old name; re-file them individually if needed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			t := model.TransactionType(categoryType)
			if err := l.RenameCategory(ctx, t, args[0], t, args[1]); err != nil {
				return fmt.Errorf("failed to rename category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed %q to %q", args[0], args[1])))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", string(model.TypeExpense), "transaction type (income, expense, transfer)")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var categoryType string

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a category",
		Long:  `Delete a category. Categories still referenced by transactions or budgets cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			l, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			t := model.TransactionType(categoryType)
			err = l.DeleteCategory(ctx, t, args[0])
			var refErr *common.ReferenceError
			if errors.As(err, &refErr) {
				fmt.Println(cli.FormatWarning(refErr.Error()))
				return fmt.Errorf("cannot delete category %q while it is in use", args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted %s category %q", t, args[0])))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryType, "type", string(model.TypeExpense), "transaction type (income, expense, transfer)")

	return cmd
}
