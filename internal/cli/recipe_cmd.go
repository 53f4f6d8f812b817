package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SivaK1-Turing/mealplanner/internal/cli/formatter"
	"github.com/SivaK1-Turing/mealplanner/internal/domain"
	"github.com/spf13/cobra"
)

func newRecipeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage recipes",
	}

	cmd.AddCommand(
		newRecipeAddCmd(app),
		newRecipeListCmd(app),
		newRecipeShowCmd(app),
	)

	return cmd
}

func newRecipeAddCmd(app *App) *cobra.Command {
	var description, cuisine string
	var prepTime, cookTime, servings int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			r := &domain.Recipe{
				Title:       args[0],
				Description: description,
				Cuisine:     cuisine,
				Servings:    servings,
			}
			if cmd.Flags().Changed("prep-time") {
				r.PrepTimeMin = &prepTime
			}
			if cmd.Flags().Changed("cook-time") {
				r.CookTimeMin = &cookTime
			}

			if err := app.Recipes.Add(ctx, r); err != nil {
				return err
			}
			fmt.Printf("Added recipe #%d: %s\n", r.ID, r.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Recipe description")
	cmd.Flags().StringVar(&cuisine, "cuisine", "", "Cuisine")
	cmd.Flags().IntVar(&prepTime, "prep-time", 0, "Preparation time in minutes")
	cmd.Flags().IntVar(&cookTime, "cook-time", 0, "Cooking time in minutes")
	cmd.Flags().IntVar(&servings, "servings", 1, "Servings the recipe yields")

	return cmd
}

func newRecipeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := app.Recipes.List(context.Background())
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Println("No recipes yet.")
				return nil
			}

			headers := []string{"ID", "TITLE", "CUISINE", "TIME", "SERVINGS"}
			rows := make([][]string, 0, len(recipes))
			for _, r := range recipes {
				rows = append(rows, []string{
					strconv.FormatInt(r.ID, 10),
					r.Title,
					formatter.Dim(r.Cuisine),
					formatter.FormatMinutes(r.TotalTimeMin()),
					strconv.Itoa(r.Servings),
				})
			}
			fmt.Print(formatter.RenderBox("Recipes", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newRecipeShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid recipe id %q", args[0])
			}

			r, err := app.Recipes.Get(context.Background(), id)
			if err != nil {
				return err
			}
			if r == nil {
				fmt.Printf("Recipe %d not found.\n", id)
				return nil
			}

			fmt.Println(formatter.Header(r.Title))
			if r.Description != "" {
				fmt.Println(r.Description)
			}
			if r.Cuisine != "" {
				fmt.Printf("Cuisine:  %s\n", r.Cuisine)
			}
			fmt.Printf("Prep:     %s\n", formatter.FormatMinutes(r.PrepTimeMin))
			fmt.Printf("Cook:     %s\n", formatter.FormatMinutes(r.CookTimeMin))
			fmt.Printf("Total:    %s\n", formatter.FormatMinutes(r.TotalTimeMin()))
			fmt.Printf("Servings: %d\n", r.Servings)
			return nil
		},
	}
}
