package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/doeshing/mealtrack/internal/app"
	"github.com/doeshing/mealtrack/internal/domain"
	"github.com/doeshing/mealtrack/internal/infrastructure/mcpserver"
)

type containerFunc func(cmd *cobra.Command) (*app.Container, error)

func newAddCommand(build containerFunc) *cobra.Command {
	var (
		mealType   string
		menu       []string
		categories []string
		tags       []string
		calories   int
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a meal record without the interactive shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			if len(menu) == 0 {
				return fmt.Errorf("--menu is required")
			}

			parsed := domain.MealType(strings.ToLower(mealType))
			if !parsed.Valid() {
				parsed = domain.MealTypeLunch
			}

			meal := domain.Meal{
				ID:         uuid.NewString(),
				Timestamp:  c.Clock.Now(),
				MealType:   parsed,
				MenuItems:  menu,
				Categories: categories,
				Tags:       tags,
				Notes:      notes,
			}
			if cmd.Flags().Changed("calories") && calories >= 0 {
				meal.Calories = &calories
			}

			if err := c.Store.Save(meal); err != nil {
				return fmt.Errorf("save meal: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved meal %s\n", meal.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&mealType, "type", "t", "lunch", "Meal type (breakfast|lunch|dinner|snack)")
	cmd.Flags().StringSliceVarP(&menu, "menu", "m", nil, "Menu items")
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Cuisine categories")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Nutrition/quality tags")
	cmd.Flags().IntVar(&calories, "calories", 0, "Calories (optional)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes (optional)")
	return cmd
}

func newRecentCommand(build containerFunc) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show the most recent meal records",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = c.Config.Preferences.RecentLimit
			}
			meals, err := c.Store.RecentMeals(limit)
			if err != nil {
				return fmt.Errorf("load meals: %w", err)
			}
			NewRenderer(cmd.OutOrStdout(), c.Clock).RenderRecentMeals(meals)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Max records to show (default from config)")
	return cmd
}

func newAnalyzeCommand(build containerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Analyze eating trends over the full history",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			analyzer, err := c.Analyzer()
			if err != nil {
				return fmt.Errorf("load meals: %w", err)
			}
			NewRenderer(cmd.OutOrStdout(), c.Clock).RenderSummary(analyzer.Summary())
			return nil
		},
	}
}

func newRecommendCommand(build containerFunc) *cobra.Command {
	var mealType string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend the next meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			parsed := domain.MealType(strings.ToLower(mealType))
			if !parsed.Valid() {
				parsed = domain.MealTypeLunch
			}
			recommender, err := c.Recommender()
			if err != nil {
				return fmt.Errorf("load meals: %w", err)
			}
			NewRenderer(cmd.OutOrStdout(), c.Clock).RenderRecommendation(recommender.NextMeal(parsed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mealType, "type", "t", "lunch", "Meal type (breakfast|lunch|dinner)")
	return cmd
}

func newPlanCommand(build containerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Propose a weekly meal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			recommender, err := c.Recommender()
			if err != nil {
				return fmt.Errorf("load meals: %w", err)
			}
			NewRenderer(cmd.OutOrStdout(), c.Clock).RenderWeeklyPlan(recommender.WeeklyPlan())
			return nil
		},
	}
}

func newServeCommand(build containerFunc) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose meal logging and recommendation as MCP tools over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd)
			if err != nil {
				return err
			}
			srv := mcpserver.New(c, fmt.Sprintf("%s:%d", host, port))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Host address")
	cmd.Flags().IntVar(&port, "port", 8011, "Port for HTTP transport")
	return cmd
}
