package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/doeshing/mealtrack/internal/app"
	"github.com/doeshing/mealtrack/internal/domain"
)

// Shell runs the interactive menu loop: add, recent, analyze, recommend, quit.
type Shell struct {
	container *app.Container
	prompter  *Prompter
	renderer  *Renderer
	out       io.Writer
}

// NewShell wires the interactive shell over the container. Nil streams fall
// back to stdio.
func NewShell(container *app.Container, in io.Reader, out io.Writer) *Shell {
	prompter := NewPrompter(in, out)
	return &Shell{
		container: container,
		prompter:  prompter,
		renderer:  NewRenderer(prompter.out, container.Clock),
		out:       prompter.out,
	}
}

// Run loops over the menu until the user quits or input ends.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to mealtrack!")

	for {
		s.printMenu()
		choice, err := s.prompter.ReadLine("Choice (1-5): ")
		if err != nil {
			// EOF or closed input ends the session cleanly.
			return nil
		}

		switch choice {
		case "1":
			s.addMeal()
		case "2":
			s.viewRecent()
		case "3":
			s.analyzeTrends()
		case "4":
			s.recommendMeal()
		case "5":
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(s.out, "\nInvalid choice. Enter 1-5.")
		}

		if _, err := s.prompter.ReadLine("\nPress Enter to continue..."); err != nil {
			return nil
		}
	}
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "==================================================")
	fmt.Fprintln(s.out, "  mealtrack - meal analysis and recommendation")
	fmt.Fprintln(s.out, "==================================================")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "1. Add meal record")
	fmt.Fprintln(s.out, "2. Show recent meals")
	fmt.Fprintln(s.out, "3. Analyze trends")
	fmt.Fprintln(s.out, "4. Recommend next meal")
	fmt.Fprintln(s.out, "5. Quit")
	fmt.Fprintln(s.out)
}

func (s *Shell) addMeal() {
	fmt.Fprintln(s.out, "\n=== Add Meal Record ===")

	mealType, err := s.prompter.SelectMealType(true)
	if err != nil {
		return
	}

	fmt.Fprintln(s.out, "\nEnter menu items (comma separated):")
	fmt.Fprintln(s.out, "e.g. ご飯, 味噌汁, 焼き魚")
	menuItems, err := s.prompter.ReadList("Menu: ")
	if err != nil {
		return
	}

	fmt.Fprintln(s.out, "\nEnter categories (comma separated):")
	fmt.Fprintln(s.out, "e.g. 和食, ヘルシー")
	categories, err := s.prompter.ReadList("Categories: ")
	if err != nil {
		return
	}

	fmt.Fprintln(s.out, "\nEnter tags (optional, comma separated):")
	fmt.Fprintln(s.out, "e.g. ヘルシー, 高タンパク, 野菜多め")
	tags, err := s.prompter.ReadList("Tags (Enter to skip): ")
	if err != nil {
		return
	}

	calories, err := s.prompter.ReadOptionalInt("\nCalories (Enter to skip): ")
	if err != nil {
		return
	}

	notes, err := s.prompter.ReadLine("\nNotes (Enter to skip): ")
	if err != nil {
		return
	}

	meal := domain.Meal{
		ID:         uuid.NewString(),
		Timestamp:  s.container.Clock.Now(),
		MealType:   mealType,
		MenuItems:  menuItems,
		Categories: categories,
		Tags:       tags,
		Calories:   calories,
		Notes:      notes,
	}

	if err := s.container.Store.Save(meal); err != nil {
		s.container.Logger.Error("save meal failed", err, map[string]interface{}{"id": meal.ID})
		fmt.Fprintln(s.out, "\nFailed to save the record.")
		return
	}

	fmt.Fprintln(s.out, "\nMeal record saved!")
	fmt.Fprintf(s.out, "  ID: %s\n", meal.ID)
	fmt.Fprintf(s.out, "  Menu: %s\n", strings.Join(meal.MenuItems, ", "))
}

func (s *Shell) viewRecent() {
	fmt.Fprintln(s.out, "\n=== Recent Meals ===")

	meals, err := s.container.Store.RecentMeals(s.container.Config.Preferences.RecentLimit)
	if err != nil {
		fmt.Fprintln(s.out, "Failed to load meals.")
		return
	}
	s.renderer.RenderRecentMeals(meals)
}

func (s *Shell) analyzeTrends() {
	fmt.Fprintln(s.out, "\n=== Meal Trend Analysis ===")

	analyzer, err := s.container.Analyzer()
	if err != nil {
		fmt.Fprintln(s.out, "Failed to load meals.")
		return
	}
	s.renderer.RenderSummary(analyzer.Summary())
}

func (s *Shell) recommendMeal() {
	fmt.Fprintln(s.out, "\n=== Next Meal Recommendation ===")

	mealType, err := s.prompter.SelectMealType(false)
	if err != nil {
		return
	}

	recommender, err := s.container.Recommender()
	if err != nil {
		fmt.Fprintln(s.out, "Failed to load meals.")
		return
	}

	fmt.Fprintln(s.out)
	s.renderer.RenderRecommendation(recommender.NextMeal(mealType))
}
