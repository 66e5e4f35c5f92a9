package main

import (
	"context"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/mealplanner/internal/app"
	"github.com/nhle/mealplanner/internal/catalog"
	"github.com/nhle/mealplanner/internal/model"
	"github.com/nhle/mealplanner/internal/session"
	"github.com/nhle/mealplanner/internal/store"
	"github.com/nhle/mealplanner/internal/toast"
)

func main() {
	cfg, err := model.LoadConfig(model.DefaultConfigPath())
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "mealplanner")
		if err != nil {
			log.Fatalf("opening log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st, err := store.NewSQLiteStore(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("opening catalog: %v", err)
	}
	defer st.Close()

	recipes, err := st.LoadRecipes(context.Background())
	if err != nil {
		log.Fatalf("loading recipes: %v", err)
	}
	log.Printf("loaded %d recipes from %s", len(recipes), cfg.Catalog.Path)

	sched := app.NewTickScheduler()
	toasts := toast.New(
		toast.WithTTL(cfg.ToastDuration()),
		toast.WithScheduler(sched),
	)
	sess := session.New(
		catalog.New(recipes),
		session.WithToastEngine(toasts),
		session.WithWindowDays(cfg.Calendar.WindowDays),
		session.WithViewMode(model.ParseViewMode(cfg.Shopping.ViewMode)),
	)

	p := tea.NewProgram(app.New(sess, sched), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}
}
