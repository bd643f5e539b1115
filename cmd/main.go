package main

import (
	"context"
	"log"
	"os"

	"github.com/Tomas-vilte/MatePRAgent/internal/cli/command/agent"
	"github.com/Tomas-vilte/MatePRAgent/internal/i18n"
	"github.com/Tomas-vilte/MatePRAgent/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	lang := os.Getenv("MATE_PR_AGENT_LANG")
	if lang == "" {
		lang = "en"
	}

	translations, err := i18n.NewTranslations(lang, "")
	if err != nil {
		return nil, err
	}

	runCommand := agent.NewRunCommand()

	return &cli.Command{
		Name:        "mate-pr-agent",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Commands: []*cli.Command{
			runCommand.CreateCommand(translations),
		},
	}, nil
}
