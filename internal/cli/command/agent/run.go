package agent

import (
	"context"
	"fmt"

	cfg "github.com/Tomas-vilte/MatePRAgent/internal/config"
	"github.com/Tomas-vilte/MatePRAgent/internal/i18n"
	"github.com/Tomas-vilte/MatePRAgent/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MatePRAgent/internal/logger"
	"github.com/Tomas-vilte/MatePRAgent/internal/services"
	"github.com/urfave/cli/v3"
)

type RunCommand struct{}

func NewRunCommand() *RunCommand {
	return &RunCommand{}
}

func (c *RunCommand) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: t.GetMessage("run_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Only log warnings and errors",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("quiet"))

			// La configuración faltante es la única precondición fatal:
			// código de salida 1 sin tocar ningún PR.
			config, err := cfg.Load()
			if err != nil {
				return cli.Exit(fmt.Sprintf("%s: %v", t.GetMessage("error.load_config", 0, nil), err), 1)
			}

			if config.Language != "" {
				// Un idioma no soportado no es fatal, se sigue en inglés.
				_ = t.SetLanguage(config.Language)
			}

			fmt.Println(t.GetMessage("run.starting", 0, map[string]interface{}{
				"Repository": config.Repository(),
			}))

			vcsClient := github.NewGitHubClient(config.Owner, config.Repo, config.Token, t)
			agentService := services.NewPRAgentService(
				vcsClient,
				services.NewStatusClassifier(),
				services.NewLabelReconciler(vcsClient),
				services.NewCommentUpserter(vcsClient),
				services.NewMergeOrchestrator(vcsClient, t),
			)

			summary, reports, err := agentService.Run(ctx)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			fmt.Println(t.GetMessage("run.found_prs", len(reports), map[string]interface{}{
				"Count": len(reports),
			}))
			fmt.Println(t.GetMessage("run.summary", 0, map[string]interface{}{
				"Processed": summary.Processed,
				"Merged":    summary.Merged,
				"Failed":    summary.Failed,
			}))
			fmt.Println(t.GetMessage("run.done", 0, nil))

			// Las fallas por PR ya quedaron reportadas: la corrida terminó,
			// así que el código de salida es 0 igual.
			return nil
		},
	}
}
