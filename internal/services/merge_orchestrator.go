package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/domain/ports"
	"github.com/Tomas-vilte/MatePRAgent/internal/i18n"
	"github.com/Tomas-vilte/MatePRAgent/internal/logger"
)

// MergeOrchestrator decide y pide el squash merge de un PR. No reintenta:
// un merge fallido queda para la próxima corrida agendada.
type MergeOrchestrator struct {
	vcs   ports.VCSClient
	trans *i18n.Translations
}

func NewMergeOrchestrator(vcs ports.VCSClient, trans *i18n.Translations) *MergeOrchestrator {
	return &MergeOrchestrator{vcs: vcs, trans: trans}
}

// MaybeMerge pide el merge solo si el estado es passing y el PR traía la
// etiqueta auto-merge al inicio del procesamiento (el agente nunca la agrega,
// así que el conjunto pre-reconciliación es el que vale). Cualquier respuesta
// que no confirme el merge explícitamente cuenta como falla.
func (o *MergeOrchestrator) MaybeMerge(ctx context.Context, pr models.PullRequest, state models.CIState) models.MergeOutcome {
	if state != models.CIStatePassing || !pr.HasLabel(models.AutoMergeLabel) {
		return models.SkippedMerge()
	}

	logger.Info(ctx, "auto-merging pull request", "pr", pr.Number)

	commitTitle := fmt.Sprintf("Auto-merge PR #%d: %s", pr.Number, pr.Title)
	result, err := o.vcs.MergePR(ctx, pr.Number, commitTitle)
	if err != nil {
		logger.Error(ctx, "auto-merge failed", err, "pr", pr.Number)
		return models.FailedMerge(err.Error())
	}

	if !result.Merged {
		reason := result.Message
		if reason == "" {
			reason = o.trans.GetMessage("merge.no_response", 0, nil)
		}
		logger.Error(ctx, "auto-merge rejected by the platform", nil, "pr", pr.Number, "reason", reason)
		return models.FailedMerge(reason)
	}

	logger.Info(ctx, "pull request merged", "pr", pr.Number)
	return models.Merged()
}
