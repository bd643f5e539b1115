package services

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/domain/ports"
	"github.com/Tomas-vilte/MatePRAgent/internal/logger"
)

// PRAgentService es el loop principal: recorre todas las PRs abiertas y, por
// cada una en orden, clasifica, reconcilia etiquetas, actualiza el comentario
// de status y evalúa el auto-merge. Todo es secuencial, un PR a la vez; el
// resultado de un PR nunca afecta a otro.
type PRAgentService struct {
	vcs        ports.VCSClient
	classifier *StatusClassifier
	reconciler *LabelReconciler
	upserter   *CommentUpserter
	merger     *MergeOrchestrator
}

func NewPRAgentService(
	vcs ports.VCSClient,
	classifier *StatusClassifier,
	reconciler *LabelReconciler,
	upserter *CommentUpserter,
	merger *MergeOrchestrator,
) *PRAgentService {
	return &PRAgentService{
		vcs:        vcs,
		classifier: classifier,
		reconciler: reconciler,
		upserter:   upserter,
		merger:     merger,
	}
}

// Run ejecuta una corrida completa: aprovisiona etiquetas, trae todas las PRs
// abiertas por adelantado y las procesa una por una. Retorna error solo si ni
// siquiera se pudo obtener la lista de PRs; las fallas por PR quedan en el
// resumen.
func (s *PRAgentService) Run(ctx context.Context) (models.RunSummary, []models.PRReport, error) {
	s.reconciler.ProvisionLabels(ctx)

	prs, err := s.vcs.ListOpenPRs(ctx)
	if err != nil {
		return models.RunSummary{}, nil, err
	}

	logger.Info(ctx, "open pull requests fetched", "count", len(prs))

	summary := models.RunSummary{}
	reports := make([]models.PRReport, 0, len(prs))
	for _, pr := range prs {
		report := s.processPR(ctx, pr)

		summary.Processed++
		if report.Merge.Status == models.MergeStatusMerged {
			summary.Merged++
		}
		if report.Err != nil {
			summary.Failed++
		}
		reports = append(reports, report)
	}

	return summary, reports, nil
}

// processPR procesa un solo PR detrás de un límite de aislamiento: un error o
// un panic acá se reporta y no impide procesar los PRs que siguen.
func (s *PRAgentService) processPR(ctx context.Context, pr models.PullRequest) (report models.PRReport) {
	defer func() {
		if r := recover(); r != nil {
			report.Err = fmt.Errorf("panic processing PR #%d: %v", pr.Number, r)
			logger.Error(ctx, "pull request processing panicked", report.Err, "pr", pr.Number)
		}
	}()

	report = models.PRReport{Number: pr.Number}
	logger.Info(ctx, "processing pull request", "pr", pr.Number, "title", pr.Title)

	runs, err := s.vcs.ListCheckRuns(ctx, pr.HeadSHA)
	if err != nil {
		// Sin check runs legibles el PR queda como pending; no es fatal.
		logger.Warn(ctx, "could not fetch check runs, treating as pending", "pr", pr.Number, "error", err)
		runs = nil
	}

	state := s.classifier.Classify(runs)
	report.State = state
	logger.Info(ctx, "CI state resolved", "pr", pr.Number, "state", state)

	target := state.Label()
	report.LabelApplied = target
	delta := s.reconciler.Reconcile(pr.Labels, target)
	s.reconciler.Apply(ctx, pr.Number, delta)

	body := s.upserter.RenderStatusBody(pr, state, target)
	if err := s.upserter.Upsert(ctx, pr.Number, body); err != nil {
		logger.Warn(ctx, "could not upsert status comment", "pr", pr.Number, "error", err)
		report.Err = err
	} else {
		report.CommentUpdated = true
	}

	report.Merge = s.merger.MaybeMerge(ctx, pr, state)
	if report.Merge.Status == models.MergeStatusFailed && report.Err == nil {
		report.Err = fmt.Errorf("auto-merge failed: %s", report.Merge.Reason)
	}

	return report
}
