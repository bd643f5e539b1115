package services

import (
	"context"
	"sort"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/domain/ports"
	"github.com/Tomas-vilte/MatePRAgent/internal/logger"
)

// Definición de las etiquetas de estado de CI que el agente aprovisiona una
// vez por corrida antes de procesar PRs.
var ciLabelDefinitions = []struct {
	Name        string
	Color       string
	Description string
}{
	{models.LabelCIPassing, "0e8a16", "All CI checks succeeded"},
	{models.LabelCIFailing, "d73a4a", "At least one CI check failed"},
	{models.LabelNeedsReview, "e4e669", "CI has not reported yet"},
}

// LabelReconciler converge el conjunto de etiquetas de un PR hacia exactamente
// una etiqueta de estado de CI, sin tocar etiquetas ajenas.
type LabelReconciler struct {
	vcs ports.VCSClient
}

func NewLabelReconciler(vcs ports.VCSClient) *LabelReconciler {
	return &LabelReconciler{vcs: vcs}
}

// Reconcile calcula el delta de etiquetas. Es puro: la aplicación contra la
// plataforma es responsabilidad de Apply. Reconciliar dos veces con la misma
// entrada da un delta vacío la segunda vez.
func (r *LabelReconciler) Reconcile(current map[string]bool, target string) models.LabelDelta {
	var delta models.LabelDelta

	for label := range current {
		if models.CILabels[label] && label != target {
			delta.ToRemove = append(delta.ToRemove, label)
		}
	}
	sort.Strings(delta.ToRemove)

	if !current[target] {
		delta.ToAdd = []string{target}
	}

	return delta
}

// Apply ejecuta el delta contra la plataforma: una llamada de remoción por
// etiqueta vieja y, si hace falta, una de agregado. Una falla se loguea y no
// corta el resto de los pasos del PR ni de los demás PRs.
func (r *LabelReconciler) Apply(ctx context.Context, prNumber int, delta models.LabelDelta) {
	for _, label := range delta.ToRemove {
		if err := r.vcs.RemoveLabel(ctx, prNumber, label); err != nil {
			logger.Warn(ctx, "could not remove stale label", "pr", prNumber, "label", label, "error", err)
		}
	}

	if len(delta.ToAdd) > 0 {
		if err := r.vcs.AddLabels(ctx, prNumber, delta.ToAdd); err != nil {
			logger.Warn(ctx, "could not add CI label", "pr", prNumber, "labels", delta.ToAdd, "error", err)
		}
	}
}

// ProvisionLabels asegura que las tres etiquetas de estado existan en el
// repositorio. Se llama una sola vez por corrida, antes del primer PR; una
// falla se loguea y no aborta la corrida.
func (r *LabelReconciler) ProvisionLabels(ctx context.Context) {
	for _, def := range ciLabelDefinitions {
		if err := r.vcs.EnsureLabel(ctx, def.Name, def.Color, def.Description); err != nil {
			logger.Warn(ctx, "could not provision label", "label", def.Name, "error", err)
		}
	}
}
