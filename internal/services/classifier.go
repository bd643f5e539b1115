package services

import "github.com/Tomas-vilte/MatePRAgent/internal/domain/models"

// StatusClassifier reduce los check runs de un commit a un CIState.
// Es puro y determinístico: no toca la plataforma.
type StatusClassifier struct{}

func NewStatusClassifier() *StatusClassifier {
	return &StatusClassifier{}
}

// Conclusiones que dominan el resultado hacia failing.
var failingConclusions = map[string]bool{
	"failure":   true,
	"timed_out": true,
	"cancelled": true,
}

// Conclusiones que cuentan como éxito.
var passingConclusions = map[string]bool{
	"success": true,
	"neutral": true,
	"skipped": true,
}

// Classify aplica las reglas en orden: sin checks o con checks sin terminar
// es pending; cualquier falla dura domina como failing; solo conclusiones de
// éxito es passing; cualquier conclusión desconocida (action_required, stale)
// vuelve a pending, nunca se asume passing ni failing.
func (c *StatusClassifier) Classify(runs []models.CheckRun) models.CIState {
	if len(runs) == 0 {
		return models.CIStatePending
	}

	for _, run := range runs {
		if run.Status != models.CheckStatusCompleted {
			return models.CIStatePending
		}
	}

	conclusions := make(map[string]bool)
	for _, run := range runs {
		if run.Conclusion != "" {
			conclusions[run.Conclusion] = true
		}
	}
	if len(conclusions) == 0 {
		return models.CIStatePending
	}

	for conclusion := range conclusions {
		if failingConclusions[conclusion] {
			return models.CIStateFailing
		}
	}

	for conclusion := range conclusions {
		if !passingConclusions[conclusion] {
			return models.CIStatePending
		}
	}
	return models.CIStatePassing
}
