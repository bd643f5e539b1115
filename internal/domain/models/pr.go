package models

type (
	// PullRequest es la instantánea de una Pull Request abierta, leída una vez por corrida.
	PullRequest struct {
		Number  int
		Title   string
		HeadSHA string
		Labels  map[string]bool
	}

	// CheckRun representa el resultado de un check reportado sobre un commit.
	// Conclusion queda vacía mientras el check no esté completado.
	CheckRun struct {
		Name       string
		Status     string
		Conclusion string
	}

	// Comment es un comentario de issue/PR tal como lo expone la plataforma.
	Comment struct {
		ID   int64
		Body string
	}

	// LabelDelta es el conjunto de cambios de etiquetas que converge un PR
	// hacia exactamente una etiqueta de estado de CI.
	LabelDelta struct {
		ToRemove []string
		ToAdd    []string
	}

	// MergeResult es la respuesta cruda de la plataforma a un pedido de merge.
	MergeResult struct {
		Merged  bool
		Message string
	}
)

// Estados de un check run según la plataforma.
const (
	CheckStatusQueued     = "queued"
	CheckStatusInProgress = "in_progress"
	CheckStatusCompleted  = "completed"
)

// HasLabel indica si el PR tiene la etiqueta con ese nombre.
func (pr PullRequest) HasLabel(name string) bool {
	return pr.Labels[name]
}

// ShortSHA retorna la forma corta (7 caracteres) del commit head.
func (pr PullRequest) ShortSHA() string {
	if len(pr.HeadSHA) <= 7 {
		return pr.HeadSHA
	}
	return pr.HeadSHA[:7]
}

// Empty indica que el delta no requiere ninguna llamada a la plataforma.
func (d LabelDelta) Empty() bool {
	return len(d.ToRemove) == 0 && len(d.ToAdd) == 0
}
