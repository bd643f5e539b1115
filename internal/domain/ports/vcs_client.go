package ports

import (
	"context"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
)

// VCSClient define las operaciones que el agente necesita de la API del
// sistema de control de versiones. Todas las operaciones de listado paginan
// hasta agotar los resultados.
type VCSClient interface {
	// ListOpenPRs obtiene todas las Pull Requests abiertas del repositorio.
	ListOpenPRs(ctx context.Context) ([]models.PullRequest, error)
	// ListCheckRuns obtiene los check runs reportados sobre un commit.
	ListCheckRuns(ctx context.Context, sha string) ([]models.CheckRun, error)
	// EnsureLabel crea la etiqueta en el repositorio si todavía no existe.
	EnsureLabel(ctx context.Context, name, color, description string) error
	// AddLabels agrega etiquetas a un PR.
	AddLabels(ctx context.Context, prNumber int, labels []string) error
	// RemoveLabel saca una etiqueta de un PR.
	RemoveLabel(ctx context.Context, prNumber int, label string) error
	// ListComments obtiene todos los comentarios de un PR.
	ListComments(ctx context.Context, prNumber int) ([]models.Comment, error)
	// CreateComment crea un comentario nuevo en un PR.
	CreateComment(ctx context.Context, prNumber int, body string) error
	// UpdateComment reemplaza el cuerpo de un comentario existente.
	UpdateComment(ctx context.Context, commentID int64, body string) error
	// MergePR pide un squash merge con el título de commit indicado.
	MergePR(ctx context.Context, prNumber int, commitTitle string) (models.MergeResult, error)
}
