package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MatePRAgent/internal/domain/models"
	"github.com/Tomas-vilte/MatePRAgent/internal/domain/ports"
)

// BotCommentMarker identifica el único comentario que el agente considera
// propio en cada PR. Va siempre como primera línea del cuerpo.
const BotCommentMarker = "<!-- pr-agent-bot -->"

// CommentUpserter mantiene exactamente un comentario de status por PR:
// actualiza el existente en el lugar o crea uno nuevo si no hay ninguno.
type CommentUpserter struct {
	vcs ports.VCSClient
}

func NewCommentUpserter(vcs ports.VCSClient) *CommentUpserter {
	return &CommentUpserter{vcs: vcs}
}

// Upsert busca el primer comentario marcado entre todos los comentarios del
// PR y lo reemplaza entero; si no existe, crea uno. El contenido final es
// siempre marker + "\n" + body: last-write-wins, sin merge de historia.
func (u *CommentUpserter) Upsert(ctx context.Context, prNumber int, body string) error {
	fullBody := BotCommentMarker + "\n" + body

	comments, err := u.vcs.ListComments(ctx, prNumber)
	if err != nil {
		return err
	}

	for _, comment := range comments {
		if strings.Contains(comment.Body, BotCommentMarker) {
			return u.vcs.UpdateComment(ctx, comment.ID, fullBody)
		}
	}

	return u.vcs.CreateComment(ctx, prNumber, fullBody)
}

// RenderStatusBody arma la tabla de status en Markdown que se publica en el
// PR. El contenido se recalcula entero en cada corrida, no se diffea contra
// el comentario anterior.
func (u *CommentUpserter) RenderStatusBody(pr models.PullRequest, state models.CIState, labelApplied string) string {
	return fmt.Sprintf(
		"**Automated PR Status** %s\n\n"+
			"| Field | Value |\n"+
			"|---|---|\n"+
			"| PR | #%d |\n"+
			"| Head SHA | `%s` |\n"+
			"| CI Status | **%s** |\n"+
			"| Label applied | `%s` |\n\n"+
			"*Updated automatically by the PR agent.*",
		state.Icon(), pr.Number, pr.ShortSHA(), state, labelApplied,
	)
}
