package models

// CIState es la clasificación de tres vías del resultado de CI de un commit.
// Es un valor derivado: se recalcula en cada corrida y nunca se persiste.
type CIState string

const (
	CIStatePassing CIState = "passing"
	CIStateFailing CIState = "failing"
	CIStatePending CIState = "pending"
)

// Etiquetas que administra el agente. AutoMergeLabel es de control: el agente
// solo la lee, nunca la crea ni la saca.
const (
	LabelCIPassing   = "ci-passing"
	LabelCIFailing   = "ci-failing"
	LabelNeedsReview = "needs-review"
	AutoMergeLabel   = "auto-merge"
)

// CILabels es el conjunto cerrado de etiquetas de estado de CI. Ninguna otra
// etiqueta puede aparecer en un LabelDelta.
var CILabels = map[string]bool{
	LabelCIPassing:   true,
	LabelCIFailing:   true,
	LabelNeedsReview: true,
}

// Label retorna la etiqueta de estado de CI que corresponde al estado.
func (s CIState) Label() string {
	switch s {
	case CIStatePassing:
		return LabelCIPassing
	case CIStateFailing:
		return LabelCIFailing
	default:
		return LabelNeedsReview
	}
}

// Icon retorna el ícono que acompaña al estado en el comentario de status.
func (s CIState) Icon() string {
	switch s {
	case CIStatePassing:
		return "✅"
	case CIStateFailing:
		return "❌"
	default:
		return "⏳"
	}
}
