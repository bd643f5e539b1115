package models

// MergeStatus es el resultado de la decisión de auto-merge para un PR.
type MergeStatus string

const (
	MergeStatusMerged  MergeStatus = "merged"
	MergeStatusSkipped MergeStatus = "skipped"
	MergeStatusFailed  MergeStatus = "failed"
)

type (
	// MergeOutcome describe qué pasó con el intento de merge de un PR.
	// Reason solo se completa cuando Status es failed.
	MergeOutcome struct {
		Status MergeStatus
		Reason string
	}

	// PRReport resume el procesamiento de un PR en una corrida.
	PRReport struct {
		Number         int
		State          CIState
		LabelApplied   string
		CommentUpdated bool
		Merge          MergeOutcome
		Err            error
	}

	// RunSummary agrega los resultados de toda la corrida.
	RunSummary struct {
		Processed int
		Merged    int
		Failed    int
	}
)

// Merged es el outcome de un merge confirmado por la plataforma.
func Merged() MergeOutcome {
	return MergeOutcome{Status: MergeStatusMerged}
}

// SkippedMerge es el outcome de un PR que no cumplió la condición de auto-merge.
func SkippedMerge() MergeOutcome {
	return MergeOutcome{Status: MergeStatusSkipped}
}

// FailedMerge es el outcome de un pedido de merge rechazado o sin respuesta.
func FailedMerge(reason string) MergeOutcome {
	return MergeOutcome{Status: MergeStatusFailed, Reason: reason}
}
