package domain

import "time"

type InsightKind string

const (
	InsightKindWarning        InsightKind = "warning"
	InsightKindRecommendation InsightKind = "recommendation"
	InsightKindTip            InsightKind = "tip"
)

type InsightPriority string

const (
	InsightPriorityLow    InsightPriority = "low"
	InsightPriorityMedium InsightPriority = "medium"
	InsightPriorityHigh   InsightPriority = "high"
)

// InsightAction é a ação de navegação sugerida por um insight. Label e Target
// são constantes associadas à regra que gerou o insight, nunca calculadas.
type InsightAction struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Insight é um aviso acionável produzido pelo motor de regras. O ID identifica
// a regra geradora, não a instância: no máximo um insight por regra por
// avaliação. Descartar um insight na interface não suprime reavaliações
// futuras — se a condição persistir, a regra volta a emitir.
type Insight struct {
	ID          string          `json:"id"`
	Kind        InsightKind     `json:"kind"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	Priority    InsightPriority `json:"priority"`
	Action      *InsightAction  `json:"action,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}
