package models

// IdeaStatus is a pipeline stage of an idea card
type IdeaStatus string

// Stages of the workflow scheme (platform and priority enabled)
const (
	IdeaStatusIdea      IdeaStatus = "idea"
	IdeaStatusScripting IdeaStatus = "scripting"
	IdeaStatusFilming   IdeaStatus = "filming"
	IdeaStatusDone      IdeaStatus = "done"
)

// Stages of the pipeline scheme (no platform or priority)
const (
	IdeaStatusBacklog      IdeaStatus = "backlog"
	IdeaStatusInProduction IdeaStatus = "em_producao"
	IdeaStatusReview       IdeaStatus = "revisao"
	IdeaStatusReady        IdeaStatus = "pronto"
)

// IdeaStageScheme selects one of the two mutually exclusive stage enumerations.
// A deployment runs exactly one scheme; ideas are never migrated between them.
type IdeaStageScheme string

const (
	IdeaStageSchemeWorkflow IdeaStageScheme = "workflow"
	IdeaStageSchemePipeline IdeaStageScheme = "pipeline"
)

var (
	workflowStages = []IdeaStatus{IdeaStatusIdea, IdeaStatusScripting, IdeaStatusFilming, IdeaStatusDone}
	pipelineStages = []IdeaStatus{IdeaStatusBacklog, IdeaStatusInProduction, IdeaStatusReview, IdeaStatusReady}
)

// IsValid checks if the IdeaStageScheme is known
func (s IdeaStageScheme) IsValid() bool {
	switch s {
	case IdeaStageSchemeWorkflow, IdeaStageSchemePipeline:
		return true
	}
	return false
}

// Stages returns the ordered board columns of the scheme
func (s IdeaStageScheme) Stages() []IdeaStatus {
	var stages []IdeaStatus
	switch s {
	case IdeaStageSchemeWorkflow:
		stages = workflowStages
	case IdeaStageSchemePipeline:
		stages = pipelineStages
	}
	out := make([]IdeaStatus, len(stages))
	copy(out, stages)
	return out
}

// Contains reports whether status is a stage of the scheme
func (s IdeaStageScheme) Contains(status IdeaStatus) bool {
	for _, stage := range s.Stages() {
		if stage == status {
			return true
		}
	}
	return false
}

// DefaultStage is the column new ideas land in
func (s IdeaStageScheme) DefaultStage() IdeaStatus {
	switch s {
	case IdeaStageSchemePipeline:
		return IdeaStatusBacklog
	default:
		return IdeaStatusIdea
	}
}

// SupportsPlatformAndPriority reports whether ideas carry platform and priority
func (s IdeaStageScheme) SupportsPlatformAndPriority() bool {
	return s == IdeaStageSchemeWorkflow
}

// Label returns the column title of a stage
func (st IdeaStatus) Label() string {
	switch st {
	case IdeaStatusIdea:
		return "💡 Ideia"
	case IdeaStatusScripting:
		return "📝 Roteirizando"
	case IdeaStatusFilming:
		return "🎬 Filmando"
	case IdeaStatusDone:
		return "✅ Pronto"
	case IdeaStatusBacklog:
		return "💡 Backlog"
	case IdeaStatusInProduction:
		return "🎬 Em Produção"
	case IdeaStatusReview:
		return "✏️ Revisão"
	case IdeaStatusReady:
		return "✅ Pronto"
	}
	return string(st)
}
