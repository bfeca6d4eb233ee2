package entity

import "time"

// Stage is a step of the claim pipeline. Stages run strictly in declaration order.
type Stage string

const (
	StageFetching          Stage = "FETCHING"
	StageCheckingStatus    Stage = "CHECKING_STATUS"
	StageCheckingUserClaim Stage = "CHECKING_USER_CLAIM"
	StageSubmitting        Stage = "SUBMITTING"
	StageConfirming        Stage = "CONFIRMING"
	StageVerifying         Stage = "VERIFYING"
	StageDone              Stage = "DONE"
	StageFailed            Stage = "FAILED"
)

// Stages lists the working stages in execution order.
var Stages = []Stage{
	StageFetching,
	StageCheckingStatus,
	StageCheckingUserClaim,
	StageSubmitting,
	StageConfirming,
	StageVerifying,
}

// StageEvent reports a pipeline transition. For StageFailed, FailedAt names the stage that failed.
type StageEvent struct {
	PokemonId int64
	Stage     Stage
	FailedAt  Stage
	Err       error
	Time      time.Time
}
