package handlers

import (
	"ats-api/internal/models"
)

// emptyIfNil keeps empty collections encoded as [] rather than null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func parseStage(s string) (models.InterviewStage, bool) {
	stage := models.InterviewStage(s)
	return stage, stage.Valid()
}
