package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	ListDepartments(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// CandidateHandlerInterface defines the methods needed by the candidate routes.
type CandidateHandlerInterface interface {
	ListCandidates(c *gin.Context)
	ListRoles(c *gin.Context)
	GetCandidateByID(c *gin.Context)
	CreateCandidate(c *gin.Context)
	UpdateCandidate(c *gin.Context)
	DeleteCandidate(c *gin.Context)
	UploadImage(c *gin.Context)
}

// InterviewHandlerInterface defines the methods needed by the interview routes.
type InterviewHandlerInterface interface {
	ListInterviews(c *gin.Context)
	GetInterviewByID(c *gin.Context)
	ScheduleInterview(c *gin.Context)
	UpdateInterview(c *gin.Context)
	DeleteInterview(c *gin.Context)
}

// FeedbackHandlerInterface defines the methods needed by the feedback routes.
type FeedbackHandlerInterface interface {
	ListFeedback(c *gin.Context)
	GetFeedbackByID(c *gin.Context)
	SubmitFeedback(c *gin.Context)
	UpdateFeedback(c *gin.Context)
	DeleteFeedback(c *gin.Context)
}

type StageHandlerInterface interface {
	ListStages(c *gin.Context)
	GetStageByID(c *gin.Context)
	UpdateStage(c *gin.Context)
}

type DashboardHandlerInterface interface {
	GetStats(c *gin.Context)
	GetPipeline(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ JobHandlerInterface       = (*JobHandler)(nil)
	_ CandidateHandlerInterface = (*CandidateHandler)(nil)
	_ InterviewHandlerInterface = (*InterviewHandler)(nil)
	_ FeedbackHandlerInterface  = (*FeedbackHandler)(nil)
	_ StageHandlerInterface     = (*StageHandler)(nil)
	_ DashboardHandlerInterface = (*DashboardHandler)(nil)
)
