package services

import (
	"sort"
	"strconv"
	"strings"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"
)

// matchAll reports whether a filter value selects everything.
func matchAll(v string) bool {
	return v == "" || v == "all"
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// FilterJobs narrows jobs by a case-insensitive search over title,
// department and location, and by exact status and department.
func FilterJobs(jobs []models.Job, req *dto.ListJobsRequest) []models.Job {
	if req == nil {
		return jobs
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	out := make([]models.Job, 0, len(jobs))
	for _, j := range jobs {
		if search != "" && !containsFold(j.Title, search) && !containsFold(j.Department, search) && !containsFold(j.Location, search) {
			continue
		}
		if !matchAll(req.Status) && string(j.Status) != req.Status {
			continue
		}
		if !matchAll(req.Department) && j.Department != req.Department {
			continue
		}
		out = append(out, j)
	}
	return out
}

// FilterCandidates narrows candidates by search over name, email and role,
// and by exact stage and role.
func FilterCandidates(candidates []models.Candidate, req *dto.ListCandidatesRequest) []models.Candidate {
	if req == nil {
		return candidates
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	out := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if search != "" && !containsFold(c.Name, search) && !containsFold(c.Email, search) && !containsFold(c.Role, search) {
			continue
		}
		if !matchAll(req.Stage) && string(c.CurrentStage) != req.Stage {
			continue
		}
		if !matchAll(req.Role) && c.Role != req.Role {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterInterviews narrows interviews by search over the candidate name and
// job title snapshots, and by exact stage and status.
func FilterInterviews(interviews []models.Interview, req *dto.ListInterviewsRequest) []models.Interview {
	if req == nil {
		return interviews
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))

	out := make([]models.Interview, 0, len(interviews))
	for _, iv := range interviews {
		if search != "" && !containsFold(iv.CandidateName, search) && !containsFold(iv.JobTitle, search) {
			continue
		}
		if !matchAll(req.Stage) && string(iv.Stage) != req.Stage {
			continue
		}
		if !matchAll(req.Status) && string(iv.Status) != req.Status {
			continue
		}
		out = append(out, iv)
	}
	return out
}

// FilterFeedback narrows feedback by search over the interviewer name and
// the rated candidate's name, and by exact stage and rating. names maps
// candidate ids to names; feedback for an unknown candidate matches only on
// the interviewer.
func FilterFeedback(feedback []models.Feedback, names map[string]string, req *dto.ListFeedbackRequest) []models.Feedback {
	if req == nil {
		return feedback
	}
	search := strings.ToLower(strings.TrimSpace(req.Search))
	rating := 0
	if !matchAll(req.Rating) {
		rating, _ = strconv.Atoi(req.Rating)
	}

	out := make([]models.Feedback, 0, len(feedback))
	for _, fb := range feedback {
		if search != "" && !containsFold(fb.InterviewerName, search) && !containsFold(names[fb.CandidateID], search) {
			continue
		}
		if !matchAll(req.Stage) && string(fb.Stage) != req.Stage {
			continue
		}
		if rating != 0 && fb.Rating != rating {
			continue
		}
		out = append(out, fb)
	}
	return out
}

func candidateNames(candidates []models.Candidate) map[string]string {
	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[c.ID] = c.Name
	}
	return names
}

// Departments returns the distinct job departments, sorted.
func Departments(jobs []models.Job) []string {
	return distinct(len(jobs), func(i int) string { return jobs[i].Department })
}

// Roles returns the distinct candidate roles, sorted.
func Roles(candidates []models.Candidate) []string {
	return distinct(len(candidates), func(i int) string { return candidates[i].Role })
}

func distinct(n int, at func(int) string) []string {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v := at(i)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
