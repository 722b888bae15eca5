package handlers

import (
	"net/http"
	"strings"

	"skillswap-web/internal/models"
	"skillswap-web/internal/responses"
)

// skillVocabulary backs the autocomplete widget only; result correctness
// always comes from the backend search endpoints.
var skillVocabulary = []string{
	"Java", "React", "HTML", "CSS", "JavaScript", "Python",
	"C", "C++", "C#", "PHP", "Ruby", "Swift", "Kotlin", "Go", "Rust",
	"TypeScript", "Angular", "Vue.js", "Node.js", "Express.js",
	"Django", "Flask", "Spring", "Hibernate",
	"SQL", "MongoDB", "PostgreSQL", "MySQL", "Firebase", "AWS",
	"Docker", "Kubernetes", "Git", "DevOps",
	"Machine Learning", "Artificial Intelligence", "Data Science", "Blockchain",
	"UI/UX Design", "Graphic Design", "Photography", "Video Editing",
	"Content Writing", "Digital Marketing", "SEO", "Social Media Marketing",
}

const maxSuggestions = 5

// Suggestions returns up to maxSuggestions vocabulary entries containing
// q, case-insensitively. Pure lookup, no backend call.
func Suggestions(q string) []string {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil
	}
	lower := strings.ToLower(q)
	var out []string
	for _, skill := range skillVocabulary {
		if strings.Contains(strings.ToLower(skill), lower) {
			out = append(out, skill)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Suggest is the JSON autocomplete endpoint behind the search box.
func (s *Server) Suggest(w http.ResponseWriter, r *http.Request) {
	responses.SendSuccessResponse(w, http.StatusOK, Suggestions(r.URL.Query().Get("q")))
}

type searchData struct {
	baseData
	Query    string
	Scope    string
	Searched bool
	Results  []models.Skill
}

// Search runs one backend call chosen by scope. The form submits with
// GET, so the query lives in the URL and a shared link re-runs the
// search on load.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	query := strings.TrimSpace(r.URL.Query().Get("skill"))
	scope := r.URL.Query().Get("type")
	switch scope {
	case "offered", "wanted":
	default:
		scope = "all"
	}

	data := searchData{
		baseData: baseData{Title: "Search", Session: sess},
		Query:    query,
		Scope:    scope,
	}

	if query == "" {
		if r.URL.Query().Has("skill") {
			data.Error = "Please enter a skill to search for"
		}
		s.render(w, http.StatusOK, "search.html", data)
		return
	}

	var results []models.Skill
	var err error
	switch scope {
	case "offered":
		results, err = s.API.SearchOfferedSkills(r.Context(), sess.Token, query)
	case "wanted":
		results, err = s.API.SearchWantedSkills(r.Context(), sess.Token, query)
	default:
		results, err = s.API.SearchSkills(r.Context(), sess.Token, query)
	}
	if err != nil {
		data.Error = "Failed to search skills. Please try again later."
		s.render(w, http.StatusOK, "search.html", data)
		return
	}

	data.Searched = true
	data.Results = results
	s.render(w, http.StatusOK, "search.html", data)
}
