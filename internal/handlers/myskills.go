package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"skillswap-web/internal/api"
	"skillswap-web/internal/models"
)

type skillForm struct {
	Name        string `validate:"required,max=30"`
	Description string `validate:"max=200"`
	IsOffered   bool
}

type mySkillsData struct {
	baseData
	Offered []models.Skill
	Wanted  []models.Skill
	Form    skillForm
	// EditID is set when the page renders with one skill's edit form open.
	EditID int64
}

// MySkills lists the viewer's listings split into the offered and wanted
// partitions. Each skill is exactly one of the two.
func (s *Server) MySkills(w http.ResponseWriter, r *http.Request) {
	var data mySkillsData
	if edit := r.URL.Query().Get("edit"); edit != "" {
		data.EditID, _ = strconv.ParseInt(edit, 10, 64)
	}
	s.renderMySkills(w, r, data)
}

func (s *Server) renderMySkills(w http.ResponseWriter, r *http.Request, data mySkillsData) {
	sess := currentSession(r)
	skills, err := s.API.GetUserSkills(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	data.Title = "My Skills"
	data.Session = sess
	data.Offered = data.Offered[:0]
	data.Wanted = data.Wanted[:0]
	for _, skill := range skills {
		if skill.IsOffered {
			data.Offered = append(data.Offered, skill)
		} else {
			data.Wanted = append(data.Wanted, skill)
		}
	}
	s.render(w, http.StatusOK, "myskills.html", data)
}

func (s *Server) CreateSkill(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	form := skillForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		IsOffered:   r.PostFormValue("isOffered") == "true",
	}

	if err := s.validate.Struct(form); err != nil {
		s.renderMySkills(w, r, mySkillsData{
			baseData: baseData{Fields: fieldErrors(err)},
			Form:     form,
		})
		return
	}

	key := sess.ID + ":create-skill"
	if !s.tryAcquire(key) {
		// A submission from this session is still in flight; drop the
		// duplicate instead of creating a second record.
		http.Redirect(w, r, "/my-skills", http.StatusSeeOther)
		return
	}
	defer s.release(key)

	_, err := s.API.CreateSkill(r.Context(), sess.Token, models.SkillInput{
		Name:        form.Name,
		Description: form.Description,
		IsOffered:   form.IsOffered,
	})
	if err != nil {
		s.renderMySkills(w, r, mySkillsData{
			baseData: baseData{Error: messageFor(err, "Failed to add skill.")},
			Form:     form,
		})
		return
	}
	http.Redirect(w, r, "/my-skills", http.StatusSeeOther)
}

func (s *Server) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}

	form := skillForm{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		IsOffered:   r.PostFormValue("isOffered") == "true",
	}
	if err := s.validate.Struct(form); err != nil {
		s.renderMySkills(w, r, mySkillsData{
			baseData: baseData{Fields: fieldErrors(err)},
			Form:     form,
			EditID:   id,
		})
		return
	}

	if _, err := s.API.UpdateSkill(r.Context(), sess.Token, id, models.SkillInput{
		Name:        form.Name,
		Description: form.Description,
		IsOffered:   form.IsOffered,
	}); err != nil {
		s.renderMySkills(w, r, mySkillsData{
			baseData: baseData{Error: messageFor(err, "Failed to update skill.")},
			Form:     form,
			EditID:   id,
		})
		return
	}
	http.Redirect(w, r, "/my-skills", http.StatusSeeOther)
}

func (s *Server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}

	if err := s.API.DeleteSkill(r.Context(), sess.Token, id); err != nil {
		s.renderMySkills(w, r, mySkillsData{
			baseData: baseData{Error: messageFor(err, "Failed to delete skill.")},
		})
		return
	}
	http.Redirect(w, r, "/my-skills", http.StatusSeeOther)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// messageFor prefers the backend's message, falling back when the
// failure never reached it.
func messageFor(err error, fallback string) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
