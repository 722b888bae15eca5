package handlers

import (
	"net/http"

	"skillswap-web/internal/models"
)

type profileForm struct {
	Name         string `validate:"required"`
	Location     string
	Availability string
	ProfilePhoto string
	IsPublic     bool
}

type profileData struct {
	baseData
	User     *models.User
	Feedback []models.Feedback
	Rating   *float64
	Updated  bool
}

// Profile shows the viewer's own profile with the feedback they have
// received and their average rating.
func (s *Server) Profile(w http.ResponseWriter, r *http.Request) {
	s.renderProfile(w, r, profileData{})
}

func (s *Server) renderProfile(w http.ResponseWriter, r *http.Request, data profileData) {
	sess := currentSession(r)

	user, err := s.API.GetProfile(r.Context(), sess.Token)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	feedback, err := s.API.GetFeedbackForUser(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		data.Error = messageFor(err, "Failed to load feedback.")
	}
	rating, err := s.API.GetAverageRating(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		rating = nil
	}

	data.Title = "Profile"
	data.Session = sess
	data.User = user
	data.Feedback = feedback
	data.Rating = rating
	s.render(w, http.StatusOK, "profile.html", data)
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	form := profileForm{
		Name:         r.PostFormValue("name"),
		Location:     r.PostFormValue("location"),
		Availability: r.PostFormValue("availability"),
		ProfilePhoto: r.PostFormValue("profilePhoto"),
		IsPublic:     r.PostFormValue("isPublic") == "on",
	}

	if err := s.validate.Struct(form); err != nil {
		s.renderProfile(w, r, profileData{baseData: baseData{Fields: fieldErrors(err)}})
		return
	}

	_, err := s.API.UpdateProfile(r.Context(), sess.Token, models.ProfileInput{
		Name:         form.Name,
		Location:     form.Location,
		Availability: form.Availability,
		ProfilePhoto: form.ProfilePhoto,
		IsPublic:     form.IsPublic,
	})
	if err != nil {
		s.renderProfile(w, r, profileData{baseData: baseData{Error: messageFor(err, "Failed to update profile.")}})
		return
	}
	s.renderProfile(w, r, profileData{Updated: true})
}

type userPageData struct {
	baseData
	User      *models.User
	Offered   []models.Skill
	Wanted    []models.Skill
	Feedback  []models.Feedback
	Rating    *float64
	MyOffered []models.Skill // the viewer's offered skills, for the swap form
}

// UserPage shows another user's public profile with their listings, the
// feedback they received and a swap-request form targeting one of their
// offered skills.
func (s *Server) UserPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}
	s.renderUserPage(w, r, id, "")
}

func (s *Server) renderUserPage(w http.ResponseWriter, r *http.Request, id int64, errMsg string) {
	sess := currentSession(r)

	user, err := s.API.GetUserByID(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	offered, err := s.API.GetUserOfferedSkills(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	wanted, err := s.API.GetUserWantedSkills(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	data := userPageData{
		baseData: baseData{Title: user.Username, Session: sess, Error: errMsg},
		User:     user,
		Offered:  offered,
		Wanted:   wanted,
	}

	// Secondary panels degrade to empty rather than failing the page.
	if feedback, err := s.API.GetFeedbackForUser(r.Context(), sess.Token, id); err == nil {
		data.Feedback = feedback
	}
	if rating, err := s.API.GetAverageRating(r.Context(), sess.Token, id); err == nil {
		data.Rating = rating
	}
	if id != sess.UserID {
		if mine, err := s.API.GetUserOfferedSkills(r.Context(), sess.Token, sess.UserID); err == nil {
			data.MyOffered = mine
		}
	}

	s.render(w, http.StatusOK, "user.html", data)
}
