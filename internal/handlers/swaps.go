package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"skillswap-web/internal/models"
	"skillswap-web/internal/swap"
)

type swapsData struct {
	baseData
	Box      string // all, sent, received
	Status   string // optional status filter
	Statuses []string
	Requests []models.SwapRequest
}

// SwapRequests lists the viewer's requests. Tabs pick the mailbox
// (all/sent/received); an optional status filter narrows further.
func (s *Server) SwapRequests(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)

	box := r.URL.Query().Get("box")
	switch box {
	case "sent", "received":
	default:
		box = "all"
	}
	status := r.URL.Query().Get("status")
	if !swap.ValidStatus(status) {
		status = ""
	}

	var requests []models.SwapRequest
	var err error
	switch {
	case status != "":
		requests, err = s.API.GetSwapRequestsByStatus(r.Context(), sess.Token, status)
	case box == "sent":
		requests, err = s.API.GetSentSwapRequests(r.Context(), sess.Token)
	case box == "received":
		requests, err = s.API.GetReceivedSwapRequests(r.Context(), sess.Token)
	default:
		requests, err = s.API.GetCurrentUserSwapRequests(r.Context(), sess.Token)
	}

	data := swapsData{
		baseData: baseData{Title: "Swap Requests", Session: sess},
		Box:      box,
		Status:   status,
		Statuses: swap.Statuses,
		Requests: requests,
	}
	if err != nil {
		data.Error = messageFor(err, "Failed to load swap requests.")
	}
	s.render(w, http.StatusOK, "swaps.html", data)
}

type swapDetailData struct {
	baseData
	Request  *models.SwapRequest
	Actions  []swap.Action
	Feedback []models.Feedback
	// CanReview is true when the viewer may still leave feedback.
	CanReview bool
}

// SwapRequestDetail renders one request with its status badge and the
// action buttons derived from the viewer's role and the current status.
func (s *Server) SwapRequestDetail(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}

	req, err := s.API.GetSwapRequestByID(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.renderSwapDetail(w, r, req, "")
}

func (s *Server) renderSwapDetail(w http.ResponseWriter, r *http.Request, req *models.SwapRequest, errMsg string) {
	sess := currentSession(r)
	actions := swap.AllowedActions(req.Status, sess.UserID, req.RequesterID, req.ProviderID)

	data := swapDetailData{
		baseData: baseData{
			Title:   fmt.Sprintf("Swap Request #%d", req.ID),
			Session: sess,
			Error:   errMsg,
		},
		Request: req,
	}
	for _, a := range actions {
		if a == swap.ActionLeaveFeedback {
			data.CanReview = true
		} else {
			data.Actions = append(data.Actions, a)
		}
	}

	if req.Status == swap.StatusCompleted {
		if fbs, err := s.API.GetFeedbackForSwapRequest(r.Context(), sess.Token, req.ID); err == nil {
			data.Feedback = fbs
			for _, fb := range fbs {
				if fb.ReviewerID == sess.UserID {
					data.CanReview = false
				}
			}
		}
	}

	s.render(w, http.StatusOK, "swap_detail.html", data)
}

type swapRequestForm struct {
	ProviderID       int64 `validate:"required"`
	RequestedSkillID int64 `validate:"required"`
	OfferedSkillID   int64 `validate:"required"`
	Message          string
}

// CreateSwapRequest handles the form on a user's public profile page.
func (s *Server) CreateSwapRequest(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	form := swapRequestForm{
		ProviderID:       formID(r, "providerId"),
		RequestedSkillID: formID(r, "requestedSkillId"),
		OfferedSkillID:   formID(r, "offeredSkillId"),
		Message:          r.PostFormValue("message"),
	}

	if err := s.validate.Struct(form); err != nil {
		msg := "Pick a skill to request and one to offer in return."
		if form.ProviderID == 0 {
			// No provider to render a page for; the message still shows.
			s.render(w, http.StatusOK, "error.html", struct {
				baseData
			}{baseData{Title: "Error", Session: sess, Error: msg}})
			return
		}
		s.renderUserPage(w, r, form.ProviderID, msg)
		return
	}

	key := sess.ID + ":create-swap"
	if !s.tryAcquire(key) {
		http.Redirect(w, r, fmt.Sprintf("/users/%d", form.ProviderID), http.StatusSeeOther)
		return
	}
	defer s.release(key)

	created, err := s.API.CreateSwapRequest(r.Context(), sess.Token, models.SwapRequestInput{
		ProviderID:       form.ProviderID,
		RequestedSkillID: form.RequestedSkillID,
		OfferedSkillID:   form.OfferedSkillID,
		Message:          form.Message,
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/swap-requests/%d", created.ID), http.StatusSeeOther)
}

// SwapRequestAction applies one lifecycle transition. The backend is the
// authority; the allowed-actions check here only keeps the UI honest,
// and a backend rejection still renders as a page message.
func (s *Server) SwapRequestAction(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}
	action := swap.Action(mux.Vars(r)["action"])

	req, err := s.API.GetSwapRequestByID(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	if !swap.Allowed(action, req.Status, sess.UserID, req.RequesterID, req.ProviderID) {
		s.renderSwapDetail(w, r, req, "That action is not available for this request.")
		return
	}

	var updated *models.SwapRequest
	switch action {
	case swap.ActionAccept:
		updated, err = s.API.AcceptSwapRequest(r.Context(), sess.Token, id)
	case swap.ActionReject:
		updated, err = s.API.RejectSwapRequest(r.Context(), sess.Token, id)
	case swap.ActionComplete:
		updated, err = s.API.CompleteSwapRequest(r.Context(), sess.Token, id)
	case swap.ActionCancel:
		updated, err = s.API.CancelSwapRequest(r.Context(), sess.Token, id)
	default:
		s.renderNotFound(w, r)
		return
	}
	if err != nil {
		s.renderSwapDetail(w, r, req, messageFor(err, "The request could not be updated."))
		return
	}
	s.renderSwapDetail(w, r, updated, "")
}

type feedbackForm struct {
	Rating  int    `validate:"required,gte=1,lte=5"`
	Comment string `validate:"max=500"`
}

// CreateFeedback handles the review form on a completed swap's detail
// page.
func (s *Server) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	id, err := pathID(r)
	if err != nil {
		s.renderNotFound(w, r)
		return
	}

	req, err := s.API.GetSwapRequestByID(r.Context(), sess.Token, id)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	rating, _ := strconv.Atoi(r.PostFormValue("rating"))
	form := feedbackForm{Rating: rating, Comment: r.PostFormValue("comment")}
	if err := s.validate.Struct(form); err != nil {
		s.renderSwapDetail(w, r, req, "Rating must be between 1 and 5.")
		return
	}

	// Feedback targets the other participant of the completed swap.
	recipient := req.RequesterID
	if sess.UserID == req.RequesterID {
		recipient = req.ProviderID
	}

	if _, err := s.API.CreateFeedback(r.Context(), sess.Token, models.FeedbackInput{
		RecipientID:   recipient,
		SwapRequestID: req.ID,
		Rating:        form.Rating,
		Comment:       form.Comment,
	}); err != nil {
		s.renderSwapDetail(w, r, req, messageFor(err, "Failed to submit feedback."))
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/swap-requests/%d", req.ID), http.StatusSeeOther)
}

func formID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(r.PostFormValue(field), 10, 64)
	return id
}
