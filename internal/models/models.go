// Package models mirrors the records returned by the SkillSwap backend.
// All entities are backend-owned; this client only holds partial copies
// for the duration of a page render.
package models

import "time"

// AuthResponse is the payload of POST /auth/login and /auth/register.
type AuthResponse struct {
	Token    string `json:"token"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type Skill struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsOffered   bool   `json:"isOffered"`
	IsApproved  bool   `json:"isApproved"`
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
}

// SkillInput is the body of POST /skills and PUT /skills/{id}.
type SkillInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsOffered   bool   `json:"isOffered"`
}

type SwapRequest struct {
	ID                 int64      `json:"id"`
	RequesterID        int64      `json:"requesterId"`
	RequesterUsername  string     `json:"requesterUsername"`
	ProviderID         int64      `json:"providerId"`
	ProviderUsername   string     `json:"providerUsername"`
	RequestedSkillID   int64      `json:"requestedSkillId"`
	RequestedSkillName string     `json:"requestedSkillName"`
	OfferedSkillID     int64      `json:"offeredSkillId"`
	OfferedSkillName   string     `json:"offeredSkillName"`
	RequestDate        time.Time  `json:"requestDate"`
	ResponseDate       *time.Time `json:"responseDate"`
	Status             string     `json:"status"`
	Message            string     `json:"message"`
}

// SwapRequestInput is the body of POST /swap-requests. The server fills
// in the requester from the bearer token and stamps requestDate itself.
type SwapRequestInput struct {
	ProviderID       int64  `json:"providerId"`
	RequestedSkillID int64  `json:"requestedSkillId"`
	OfferedSkillID   int64  `json:"offeredSkillId"`
	Message          string `json:"message,omitempty"`
}

type Feedback struct {
	ID                int64     `json:"id"`
	ReviewerID        int64     `json:"reviewerId"`
	ReviewerUsername  string    `json:"reviewerUsername"`
	RecipientID       int64     `json:"recipientId"`
	RecipientUsername string    `json:"recipientUsername"`
	SwapRequestID     int64     `json:"swapRequestId"`
	Rating            int       `json:"rating"`
	Comment           string    `json:"comment"`
	CreatedAt         time.Time `json:"createdAt"`
}

// FeedbackInput is the body of POST /feedback and PUT /feedback/{id}.
type FeedbackInput struct {
	RecipientID   int64  `json:"recipientId"`
	SwapRequestID int64  `json:"swapRequestId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	ProfilePhoto string `json:"profilePhoto"`
	IsPublic     bool   `json:"isPublic"`
}

// ProfileInput is the body of PUT /users/profile.
type ProfileInput struct {
	Name         string `json:"name"`
	Location     string `json:"location,omitempty"`
	Availability string `json:"availability,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	IsPublic     bool   `json:"isPublic"`
}

// RegisterInput is the body of POST /auth/register.
type RegisterInput struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Name         string `json:"name"`
	Location     string `json:"location,omitempty"`
	Availability string `json:"availability,omitempty"`
	IsPublic     bool   `json:"isPublic"`
}
