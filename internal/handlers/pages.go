package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kunukumikhil-byte/being-connected1/internal/middleware"
	"github.com/kunukumikhil-byte/being-connected1/internal/models"
	"github.com/kunukumikhil-byte/being-connected1/internal/store"
	"github.com/kunukumikhil-byte/being-connected1/internal/ws"
)

type PageHandler struct {
	Store store.Store
}

type dashboardData struct {
	Name  string
	Users []models.User
}

// Dashboard lists every user except the caller, in id order.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFrom(r.Context())

	users, err := h.Store.ListOtherUsers(sess.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "dashboard.html", dashboardData{Name: sess.Name, Users: users})
}

type profileData struct {
	Name    string
	Profile *models.Profile
}

// Profile renders the caller's profile on GET and upserts it on POST. The
// save replaces every editable field; a user never ends up with more than one
// profile row.
func (h *PageHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFrom(r.Context())

	var profile *models.Profile
	if r.Method == http.MethodPost {
		fields := store.ProfileFields{
			About:       r.FormValue("about"),
			LinkedIn:    r.FormValue("linkedin"),
			GitHub:      r.FormValue("github"),
			SkillsTeach: r.FormValue("skills_teach"),
			SkillsLearn: r.FormValue("skills_learn"),
		}
		saved, err := h.Store.SaveProfile(sess.UserID, fields)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		profile = saved
	} else {
		existing, err := h.Store.GetProfile(sess.UserID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		profile = existing // nil when none saved yet
	}

	render(w, "profile.html", profileData{Name: sess.Name, Profile: profile})
}

type chatData struct {
	Name       string
	UserID     int
	ReceiverID int
	Room       string
	Messages   []models.Message
}

// Chat renders the history between the caller and the receiver plus the room
// id the browser joins over the websocket.
func (h *PageHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFrom(r.Context())

	receiverID, err := strconv.Atoi(mux.Vars(r)["receiverID"])
	if err != nil {
		http.NotFound(w, r)
		return
	}

	messages, err := h.Store.MessagesBetween(sess.UserID, receiverID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	render(w, "chat.html", chatData{
		Name:       sess.Name,
		UserID:     sess.UserID,
		ReceiverID: receiverID,
		Room:       ws.RoomID(sess.UserID, receiverID),
		Messages:   messages,
	})
}
