package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"invitebox/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(invitationController *controllers.InvitationController, rsvpController *controllers.RSVPController) *http.ServeMux {
	mux := http.NewServeMux()

	// Manager-facing routes
	mux.HandleFunc("POST /invitations", invitationController.CreateInvitation)
	mux.HandleFunc("GET /invitations/{invitationID}", invitationController.GetInvitation)
	mux.HandleFunc("PUT /invitations/{invitationID}", invitationController.UpdateInvitation)
	mux.HandleFunc("GET /invitations/{invitationID}/rsvps", rsvpController.ListRSVPs)
	mux.HandleFunc("GET /invitations/{invitationID}/rsvps/export", rsvpController.ExportRSVPs)
	mux.HandleFunc("GET /invitations/{invitationID}/summary", rsvpController.GetSummary)
	mux.HandleFunc("POST /invitations/{invitationID}/reminders", rsvpController.SendReminder)

	// Guest-facing routes: the share link carries only the invitation id
	mux.HandleFunc("GET /public/invitations/{invitationID}", invitationController.GetPublicInvitation)
	mux.HandleFunc("POST /public/invitations/{invitationID}/rsvps", rsvpController.SubmitRSVP)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
