package services

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"invitebox/internal/domain"
)

// testLogger is a no-op logger so tests don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeInvitationRepo is an in-memory InvitationRepository for tests.
type fakeInvitationRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Invitation
	createErr error
	getErr    error
	updateErr error
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{byID: make(map[string]*domain.Invitation)}
}

func (f *fakeInvitationRepo) Create(ctx context.Context, inv *domain.Invitation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *inv
	f.byID[inv.ID] = &cp
	return nil
}

func (f *fakeInvitationRepo) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if inv, ok := f.byID[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInvitationRepo) Update(ctx context.Context, inv *domain.Invitation) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *inv
	f.byID[inv.ID] = &cp
	return nil
}

// fakeRSVPRepo is an in-memory append-only RSVPRepository for tests.
type fakeRSVPRepo struct {
	mu        sync.Mutex
	byInvite  map[string][]*domain.RSVP
	appendErr error
	listErr   error
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{byInvite: make(map[string][]*domain.RSVP)}
}

func (f *fakeRSVPRepo) Append(ctx context.Context, rec *domain.RSVP) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *rec
	f.byInvite[rec.InvitationID] = append(f.byInvite[rec.InvitationID], &cp)
	return nil
}

func (f *fakeRSVPRepo) ListByInvitationID(ctx context.Context, invitationID string) ([]*domain.RSVP, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.RSVP, 0, len(f.byInvite[invitationID]))
	for _, r := range f.byInvite[invitationID] {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

// fakeNotifier records calls and returns canned results.
type fakeNotifier struct {
	configured   bool
	notifyResult domain.NotificationResult
	batchResult  domain.BatchNotificationResult

	notifyCalls    int
	lastInvitation *domain.Invitation
	lastRecord     *domain.RSVP
	lastRecipients []*domain.RSVP
	lastSubject    string
	lastMessage    string
}

func (f *fakeNotifier) NotifyRSVP(ctx context.Context, inv *domain.Invitation, rec *domain.RSVP) domain.NotificationResult {
	f.notifyCalls++
	f.lastInvitation = inv
	f.lastRecord = rec
	return f.notifyResult
}

func (f *fakeNotifier) SendReminder(ctx context.Context, inv *domain.Invitation, recipients []*domain.RSVP, subject, message string) domain.BatchNotificationResult {
	f.lastInvitation = inv
	f.lastRecipients = recipients
	f.lastSubject = subject
	f.lastMessage = message
	return f.batchResult
}

func (f *fakeNotifier) IsConfigured() bool { return f.configured }

// sentMail records one fakeMailer delivery.
type sentMail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// fakeMailer collects sends and can fail for chosen recipients.
type fakeMailer struct {
	sent    []sentMail
	sendErr error
	failFor map[string]error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentMail{To: to, Subject: subject, HTML: html, Text: text})
	return nil
}

// fakeRenderer returns deterministic content without touching real templates.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return templateName + " subject", "<p>" + templateName + "</p>", templateName + " body", nil
}
