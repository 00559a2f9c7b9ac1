package controllers

import (
	"context"
	"io"
	"log/slog"

	"weddinginvite/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRSVPService implements domain.RSVPService for handler tests.
type fakeRSVPService struct {
	result  *domain.RSVPResult
	err     error
	lastSub *domain.RSVPSubmission
	calls   int
}

func (f *fakeRSVPService) Submit(ctx context.Context, sub *domain.RSVPSubmission) (*domain.RSVPResult, error) {
	f.calls++
	f.lastSub = sub
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeInvitationService implements domain.InvitationService for handler tests.
type fakeInvitationService struct {
	invitation *domain.Invitation
	events     []*domain.Event
	settings   *domain.SiteSettings
	itinerary  []*domain.DaySchedule
	wardrobe   []*domain.DayWardrobe
	png        []byte
	err        error
	lastID     string
	lastSize   int
}

func (f *fakeInvitationService) GetInvitation(ctx context.Context, familyID string) (*domain.Invitation, error) {
	f.lastID = familyID
	return f.invitation, f.err
}

func (f *fakeInvitationService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeInvitationService) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	return f.settings, f.err
}

func (f *fakeInvitationService) Itinerary(ctx context.Context) ([]*domain.DaySchedule, error) {
	return f.itinerary, f.err
}

func (f *fakeInvitationService) Wardrobe(ctx context.Context) ([]*domain.DayWardrobe, error) {
	return f.wardrobe, f.err
}

func (f *fakeInvitationService) RSVPURL(familyID string) string {
	return "https://wedding.example.com/rsvp?id=" + familyID
}

func (f *fakeInvitationService) QRCode(familyID string, size int) ([]byte, error) {
	f.lastID, f.lastSize = familyID, size
	return f.png, f.err
}
