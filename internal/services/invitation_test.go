package services

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvite/internal/domain"
)

func newTestInvitationService(cfg map[string]string) (domain.InvitationService, *fakeResponseRepo) {
	responses := &fakeResponseRepo{schema: domain.SchemaPerMemberDay, responded: map[string]bool{"FAMILY_001": true}}
	svc := NewInvitationService(
		&fakeFamilyRepo{families: []*domain.Family{shahFamily(), {ID: "FAMILY_002", Name: "Mehta", Members: []string{"Kiran"}}}},
		&fakeEventRepo{all: shahEvents(), byFamily: map[string][]*domain.Event{"FAMILY_001": shahEvents()}},
		responses,
		&fakeConfigRepo{values: cfg},
		&fakeItineraryRepo{
			itinerary: []*domain.ItineraryItem{
				{Day: "Day 2", Title: "Baraat", DisplayOrder: 1},
				{Day: "Day 1", Title: "Arrival", DisplayOrder: 2},
				{Day: "Day 2", Title: "Pheras", DisplayOrder: 3},
			},
			wardrobe: []*domain.WardrobeItem{
				{Day: "Day 1", EventName: "Haldi", DisplayOrder: 1},
			},
		},
		"https://wedding.example.com/",
		testTimeout,
	)
	return svc, responses
}

func TestInvitationService_GetInvitation(t *testing.T) {
	svc, _ := newTestInvitationService(map[string]string{"bride_name": "Riddhi"})
	ctx := context.Background()

	inv, err := svc.GetInvitation(ctx, "FAMILY_001")
	require.NoError(t, err)
	assert.Equal(t, "Shah", inv.Family.Name)
	assert.Len(t, inv.Events, 3)
	assert.Equal(t, []string{"Day 1", "Day 2"}, inv.Days)
	assert.True(t, inv.HasResponded)
	assert.Equal(t, "https://wedding.example.com/rsvp?id=FAMILY_001", inv.RSVPURL)
	assert.Equal(t, "per_member_day", inv.Schema)
	assert.Equal(t, "Riddhi", inv.Settings.BrideName)

	inv, err = svc.GetInvitation(ctx, "FAMILY_002")
	require.NoError(t, err)
	assert.False(t, inv.HasResponded)
	assert.Empty(t, inv.Events)
	assert.Empty(t, inv.Days)
}

func TestInvitationService_GetInvitation_Errors(t *testing.T) {
	svc, responses := newTestInvitationService(nil)
	ctx := context.Background()

	_, err := svc.GetInvitation(ctx, "")
	require.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.GetInvitation(ctx, "FAMILY_404")
	require.ErrorIs(t, err, domain.ErrNotFound)

	responses.readErr = errors.Join(domain.ErrStoreUnavailable, errors.New("timeout"))
	_, err = svc.GetInvitation(ctx, "FAMILY_001")
	require.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestInvitationService_SiteSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  map[string]string
		want func(t *testing.T, s *domain.SiteSettings)
	}{
		{
			name: "defaults",
			cfg:  nil,
			want: func(t *testing.T, s *domain.SiteSettings) {
				assert.Equal(t, DefaultBrideName, s.BrideName)
				assert.Equal(t, DefaultGroomName, s.GroomName)
				assert.Equal(t, DefaultWeddingDate, s.WeddingDate)
				assert.Equal(t, DefaultSiteTitle, s.SiteTitle)
				assert.Equal(t, DefaultGreetingText, s.GreetingText)
				assert.Equal(t, "", s.Location)
			},
		},
		{
			name: "blank values fall back",
			cfg:  map[string]string{"groom_name": "  ", "location": "Igatpuri"},
			want: func(t *testing.T, s *domain.SiteSettings) {
				assert.Equal(t, DefaultGroomName, s.GroomName)
				assert.Equal(t, "Igatpuri", s.Location)
				assert.Equal(t, "Igatpuri", s.Raw["location"])
			},
		},
		{
			name: "greeting markup",
			cfg:  map[string]string{"greeting_text": "Join **us**\nwith love"},
			want: func(t *testing.T, s *domain.SiteSettings) {
				assert.Equal(t, "<p>Join <strong>us</strong><br>\nwith love</p>", s.GreetingHTML)
			},
		},
		{
			name: "raw html is not rendered",
			cfg:  map[string]string{"greeting_text": "<script>alert(1)</script>"},
			want: func(t *testing.T, s *domain.SiteSettings) {
				assert.NotContains(t, s.GreetingHTML, "<script>")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestInvitationService(tt.cfg)
			s, err := svc.SiteSettings(context.Background())
			require.NoError(t, err)
			tt.want(t, s)
		})
	}
}

func TestInvitationService_ItineraryGroupsByDay(t *testing.T) {
	svc, _ := newTestInvitationService(nil)

	days, err := svc.Itinerary(context.Background())
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "Day 1", days[0].Day)
	assert.Equal(t, "Arrival", days[0].Items[0].Title)
	assert.Equal(t, "Day 2", days[1].Day)
	require.Len(t, days[1].Items, 2)
	assert.Equal(t, "Baraat", days[1].Items[0].Title)
	assert.Equal(t, "Pheras", days[1].Items[1].Title)

	wardrobe, err := svc.Wardrobe(context.Background())
	require.NoError(t, err)
	require.Len(t, wardrobe, 1)
	assert.Equal(t, "Haldi", wardrobe[0].Items[0].EventName)
}

func TestInvitationService_QRCode(t *testing.T) {
	svc, _ := newTestInvitationService(nil)

	b, err := svc.QRCode("FAMILY_001", 0)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, defaultQRSize, img.Bounds().Dx())

	_, err = svc.QRCode("", 128)
	require.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = svc.QRCode("FAMILY_001", maxQRSize+1)
	require.ErrorIs(t, err, domain.ErrBadRequest)
}
