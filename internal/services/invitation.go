package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"weddinginvite/internal/domain"
)

// Presentation defaults for Config keys that are absent or empty.
const (
	DefaultBrideName    = "Bride"
	DefaultGroomName    = "Groom"
	DefaultWeddingDate  = "2026-03-04 11:00:00"
	DefaultSiteTitle    = "Our Wedding"
	DefaultGreetingText = "Please join us as we come together in joy to celebrate love and new beginnings."
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type invitationService struct {
	familyRepo     domain.FamilyRepository
	eventRepo      domain.EventRepository
	responseRepo   domain.ResponseRepository
	configRepo     domain.ConfigRepository
	itineraryRepo  domain.ItineraryRepository
	baseURL        string
	markdown       goldmark.Markdown
	contextTimeout time.Duration
}

func NewInvitationService(familyRepo domain.FamilyRepository,
	eventRepo domain.EventRepository,
	responseRepo domain.ResponseRepository,
	configRepo domain.ConfigRepository,
	itineraryRepo domain.ItineraryRepository,
	baseURL string,
	timeout time.Duration,
) domain.InvitationService {
	return &invitationService{
		familyRepo:    familyRepo,
		eventRepo:     eventRepo,
		responseRepo:  responseRepo,
		configRepo:    configRepo,
		itineraryRepo: itineraryRepo,
		baseURL:       strings.TrimRight(baseURL, "/"),
		// Raw HTML in sheet cells is not rendered; single newlines become <br>.
		markdown:       goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
		contextTimeout: timeout,
	}
}

func (s *invitationService) GetInvitation(ctx context.Context, familyID string) (*domain.Invitation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	familyID = strings.TrimSpace(familyID)
	if familyID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrBadRequest)
	}
	family, ok, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}

	events, err := s.eventRepo.ListForFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list events for family: %w", err)
	}
	responded, err := s.responseRepo.HasFamilyResponded(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("check family responded: %w", err)
	}
	settings, err := s.siteSettings(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Invitation{
		Family:       family,
		Events:       events,
		Days:         domain.InvitedDays(events),
		Settings:     settings,
		HasResponded: responded,
		RSVPURL:      s.RSVPURL(family.ID),
		Schema:       string(s.responseRepo.Schema()),
	}, nil
}

func (s *invitationService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *invitationService) SiteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.siteSettings(ctx)
}

func (s *invitationService) siteSettings(ctx context.Context) (*domain.SiteSettings, error) {
	cfg, err := s.configRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get config: %w", err)
	}
	get := func(key, def string) string {
		if v := strings.TrimSpace(cfg[key]); v != "" {
			return v
		}
		return def
	}

	settings := &domain.SiteSettings{
		BrideName:    get("bride_name", DefaultBrideName),
		GroomName:    get("groom_name", DefaultGroomName),
		WeddingDate:  get("wedding_date", DefaultWeddingDate),
		Location:     get("location", ""),
		Hashtag:      get("hashtag", ""),
		SiteTitle:    get("site_title", DefaultSiteTitle),
		GreetingText: get("greeting_text", DefaultGreetingText),
		RSVPDeadline: get("rsvp_deadline", ""),
		CheckInInfo:  get("check_in_info", ""),
		CheckOutInfo: get("check_out_info", ""),
		Raw:          cfg,
	}
	greeting, err := s.renderText(settings.GreetingText)
	if err != nil {
		return nil, fmt.Errorf("render greeting: %w", err)
	}
	settings.GreetingHTML = greeting
	return settings, nil
}

// renderText converts sheet text with **bold** markers and line breaks to HTML.
func (s *invitationService) renderText(text string) (string, error) {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func (s *invitationService) Itinerary(ctx context.Context) ([]*domain.DaySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, err := s.itineraryRepo.ListItinerary(ctx)
	if err != nil {
		return nil, fmt.Errorf("list itinerary: %w", err)
	}
	byDay := groupByDay(items, func(it *domain.ItineraryItem) string { return it.Day })
	schedule := make([]*domain.DaySchedule, 0, len(byDay))
	for _, g := range byDay {
		schedule = append(schedule, &domain.DaySchedule{Day: g.day, Items: g.items})
	}
	return schedule, nil
}

func (s *invitationService) Wardrobe(ctx context.Context) ([]*domain.DayWardrobe, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	items, err := s.itineraryRepo.ListWardrobe(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wardrobe: %w", err)
	}
	byDay := groupByDay(items, func(it *domain.WardrobeItem) string { return it.Day })
	wardrobe := make([]*domain.DayWardrobe, 0, len(byDay))
	for _, g := range byDay {
		wardrobe = append(wardrobe, &domain.DayWardrobe{Day: g.day, Items: g.items})
	}
	return wardrobe, nil
}

type dayGroup[T any] struct {
	day   string
	items []T
}

// groupByDay keeps item order within a day and sorts days ascending.
func groupByDay[T any](items []T, day func(T) string) []dayGroup[T] {
	index := make(map[string]int)
	var groups []dayGroup[T]
	for _, it := range items {
		d := day(it)
		i, ok := index[d]
		if !ok {
			i = len(groups)
			index[d] = i
			groups = append(groups, dayGroup[T]{day: d})
		}
		groups[i].items = append(groups[i].items, it)
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].day < groups[j].day })
	return groups
}

func (s *invitationService) RSVPURL(familyID string) string {
	return s.baseURL + "/rsvp?id=" + url.QueryEscape(familyID)
}

// QRCode renders the family's RSVP link as a PNG. size <= 0 selects the default.
func (s *invitationService) QRCode(familyID string, size int) ([]byte, error) {
	familyID = strings.TrimSpace(familyID)
	if familyID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrBadRequest)
	}
	if size <= 0 {
		size = defaultQRSize
	}
	if size > maxQRSize {
		return nil, fmt.Errorf("%w: size must be at most %d", domain.ErrBadRequest, maxQRSize)
	}
	png, err := qrcode.Encode(s.RSVPURL(familyID), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
