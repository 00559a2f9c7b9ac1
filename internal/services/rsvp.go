package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

type rsvpService struct {
	familyRepo     domain.FamilyRepository
	eventRepo      domain.EventRepository
	responseRepo   domain.ResponseRepository
	notifier       domain.NotificationService
	notifyEmail    string
	rsvpURL        func(familyID string) string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// RSVPServiceOptions configures the optional host notification sent after a submission.
type RSVPServiceOptions struct {
	Notifier    domain.NotificationService
	NotifyEmail string
	// RSVPURL builds the family's link for the notification body.
	RSVPURL func(familyID string) string
}

func NewRSVPService(familyRepo domain.FamilyRepository,
	eventRepo domain.EventRepository,
	responseRepo domain.ResponseRepository,
	opts RSVPServiceOptions,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RSVPService {
	return &rsvpService{
		familyRepo:     familyRepo,
		eventRepo:      eventRepo,
		responseRepo:   responseRepo,
		notifier:       opts.Notifier,
		notifyEmail:    opts.NotifyEmail,
		rsvpURL:        opts.RSVPURL,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *rsvpService) Submit(ctx context.Context, sub *domain.RSVPSubmission) (*domain.RSVPResult, error) {
	if err := s.validate(sub); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	familyID := strings.TrimSpace(sub.FamilyID)
	found, ok, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	family := *found
	if family.Name == "" {
		family.Name = strings.TrimSpace(sub.FamilyName)
	}

	events, err := s.eventRepo.ListForFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("list events for family: %w", err)
	}

	var responses []domain.Response
	var summary []string
	switch s.responseRepo.Schema() {
	case domain.SchemaPerMemberDay:
		responses, summary = s.expandPerMemberDay(ctx, &family, events, sub)
	default:
		responses, summary = expandPerEvent(&family, events, sub.EventSelections)
	}

	written := 0
	for _, resp := range responses {
		if err := s.responseRepo.Save(ctx, resp); err != nil {
			if written > 0 {
				return nil, fmt.Errorf("save response %d of %d: %w: %w", written+1, len(responses), domain.ErrPartialWrite, err)
			}
			return nil, fmt.Errorf("save response: %w", err)
		}
		written++
	}

	s.logger.InfoContext(ctx, "rsvp saved", "family_id", family.ID, "rows", written)
	s.notify(ctx, &family, summary)

	return &domain.RSVPResult{FamilyID: family.ID, RowsWritten: written}, nil
}

func (s *rsvpService) validate(sub *domain.RSVPSubmission) error {
	if sub == nil {
		return fmt.Errorf("%w: submission is required", domain.ErrBadRequest)
	}
	if strings.TrimSpace(sub.FamilyID) == "" {
		return fmt.Errorf("%w: family_id is required", domain.ErrBadRequest)
	}
	if !sub.HasSelections() {
		return fmt.Errorf("%w: selections is required", domain.ErrBadRequest)
	}
	if s.responseRepo.Schema() == domain.SchemaPerMemberDay && sub.InvitedDays == nil {
		return fmt.Errorf("%w: invited_days is required", domain.ErrBadRequest)
	}
	return nil
}

// expandPerEvent builds one row per invited event that has selections. Members are taken in
// family order and counted once; selections for names outside the family are ignored.
func expandPerEvent(family *domain.Family, events []*domain.Event, selections map[string]map[string]string) ([]domain.Response, []string) {
	members := family.UniqueMembers()
	var responses []domain.Response
	var summary []string
	for _, ev := range events {
		sel, ok := selections[ev.ID]
		if !ok {
			sel, ok = selections["event_"+ev.ID]
		}
		if !ok || sel == nil {
			continue
		}

		count := 0
		parts := make([]string, 0, len(members))
		for _, member := range members {
			status, ok := sel[member]
			if !ok {
				continue
			}
			answer := "No"
			if status == domain.StatusAttending {
				count++
				answer = "Yes"
			}
			parts = append(parts, member+": "+answer)
		}

		resp := &domain.PerEventResponse{
			FamilyID:        family.ID,
			FamilyName:      family.Name,
			EventID:         ev.ID,
			EventName:       ev.Name,
			AttendingCount:  count,
			MemberResponses: strings.Join(parts, ", "),
		}
		responses = append(responses, resp)
		summary = append(summary, fmt.Sprintf("%s: %d attending (%s)", ev.Name, count, resp.MemberResponses))
	}
	return responses, summary
}

// expandPerMemberDay builds one row per member per invited day. The days come from the family's
// invited events; the client's list is only compared against them.
func (s *rsvpService) expandPerMemberDay(ctx context.Context, family *domain.Family, events []*domain.Event, sub *domain.RSVPSubmission) ([]domain.Response, []string) {
	days := domain.InvitedDays(events)
	if !sameDays(days, sub.InvitedDays) {
		s.logger.DebugContext(ctx, "client invited_days differ from invited events",
			"family_id", family.ID, "client", sub.InvitedDays, "resolved", days)
	}

	var responses []domain.Response
	var summary []string
	for _, member := range family.UniqueMembers() {
		status, ok := sub.MemberSelections[member]
		if !ok {
			continue
		}
		attending := status == domain.StatusAttending
		for _, day := range days {
			responses = append(responses, &domain.PerMemberDayResponse{
				FamilyID:   family.ID,
				FamilyName: family.Name,
				MemberName: member,
				Day:        day,
				Attending:  attending,
			})
		}
		answer := "No"
		if attending {
			answer = "Yes"
		}
		summary = append(summary, member+": "+answer)
	}
	return responses, summary
}

func sameDays(a, b []string) bool {
	x := slices.Clone(a)
	y := make([]string, 0, len(b))
	for _, d := range b {
		y = append(y, strings.TrimSpace(d))
	}
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}

func (s *rsvpService) notify(ctx context.Context, family *domain.Family, lines []string) {
	if s.notifier == nil || s.notifyEmail == "" {
		return
	}
	data := &domain.RSVPReceivedEmailData{
		Email:      s.notifyEmail,
		FamilyID:   family.ID,
		FamilyName: family.Name,
		Lines:      lines,
	}
	if s.rsvpURL != nil {
		data.RSVPURL = s.rsvpURL(family.ID)
	}
	if err := s.notifier.RSVPReceived(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "rsvp notification failed", "family_id", family.ID, "err", err)
	}
}
