package domain

import "context"

// StatusAttending is the only selection value counted as attending.
const StatusAttending = "attending"

// RSVPSubmission is a client-submitted RSVP.
//
// EventSelections holds event ID -> member -> status (per-event schema); MemberSelections holds
// member -> status applied to every invited day (per-member-day schema). A submission carries
// whichever shape the client sent.
type RSVPSubmission struct {
	FamilyID         string
	FamilyName       string
	EventSelections  map[string]map[string]string
	MemberSelections map[string]string
	InvitedDays      []string
}

// HasSelections reports whether any selections structure was supplied.
func (s *RSVPSubmission) HasSelections() bool {
	return s.EventSelections != nil || s.MemberSelections != nil
}

// RSVPResult describes a completed submission.
// swagger:model RSVPResult
type RSVPResult struct {
	FamilyID    string `json:"family_id"`
	RowsWritten int    `json:"rows_written"`
}

// RSVPService validates and persists RSVP submissions.
type RSVPService interface {
	Submit(ctx context.Context, sub *RSVPSubmission) (*RSVPResult, error)
}

// Invitation is everything the personalized RSVP page needs.
// swagger:model Invitation
type Invitation struct {
	Family       *Family       `json:"family"`
	Events       []*Event      `json:"events"`
	Days         []string      `json:"days"`
	Settings     *SiteSettings `json:"settings"`
	HasResponded bool          `json:"has_responded"`
	RSVPURL      string        `json:"rsvp_url"`
	Schema       string        `json:"schema"`
}

// SiteSettings is the Config table with presentation defaults applied.
// swagger:model SiteSettings
type SiteSettings struct {
	BrideName    string            `json:"bride_name"`
	GroomName    string            `json:"groom_name"`
	WeddingDate  string            `json:"wedding_date"`
	Location     string            `json:"location"`
	Hashtag      string            `json:"hashtag"`
	SiteTitle    string            `json:"site_title"`
	GreetingText string            `json:"greeting_text"`
	GreetingHTML string            `json:"greeting_html"`
	RSVPDeadline string            `json:"rsvp_deadline"`
	CheckInInfo  string            `json:"check_in_info"`
	CheckOutInfo string            `json:"check_out_info"`
	Raw          map[string]string `json:"raw"`
}

// DaySchedule groups itinerary items of one day.
// swagger:model DaySchedule
type DaySchedule struct {
	Day   string           `json:"day"`
	Items []*ItineraryItem `json:"items"`
}

// DayWardrobe groups wardrobe guidance of one day.
// swagger:model DayWardrobe
type DayWardrobe struct {
	Day   string          `json:"day"`
	Items []*WardrobeItem `json:"items"`
}

// InvitationService serves the read side of the site.
type InvitationService interface {
	GetInvitation(ctx context.Context, familyID string) (*Invitation, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	SiteSettings(ctx context.Context) (*SiteSettings, error)
	Itinerary(ctx context.Context) ([]*DaySchedule, error)
	Wardrobe(ctx context.Context) ([]*DayWardrobe, error)
	RSVPURL(familyID string) string
	QRCode(familyID string, size int) ([]byte, error)
}

// InviteLink pairs a family with its personalized RSVP URL.
type InviteLink struct {
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
	URL        string `json:"url"`
}

// AdminService performs out-of-band maintenance on the workbook.
type AdminService interface {
	SetupSheets(ctx context.Context) error
	// RegenerateFamilyIDs returns the name -> ID mapping and how many rows changed.
	RegenerateFamilyIDs(ctx context.Context) (map[string]string, int, error)
	GenerateInviteLinks(ctx context.Context, baseURL string) ([]InviteLink, error)
}
