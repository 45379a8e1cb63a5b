package models

import (
	"strings"

	"github.com/samber/lo"
)

type Role string

const (
	RoleNone                 = Role("None")
	RoleJudge                = Role("Judge")
	RoleIndividual           = Role("Individual")
	RoleRepresentative       = Role("Representative")
	RoleJudicialOfficeHolder = Role("JudicialOfficeHolder")
	RoleStaffMember          = Role("StaffMember")
	RoleVideoHearingsOfficer = Role("VideoHearingsOfficer")
	RoleQuickLinkParticipant = Role("QuickLinkParticipant")
	RoleQuickLinkObserver    = Role("QuickLinkObserver")
)

type ParticipantStatus string

const (
	ParticipantStatusNone           = ParticipantStatus("None")
	ParticipantStatusNotSignedIn    = ParticipantStatus("NotSignedIn")
	ParticipantStatusJoining        = ParticipantStatus("Joining")
	ParticipantStatusAvailable      = ParticipantStatus("Available")
	ParticipantStatusInHearing      = ParticipantStatus("InHearing")
	ParticipantStatusInConsultation = ParticipantStatus("InConsultation")
	ParticipantStatusDisconnected   = ParticipantStatus("Disconnected")
)

type LinkType string

const LinkTypeInterpreter = LinkType("Interpreter")

type LinkedParticipant struct {
	LinkedID string   `json:"linked_id"`
	LinkType LinkType `json:"link_type"`
}

type Participant struct {
	ID                 string              `json:"id"`
	Username           string              `json:"username"`
	DisplayName        string              `json:"display_name"`
	Role               Role                `json:"role"`
	HearingRole        string              `json:"hearing_role"`
	Status             ParticipantStatus   `json:"status"`
	CurrentRoom        string              `json:"current_room"`
	LinkedParticipants []LinkedParticipant `json:"linked_participants"`
}

// IsHost reports whether the participant may change layout and other hearing controls.
func (v Participant) IsHost() bool {
	return v.Role == RoleJudge || v.Role == RoleStaffMember
}

func (v Participant) GroupName() string {
	return strings.ToLower(v.Username)
}

func (v Participant) HasLinks() bool {
	return len(v.LinkedParticipants) > 0
}

// InterpreterLinkIDs returns the ids that have to agree with this participant before a room transfer.
func (v Participant) InterpreterLinkIDs() []string {
	return lo.FilterMap(v.LinkedParticipants, func(item LinkedParticipant, _ int) (string, bool) {
		return item.LinkedID, item.LinkType == LinkTypeInterpreter
	})
}

// RoleGroups are the well-known groups a participant's connection also joins.
func (v Participant) RoleGroups() []string {
	switch v.Role {
	case RoleVideoHearingsOfficer:
		return []string{GroupVhOfficers}
	case RoleStaffMember:
		return []string{GroupStaffMembers}
	default:
		return nil
	}
}
