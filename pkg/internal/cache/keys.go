package cache

import "fmt"

func ConferenceKey(conferenceID string) string {
	return fmt.Sprintf("conference#%s", conferenceID)
}

func VideoControlKey(conferenceID string) string {
	return fmt.Sprintf("video-control#%s", conferenceID)
}

func InvitationKey(invitationID string) string {
	return fmt.Sprintf("consultation-invitation#%s", invitationID)
}

func InvitationResponseKey(invitationID, participantID string) string {
	return fmt.Sprintf("consultation-invitation#%s#response#%s", invitationID, participantID)
}

func ConferenceTag(conferenceID string) string {
	return fmt.Sprintf("conference#%s", conferenceID)
}
