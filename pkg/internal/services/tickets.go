package services

import (
	"fmt"
	"time"

	"git.solsynth.dev/hypernet/hearing/pkg/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TicketClaims authorize one websocket connection to join the listed groups.
type TicketClaims struct {
	ConferenceID  string   `json:"conference_id"`
	ParticipantID string   `json:"participant_id"`
	Groups        []string `json:"groups"`
	jwt.RegisteredClaims
}

type TicketIssuer struct {
	secret   []byte
	duration time.Duration
}

func NewTicketIssuer(secret string, duration time.Duration) *TicketIssuer {
	return &TicketIssuer{secret: []byte(secret), duration: duration}
}

// Issue grants the participant's own group plus the role-wide groups of their role.
func (v *TicketIssuer) Issue(conference models.Conference, participant models.Participant) (string, error) {
	claims := TicketClaims{
		ConferenceID:  conference.ID,
		ParticipantID: participant.ID,
		Groups:        append([]string{participant.GroupName()}, participant.RoleGroups()...),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "hearing",
			Subject:   participant.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tks, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign ticket: %v", err)
	}
	return tks, nil
}

func (v *TicketIssuer) Parse(tk string) (TicketClaims, error) {
	var claims TicketClaims
	token, err := jwt.ParseWithClaims(tk, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Method)
		}
		return v.secret, nil
	})
	if err != nil {
		return claims, err
	}
	if !token.Valid {
		return claims, fmt.Errorf("invalid ticket")
	}
	return claims, nil
}
