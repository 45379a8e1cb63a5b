package models

type HearingLayout string

const (
	HearingLayoutDynamic      = HearingLayout("Dynamic")
	HearingLayoutOnePlus7     = HearingLayout("OnePlus7")
	HearingLayoutTwoPlus21    = HearingLayout("TwoPlus21")
	HearingLayoutNineEqual    = HearingLayout("NineEqual")
	HearingLayoutSixteenEqual = HearingLayout("SixteenEqual")
)

var HearingLayouts = []HearingLayout{
	HearingLayoutDynamic,
	HearingLayoutOnePlus7,
	HearingLayoutTwoPlus21,
	HearingLayoutNineEqual,
	HearingLayoutSixteenEqual,
}

// RecommendedLayout is the layout used until a host picks one explicitly.
func (v Conference) RecommendedLayout() HearingLayout {
	count := len(v.Endpoints)
	for _, participant := range v.Participants {
		if participant.IsHost() || participant.Role == RoleVideoHearingsOfficer || participant.Role == RoleQuickLinkObserver {
			continue
		}
		count++
	}

	switch {
	case count >= 10:
		return HearingLayoutTwoPlus21
	case count >= 5:
		return HearingLayoutOnePlus7
	default:
		return HearingLayoutDynamic
	}
}

// GetHearingLayout returns the explicit layout when one has been chosen.
func (v Conference) GetHearingLayout() HearingLayout {
	if v.HearingLayout != nil {
		return *v.HearingLayout
	}
	return v.RecommendedLayout()
}
