package models

// TravelDay is one day of a structured itinerary attached to an offer.
type TravelDay struct {
	Day        int           `bson:"day" json:"day"`
	Title      string        `bson:"title" json:"title"`
	Activities []DayActivity `bson:"activities" json:"activities"`
}

type DayActivity struct {
	Time        string `bson:"time" json:"time"`
	Description string `bson:"description" json:"description"`
}

// PartnerOffer is a partner agency's priced proposal against a request.
// A request holds at most one offer per partner; resubmission revises the
// existing entry in place, preserving its ID.
type PartnerOffer struct {
	ID                 string      `bson:"id" json:"id"`
	PartnerID          string      `bson:"partnerId" json:"partnerId"`
	PartnerName        string      `bson:"partnerName" json:"partnerName"`
	PartnerRating      float64     `bson:"partnerRating" json:"partnerRating"`
	Price              float64     `bson:"price" json:"price"`
	Details            string      `bson:"details" json:"details"`
	CancellationPolicy string      `bson:"cancellationPolicy" json:"cancellationPolicy"`
	ResponseTime       int         `bson:"responseTime" json:"responseTime"` // minutes from dispatch to first bid
	IsRejected         bool        `bson:"isRejected" json:"isRejected"`
	WasRevised         bool        `bson:"wasRevised" json:"wasRevised"`
	RevisionNote       string      `bson:"revisionNote,omitempty" json:"revisionNote,omitempty"`
	Itinerary          []TravelDay `bson:"itinerary,omitempty" json:"itinerary,omitempty"`
}

// PresentedOffer is a PartnerOffer shortlisted by the advisory ranking step.
// It is never hand-authored.
type PresentedOffer struct {
	PartnerOffer `bson:",inline"`

	Justification string `bson:"justification" json:"justification"`
	Category      string `bson:"category" json:"category"`
	IsRecommended bool   `bson:"isRecommended" json:"isRecommended"`
}

// FeaturedOffer is a partner-authored promotional package shown on the
// client gateway, independent of any request.
type FeaturedOffer struct {
	ID          string   `bson:"id" json:"id"`
	PartnerID   string   `bson:"partnerId" json:"partnerId"`
	PartnerName string   `bson:"partnerName" json:"partnerName"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	ImageURL    string   `bson:"imageUrl" json:"imageUrl"`
	Price       float64  `bson:"price" json:"price"`
	Tags        []string `bson:"tags" json:"tags"`
}
