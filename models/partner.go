package models

import "time"

// Partner is a travel agency bidding on requests through the platform.
type Partner struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Rating          float64   `bson:"rating" json:"rating"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	ContactEmail    string    `bson:"contactEmail" json:"contactEmail"`
	ContactPerson   string    `bson:"contactPerson,omitempty" json:"contactPerson,omitempty"`
	Phone           string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address         string    `bson:"address,omitempty" json:"address,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	WebsiteURL      string    `bson:"websiteUrl,omitempty" json:"websiteUrl,omitempty"`
	GalleryURLs     []string  `bson:"galleryImageUrls,omitempty" json:"galleryImageUrls,omitempty"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status          string    `bson:"status" json:"status"` // Active | Suspended
	PerformanceTier string    `bson:"performanceTier" json:"performanceTier"`
	JoinDate        string    `bson:"joinDate" json:"joinDate"`
	PasswordHash    string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`

	// Agreement signature is one-way: once set it is never cleared, and the
	// first signature emits a ledger record.
	AgreementSignedAt *time.Time `bson:"agreementSignedAt,omitempty" json:"agreementSignedAt,omitempty"`
	AgreementVersion  string     `bson:"agreementVersion,omitempty" json:"agreementVersion,omitempty"`
}

// Signed reports whether the partner has signed the platform agreement.
func (p *Partner) Signed() bool { return p.AgreementSignedAt != nil }

// Client is a traveler submitting trip requests.
type Client struct {
	ID                    string    `bson:"id" json:"id"`
	Name                  string    `bson:"name" json:"name"`
	Email                 string    `bson:"email" json:"email"`
	Phone                 string    `bson:"phone,omitempty" json:"phone,omitempty"`
	JoinDate              string    `bson:"joinDate" json:"joinDate"`
	PreferredDestinations string    `bson:"preferredDestinations,omitempty" json:"preferredDestinations,omitempty"`
	TravelPreferences     string    `bson:"travelPreferences,omitempty" json:"travelPreferences,omitempty"`
	LoyaltyTier           string    `bson:"loyaltyTier" json:"loyaltyTier"` // Bronze | Silver | Gold
	PasswordHash          string    `bson:"passwordHash,omitempty" json:"-"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`

	AgreementSignedAt *time.Time `bson:"agreementSignedAt,omitempty" json:"agreementSignedAt,omitempty"`
	AgreementVersion  string     `bson:"agreementVersion,omitempty" json:"agreementVersion,omitempty"`
}

// Signed reports whether the client has signed the platform agreement.
func (c *Client) Signed() bool { return c.AgreementSignedAt != nil }
