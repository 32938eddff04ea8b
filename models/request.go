package models

import "time"

// RequestStatus is the authoritative lifecycle position of a travel request.
type RequestStatus string

const (
	StatusNewRequest        RequestStatus = "new_request"
	StatusPendingBids       RequestStatus = "pending_bids"
	StatusRevisionRequested RequestStatus = "revision_requested"
	StatusAnalyzing         RequestStatus = "analyzing"
	StatusOfferReady        RequestStatus = "offer_ready"
	StatusPendingPayment    RequestStatus = "pending_payment"
	StatusConfirmed         RequestStatus = "confirmed"
	// StatusPayoutProcessing is reserved. No transition currently enters it;
	// payouts move straight from confirmed to payment_released.
	StatusPayoutProcessing RequestStatus = "payout_processing"
	StatusPaymentReleased  RequestStatus = "payment_released"
	StatusCompleted        RequestStatus = "completed"
	StatusPaymentFailed    RequestStatus = "payment_failed"
)

type TripType string

const (
	TripOneWay    TripType = "OneWay"
	TripRoundTrip TripType = "RoundTrip"
	TripMultiCity TripType = "MultiCity"
)

type ComfortLevel string

const (
	ComfortEconomy ComfortLevel = "Economy"
	ComfortComfort ComfortLevel = "Comfort"
	ComfortLuxury  ComfortLevel = "Luxury"
)

// ChatMessage is a single entry in one of a request's chat threads.
type ChatMessage struct {
	ID        string    `bson:"id" json:"id"`
	Sender    string    `bson:"sender" json:"sender"` // "Client", "Partner", "Admin" or a display name
	Text      string    `bson:"text" json:"text"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// AdditionalServices are the ancillary services a client can request alongside the trip.
type AdditionalServices struct {
	WantsHotelBooking    bool `bson:"wantsHotelBooking" json:"wantsHotelBooking"`
	WantsAirportTransfer bool `bson:"wantsAirportTransfer" json:"wantsAirportTransfer"`
	WantsCarRental       bool `bson:"wantsCarRental" json:"wantsCarRental"`
	WantsPrivateDriver   bool `bson:"wantsPrivateDriver" json:"wantsPrivateDriver"`
	WantsActivities      bool `bson:"wantsActivities" json:"wantsActivities"`
	WantsTravelInsurance bool `bson:"wantsTravelInsurance" json:"wantsTravelInsurance"`
	WantsVisaProcessing  bool `bson:"wantsVisaProcessing" json:"wantsVisaProcessing"`
	WantsDomesticTrips   bool `bson:"wantsDomesticTrips" json:"wantsDomesticTrips"`
	WantsCorporateTravel bool `bson:"wantsCorporateTravel" json:"wantsCorporateTravel"`
	WantsVipServices     bool `bson:"wantsVipServices" json:"wantsVipServices"`
	WantsHoneymoon       bool `bson:"wantsHoneymoonPackage" json:"wantsHoneymoonPackage"`
	WantsDailyPrograms   bool `bson:"wantsDailyPrograms" json:"wantsDailyPrograms"`
}

// RadarAlert is an advisory-generated operational warning attached to a request.
type RadarAlert struct {
	Message  string `bson:"message" json:"message"`
	Category string `bson:"category" json:"category"` // Financial | Operational | UrgentFollowUp
	Severity string `bson:"severity" json:"severity"` // High | Medium | Low
}

// TravelRequest is the central aggregate: a client's trip brief, the partner
// bids against it, and the financial snapshot taken when the client pays.
type TravelRequest struct {
	ID        string    `bson:"id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`

	ClientID             string `bson:"clientId" json:"clientId"`
	OriginatingPartnerID string `bson:"originatingPartnerId,omitempty" json:"originatingPartnerId,omitempty"`

	From            string             `bson:"from" json:"from"`
	To              string             `bson:"to" json:"to"`
	DepartureDate   string             `bson:"departureDate" json:"departureDate"`
	ReturnDate      string             `bson:"returnDate,omitempty" json:"returnDate,omitempty"`
	Travelers       int                `bson:"travelers" json:"travelers"`
	TripType        TripType           `bson:"tripType" json:"tripType"`
	ComfortLevel    ComfortLevel       `bson:"comfortLevel" json:"comfortLevel"`
	Budget          float64            `bson:"budget" json:"budget"`
	TripDescription string             `bson:"tripDescription,omitempty" json:"tripDescription,omitempty"`
	PreferredHotel  string             `bson:"preferredHotel,omitempty" json:"preferredHotel,omitempty"`
	Services        AdditionalServices `bson:"additionalServices" json:"additionalServices"`

	Status          RequestStatus `bson:"status" json:"status"`
	RejectionReason string        `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	Offers          []PartnerOffer   `bson:"offers" json:"offers"`
	PresentedOffers []PresentedOffer `bson:"presentedOffers,omitempty" json:"presentedOffers,omitempty"`
	FinalOffer      *PartnerOffer    `bson:"finalOffer,omitempty" json:"finalOffer,omitempty"`

	ClientChat  []ChatMessage `bson:"chatHistory" json:"chatHistory"`
	PartnerChat []ChatMessage `bson:"partnerChatHistory" json:"partnerChatHistory"`
	ExpertChat  []ChatMessage `bson:"expertChatHistory,omitempty" json:"expertChatHistory,omitempty"`

	Itinerary   string      `bson:"itinerary,omitempty" json:"itinerary,omitempty"`
	AIItinerary string      `bson:"aiGeneratedItinerary,omitempty" json:"aiGeneratedItinerary,omitempty"`
	AIAlert     *RadarAlert `bson:"aiRadarAlert,omitempty" json:"aiRadarAlert,omitempty"`

	ClientPaymentDate *time.Time `bson:"clientPaymentDate,omitempty" json:"clientPaymentDate,omitempty"`
	PartnerPayoutDate *time.Time `bson:"partnerPayoutDate,omitempty" json:"partnerPayoutDate,omitempty"`

	// Financial snapshot, written exactly once when the client payment clears.
	// Never recomputed, even if the platform commission rate changes later.
	FinalPriceAtPayment   *float64 `bson:"finalPriceAtPayment,omitempty" json:"finalPriceAtPayment,omitempty"`
	CommissionAtPayment   *float64 `bson:"commissionAtPayment,omitempty" json:"commissionAtPayment,omitempty"`
	PayoutAmountAtPayment *float64 `bson:"payoutAmountAtPayment,omitempty" json:"payoutAmountAtPayment,omitempty"`

	TransactionID string `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PayoutID      string `bson:"payoutId,omitempty" json:"payoutId,omitempty"`
}

// Stamped reports whether the financial snapshot has been written.
func (r *TravelRequest) Stamped() bool {
	return r.FinalPriceAtPayment != nil
}

// ValidOffers returns the offers eligible for ranking, i.e. those not sent
// back to the partner for revision.
func (r *TravelRequest) ValidOffers() []PartnerOffer {
	var valid []PartnerOffer
	for _, o := range r.Offers {
		if !o.IsRejected {
			valid = append(valid, o)
		}
	}
	return valid
}
