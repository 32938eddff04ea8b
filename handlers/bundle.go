package handlers

// HandlerBundle groups all endpoint handlers for route registration.
type HandlerBundle struct {
	Trip     *TripHandler
	Offer    *OfferHandler
	Query    *RequestQueryHandler
	Partner  *PartnerHandler
	Client   *ClientHandler
	Admin    *AdminHandler
	Advisory *AdvisoryHandler
	Featured *FeaturedOfferHandler
}
