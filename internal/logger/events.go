// sentiric-contact-service/internal/logger/events.go
package logger

// SUTS v4.0 Standard Event IDs for contact-service
const (
	EventSystemStartup       = "SYSTEM_STARTUP"
	EventCallReceived        = "CALL_RECEIVED"
	EventContactFetch        = "CONTACT_FETCH"
	EventContactFetchFailed  = "CONTACT_FETCH_FAILED"
	EventContactPage         = "CONTACT_PAGE"
	EventContactPageFailed   = "CONTACT_PAGE_FAILED"
	EventContactsCleared     = "CONTACTS_CLEARED"
	EventImageLookup         = "CONTACT_IMAGE_LOOKUP"
	EventImageLookupFailed   = "CONTACT_IMAGE_LOOKUP_FAILED"
	EventUnknownField        = "UNKNOWN_FIELD_REQUESTED"
	EventResultDelivered     = "RESULT_DELIVERED"
	EventResultDeliveryError = "RESULT_DELIVERY_ERROR"
)
