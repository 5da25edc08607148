package service

// ShareCodeService renders and reads the QR codes that link to a store page.
type ShareCodeService interface {
	// StoreQR returns a PNG QR code for the store
	StoreQR(storeID string) ([]byte, error)

	// ParseStoreQR returns the store ID encoded in a scanned QR payload
	ParseStoreQR(payload string) (string, error)
}
