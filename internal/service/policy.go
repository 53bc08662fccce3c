package service

// OwnerAllowed is the ownership policy: the authenticated email may act on a
// record exactly when it equals the record's declared owner email.
func OwnerAllowed(tokenEmail, declaredEmail string) bool {
	return tokenEmail == declaredEmail
}
