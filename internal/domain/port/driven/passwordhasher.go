package driven

// PasswordHasher produces salted one-way password digests.
type PasswordHasher interface {
	// Hash returns a new digest with a fresh random salt on every call.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash yields false.
	Verify(plaintext, hash string) bool
}
