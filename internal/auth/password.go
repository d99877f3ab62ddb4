package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an administrator password at the given bcrypt cost
// (BCRYPT_COST, also used when seeding the default admin).
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a login attempt against the stored hash. bcrypt
// performs the comparison in constant time with respect to the password.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
