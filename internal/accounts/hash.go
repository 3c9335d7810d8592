package accounts

import "golang.org/x/crypto/bcrypt"

// hashPassword produces a salted, iterated hash. bcrypt embeds the salt
// and cost in the output string, so no extra columns are needed.
func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// checkPassword reports whether password matches the stored hash.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
