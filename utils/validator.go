package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Validators return (valid, message). The message is shown to the user as-is
// and blocks the attempted mutation before it reaches the data layer.

var gmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@gmail\.com$`)

// ValidateName requires the name to start with a letter and contain only
// letters and spaces.
func ValidateName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Name must not be empty"
	}
	if !unicode.IsLetter(rune(trimmed[0])) {
		return false, "Name must start with a letter"
	}
	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false, "Name may only contain letters"
		}
	}
	return true, ""
}

// ValidateEmail accepts gmail.com addresses only, matching the registration
// policy of the original service.
func ValidateEmail(email string) (bool, string) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false, "Email must not be empty"
	}
	if !strings.HasSuffix(strings.ToLower(trimmed), "@gmail.com") {
		return false, "Email must be a @gmail.com address"
	}
	local := trimmed[:strings.Index(trimmed, "@")]
	if local == "" {
		return false, "Email is not valid"
	}
	hasLetter := false
	for _, r := range local {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false, "Email must contain at least one letter"
	}
	if !gmailPattern.MatchString(strings.ToLower(trimmed)) {
		return false, "Email format is not valid"
	}
	return true, ""
}

// ValidateWhatsApp accepts an Indonesian mobile number in local (8..., 08...)
// or international (+62...) form: 10-12 digits after the prefix, starting
// with 8. Use NormalizeWhatsApp to obtain the canonical +62 form for storage.
func ValidateWhatsApp(number string) (bool, string) {
	digits, ok := whatsappDigits(number)
	if !ok {
		return false, "WhatsApp number may only contain digits"
	}
	if digits == "" {
		return false, "WhatsApp number must not be empty"
	}
	if len(digits) < 10 || len(digits) > 12 {
		return false, "WhatsApp number must be 10-12 digits"
	}
	if digits[0] != '8' {
		return false, "Indonesian WhatsApp numbers must start with 8"
	}
	return true, ""
}

// NormalizeWhatsApp converts a validated number to canonical +62 form:
// 81234567890 -> +6281234567890. Invalid input is returned unchanged.
func NormalizeWhatsApp(number string) string {
	digits, ok := whatsappDigits(number)
	if !ok || digits == "" {
		return number
	}
	return "+62" + digits
}

// whatsappDigits strips separators and the 0/62/+62 prefix, leaving the bare
// subscriber digits.
func whatsappDigits(number string) (string, bool) {
	clean := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(number))
	switch {
	case strings.HasPrefix(clean, "+62"):
		clean = clean[3:]
	case strings.HasPrefix(clean, "62"):
		clean = clean[2:]
	case strings.HasPrefix(clean, "0"):
		clean = clean[1:]
	}
	for _, r := range clean {
		if !unicode.IsDigit(r) {
			return "", false
		}
	}
	return clean, true
}

// ValidatePassword requires at least 8 characters covering uppercase,
// lowercase, digit, and symbol classes.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	if !hasUpper {
		return false, "Password must contain an uppercase letter"
	}
	if !hasLower {
		return false, "Password must contain a lowercase letter"
	}
	if !hasDigit {
		return false, "Password must contain a digit"
	}
	if !hasSymbol {
		return false, "Password must contain a symbol"
	}
	return true, ""
}

// ValidateRegistration checks every registration field in order and returns
// the first failure.
func ValidateRegistration(name, email, whatsapp, password string) (bool, string) {
	if ok, msg := ValidateName(name); !ok {
		return false, msg
	}
	if ok, msg := ValidateEmail(email); !ok {
		return false, msg
	}
	if ok, msg := ValidateWhatsApp(whatsapp); !ok {
		return false, msg
	}
	if ok, msg := ValidatePassword(password); !ok {
		return false, msg
	}
	return true, ""
}

// maxAmount bounds prices and budgets to a sane rupiah range.
const maxAmount = 1_000_000_000_000

// ValidatePrice requires a positive numeric amount within range.
func ValidatePrice(price string) (bool, string) {
	return validateAmount(price, "Price")
}

// ValidateBudget requires a positive numeric amount within range.
func ValidateBudget(budget string) (bool, string) {
	return validateAmount(budget, "Budget")
}

func validateAmount(raw, field string) (bool, string) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return false, field + " must be a number"
	}
	if value <= 0 {
		return false, field + " must be greater than 0"
	}
	if value > maxAmount {
		return false, field + " is out of range"
	}
	return true, ""
}

// ValidateYear requires a year between 1900 and the current year.
func ValidateYear(year string) (bool, string) {
	value, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return false, "Year must be a number"
	}
	current := time.Now().Year()
	if value < 1900 || value > current {
		return false, fmt.Sprintf("Year must be between 1900 and %d", current)
	}
	return true, ""
}

// ValidateAddress requires a location address of at least 10 characters.
func ValidateAddress(address string) (bool, string) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return false, "Address must not be empty"
	}
	if len(trimmed) < 10 {
		return false, "Address must be at least 10 characters"
	}
	return true, ""
}

// ValidateDescription requires a description of at least 20 characters.
func ValidateDescription(description string) (bool, string) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return false, "Description must not be empty"
	}
	if len(trimmed) < 20 {
		return false, "Description must be at least 20 characters"
	}
	return true, ""
}

// ValidateTitle requires a 5-200 character title that is not purely numeric.
func ValidateTitle(title string) (bool, string) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return false, "Title must not be empty"
	}
	if len(trimmed) < 5 {
		return false, "Title must be at least 5 characters"
	}
	if len(trimmed) > 200 {
		return false, "Title must be at most 200 characters"
	}
	if isNumericOnly(trimmed) {
		return false, "Title must not consist of numbers only"
	}
	return true, ""
}

// ValidateServiceName requires a non-empty name of at most 100 characters
// that is not purely numeric.
func ValidateServiceName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Service name must not be empty"
	}
	if len(trimmed) > 100 {
		return false, "Service name must be at most 100 characters"
	}
	if isNumericOnly(trimmed) {
		return false, "Service name must not consist of numbers only"
	}
	return true, ""
}

// ValidateDuration requires a non-empty duration estimate.
func ValidateDuration(duration string) (bool, string) {
	if strings.TrimSpace(duration) == "" {
		return false, "Duration must not be empty"
	}
	return true, ""
}

func isNumericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '.' {
			return false
		}
	}
	return true
}
