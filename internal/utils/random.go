package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/careercraft-dev/career-pilot/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Alex", "Priya", "Jordan", "Wei", "Maria", "Sam", "Aisha", "Diego",
	"Emma", "Ravi", "Lena", "Omar", "Chloe", "Ivan", "Nina", "Tom",
}
var commonLastNames = []string{
	"Smith", "Patel", "Garcia", "Chen", "Johnson", "Khan", "Silva", "Ivanov",
	"Brown", "Nguyen", "Müller", "Rossi", "Kim", "Sato", "Lopez", "Novak",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateEmailFromFullName(fullName string, emailDomainName string) string {
	local := strings.ToLower(strings.ReplaceAll(fullName, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomainName
}

// GenerateRandomUser builds a plausible profile record: a staged progress
// history ending at the current progress, and a random subset of the
// default roles saved most-recent-first.
func GenerateRandomUser(password string, emailDomainName string) (string, *domain.User, error) {
	fullName := GenerateRandomFullName()
	email := GenerateEmailFromFullName(fullName, emailDomainName)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	progress := rand.Intn(101)
	user := &domain.User{
		Name:         fullName,
		PasswordHash: string(passwordHash),
		Progress:     progress,
		SavedRoles:   GenerateRandomSavedRoles(),
		History:      GenerateRandomHistory(progress),
	}

	return email, user, nil
}

// GenerateRandomHistory builds a handful of progress snapshots, days apart,
// ending at finalProgress.
func GenerateRandomHistory(finalProgress int) []domain.HistoryEntry {
	entriesNum := rand.Intn(4) + 2
	entries := make([]domain.HistoryEntry, entriesNum)

	for i := range entries {
		daysAgo := (entriesNum - i) * (rand.Intn(7) + 1)
		progress := finalProgress * (i + 1) / entriesNum
		entries[i] = domain.HistoryEntry{
			Timestamp: time.Now().Add(-time.Duration(daysAgo) * 24 * time.Hour).Unix(),
			Progress:  &progress,
		}
	}

	return entries
}

// GenerateRandomSavedRoles picks a random subset of the default role ids
// with a Fisher-Yates shuffle; the subset may be empty.
func GenerateRandomSavedRoles() []string {
	ids := make([]string, len(domain.DefaultRoles))
	for i, role := range domain.DefaultRoles {
		ids[i] = role.ID
	}

	for i := len(ids) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}

	return ids[:rand.Intn(len(ids)+1)]
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}
